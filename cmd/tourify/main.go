package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/stpnv0/Tourify/internal/app"
	"github.com/stpnv0/Tourify/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tourify",
	Short: "Tourify event and social API",
	// без подкоманды запускаем сервер
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Manage the database schema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.MigrateStandalone(config.MustLoad(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	rootCmd.SilenceUsage = true
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	return application.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("tourify: %v", err)
	}
}
