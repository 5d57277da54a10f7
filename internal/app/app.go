package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/Tourify/internal/config"
	"github.com/stpnv0/Tourify/internal/handler"
	"github.com/stpnv0/Tourify/internal/middleware"
	"github.com/stpnv0/Tourify/internal/notification"
	"github.com/stpnv0/Tourify/internal/repository"
	"github.com/stpnv0/Tourify/internal/router"
	"github.com/stpnv0/Tourify/internal/scheduler"
	"github.com/stpnv0/Tourify/internal/service"
	"github.com/stpnv0/Tourify/internal/storage"
	"github.com/stpnv0/Tourify/internal/wizard"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const (
	appName       = "Tourify"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = Migrate(cfg, log, "up"); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	attendanceRepo := repository.NewAttendanceRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	postRepo := repository.NewPostRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	bucket, err := storage.NewLocalBucket(a.cfg.Storage.Dir, a.cfg.Storage.PublicURL, a.cfg.Storage.MaxUploadBytes)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	eventService := service.NewEventService(eventRepo, attendanceRepo, userRepo, n, a.log)
	attendanceService := service.NewAttendanceService(attendanceRepo, eventRepo, userRepo, n, a.log)
	userService := service.NewUserService(userRepo, n, a.log)
	feedService := service.NewFeedService(postRepo, eventRepo, a.log)
	wizardService := service.NewWizardService(
		wizard.NewRegistry(a.cfg.Wizard.DraftTTL),
		eventService,
		a.log,
	)

	a.scheduler = scheduler.New(
		wizardService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(wizardService, eventService, attendanceService, feedService, userService, bucket)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.cfg.Storage.PublicURL,
		bucket.Dir(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      middleware.Compress(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(gctx)
		return nil
	})

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		}
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// Migrate выполняет команду goose (up, down, status) над каталогом migrations.
func Migrate(cfg *config.Config, log logger.Logger, command string) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "status":
		err = goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	log.Info("migrations applied", logger.String("command", command))
	return nil
}

// MigrateStandalone - Migrate для CLI, где приложение целиком не поднимается.
func MigrateStandalone(cfg *config.Config, command string) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	return Migrate(cfg, log, command)
}
