package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type draftExpirer interface {
	ExpireDrafts(ctx context.Context) []string
}

// Scheduler периодически закрывает брошенные сессии мастера.
type Scheduler struct {
	wizardService draftExpirer
	interval      time.Duration
	logger        logger.Logger
}

func New(
	wizardService draftExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		wizardService: wizardService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired := s.wizardService.ExpireDrafts(ctx)

	for _, id := range expired {
		s.logger.Info("draft expired",
			logger.String("session_id", id),
		)
	}
}
