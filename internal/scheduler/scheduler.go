package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderDispatcher interface {
	DispatchDue(ctx context.Context, limit int) (int, error)
}

// Scheduler periodically sends draft reminders that have come due.
type Scheduler struct {
	dispatcher reminderDispatcher
	interval   time.Duration
	batchSize  int
	logger     logger.Logger
}

func New(
	dispatcher reminderDispatcher,
	interval time.Duration,
	batchSize int,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		interval:   interval,
		batchSize:  batchSize,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("batch_size", s.batchSize),
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
	sent, err := s.dispatcher.DispatchDue(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("failed to dispatch draft reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("draft reminders sent",
			logger.Int("count", sent),
		)
	}
}
