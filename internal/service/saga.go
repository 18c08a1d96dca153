package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/logger"
)

type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// saga accumulates compensating actions as forward steps commit and runs
// them in reverse when a later step fails.
type saga struct {
	op      string
	eventID string
	steps   []compensation
	logger  logger.Logger
}

func newSaga(op, eventID string, log logger.Logger) *saga {
	return &saga{op: op, eventID: eventID, logger: log}
}

func (s *saga) onFailure(name string, fn func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, fn: fn})
}

// abort runs every compensation, newest first, and returns cause joined with
// any compensation errors. Compensations run even if the request context is gone.
func (s *saga) abort(ctx context.Context, cause error) error {
	ctx = context.WithoutCancel(ctx)

	errs := []error{cause}
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.fn(ctx); err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "compensation failed",
				logger.String("operation", s.op),
				logger.String("event_id", s.eventID),
				logger.String("step", step.name),
				logger.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("rollback %s: %w", step.name, err))
		}
	}
	s.steps = nil

	s.logger.LogAttrs(ctx, logger.WarnLevel, "operation rolled back",
		logger.String("operation", s.op),
		logger.String("event_id", s.eventID),
		logger.String("cause", cause.Error()),
	)

	return errors.Join(errs...)
}
