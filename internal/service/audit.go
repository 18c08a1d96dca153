package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const auditWarning = "audit log write failed"

// AuditRecorder writes lifecycle transitions to the audit sink. A failed write
// never fails the transition; it is logged and counted instead.
type AuditRecorder struct {
	sink     ports.AuditSink
	logger   logger.Logger
	failures atomic.Int64
	now      func() time.Time
}

func NewAuditRecorder(sink ports.AuditSink, logger logger.Logger) *AuditRecorder {
	return &AuditRecorder{
		sink:   sink,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Record returns false when the entry could not be written.
func (r *AuditRecorder) Record(ctx context.Context, actorID string, action domain.AuditAction, eventID string, details map[string]any) bool {
	entry := &domain.AuditEntry{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		Action:     action,
		EntityType: domain.AuditEntityEvent,
		EntityID:   eventID,
		Details:    details,
		Timestamp:  r.now(),
	}

	if err := r.sink.Write(ctx, entry); err != nil {
		r.failures.Add(1)
		r.logger.LogAttrs(ctx, logger.ErrorLevel, auditWarning,
			logger.String("action", string(action)),
			logger.String("event_id", eventID),
			logger.String("actor_id", actorID),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}

// Failures is the number of audit writes lost since start.
func (r *AuditRecorder) Failures() int64 {
	return r.failures.Load()
}
