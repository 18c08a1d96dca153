package ports

import (
	"context"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type ApprovalRepo interface {
	Create(ctx context.Context, a *domain.Approval) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Approval, error)
}

type AuditSink interface {
	Write(ctx context.Context, entry *domain.AuditEntry) error
}
