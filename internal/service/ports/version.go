package ports

import (
	"context"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type VersionRepo interface {
	// Latest returns domain.ErrVersionNotFound when the event has no versions.
	Latest(ctx context.Context, eventID string) (*domain.EventVersion, error)
	Insert(ctx context.Context, v *domain.EventVersion) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.EventVersion, error)
}
