package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	// Update overwrites the editable fields, status and reviewer of e.
	Update(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus, at time.Time) error
	AssignReviewer(ctx context.Context, id, reviewerID string) error
	Delete(ctx context.Context, id string) error
	ListAreaIDs(ctx context.Context, eventID string) ([]string, error)
	// ReplaceAreas swaps the full set of area links of an event.
	ReplaceAreas(ctx context.Context, eventID string, areaIDs []string) error
}
