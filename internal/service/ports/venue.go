package ports

import (
	"context"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type VenueRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	ListAreasByIDs(ctx context.Context, ids []string) ([]*domain.VenueArea, error)
	CountAreas(ctx context.Context, venueID string) (int, error)
	// ListDefaultReviewers returns reviewer ids in insertion order.
	ListDefaultReviewers(ctx context.Context, venueID string) ([]string, error)
}
