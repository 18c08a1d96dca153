package ports

import (
	"context"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRole returns users ordered by creation time, oldest first.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
