package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type NotificationRepo interface {
	HasPending(ctx context.Context, userID, eventID string, t domain.NotificationType) (bool, error)
	Create(ctx context.Context, n *domain.Notification) error
	// ClaimDue moves up to limit due queued notifications to sending and returns them.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*domain.Notification, error)
	MarkStatus(ctx context.Context, id string, status domain.NotificationStatus, lastErr string) error
	CancelPending(ctx context.Context, eventID string, t domain.NotificationType) (int, error)
}
