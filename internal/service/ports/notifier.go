package ports

import (
	"context"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type Notifier interface {
	NotifyReviewerAssigned(ctx context.Context, reviewer *domain.User, event *domain.Event) error
	NotifyDecision(ctx context.Context, creator *domain.User, event *domain.Event, decision domain.Decision, note string) error
	NotifyDraftReminder(ctx context.Context, user *domain.User, event *domain.Event) error
}

type ListingPublisher interface {
	PublishDecision(ctx context.Context, event *domain.Event, decision domain.Decision) error
}
