package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	DraftReminderDelay   = 48 * time.Hour
	defaultDispatchBatch = 50
)

// NotificationQueue schedules stored reminders and fires best-effort messages.
type NotificationQueue struct {
	repo     ports.NotificationRepo
	users    ports.UserRepo
	events   ports.EventRepo
	notifier ports.Notifier
	logger   logger.Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewNotificationQueue(
	repo ports.NotificationRepo,
	users ports.UserRepo,
	events ports.EventRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *NotificationQueue {
	return &NotificationQueue{
		repo:     repo,
		users:    users,
		events:   events,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// QueueDraftReminder stores a reminder due in 48 hours unless one is already
// queued or sending for the same user and event. It reports whether a row was inserted.
func (q *NotificationQueue) QueueDraftReminder(ctx context.Context, eventID, userID string) (bool, error) {
	exists, err := q.repo.HasPending(ctx, userID, eventID, domain.NotificationDraftReminder)
	if err != nil {
		return false, fmt.Errorf("check pending reminder: %w", err)
	}
	if exists {
		return false, nil
	}

	now := q.now()
	n := &domain.Notification{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventID:      eventID,
		Type:         domain.NotificationDraftReminder,
		Status:       domain.NotificationQueued,
		Payload:      map[string]any{"event_id": eventID},
		ScheduledFor: now.Add(DraftReminderDelay),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = q.repo.Create(ctx, n); err != nil {
		return false, fmt.Errorf("queue reminder: %w", err)
	}

	return true, nil
}

func (q *NotificationQueue) CancelDraftReminders(ctx context.Context, eventID string) {
	n, err := q.repo.CancelPending(ctx, eventID, domain.NotificationDraftReminder)
	if err != nil {
		q.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to cancel draft reminders",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		q.logger.LogAttrs(ctx, logger.DebugLevel, "draft reminders cancelled",
			logger.String("event_id", eventID),
			logger.Int("count", n),
		)
	}
}

func (q *NotificationQueue) NotifyReviewerAssigned(ctx context.Context, reviewerID string, event *domain.Event) {
	ev := event.Clone()
	q.deliver(ctx, "reviewer_assigned", reviewerID, ev.ID, func(ctx context.Context, u *domain.User) error {
		return q.notifier.NotifyReviewerAssigned(ctx, u, ev)
	})
}

func (q *NotificationQueue) NotifyDecision(ctx context.Context, event *domain.Event, decision domain.Decision, note string) {
	ev := event.Clone()
	q.deliver(ctx, "decision", ev.CreatedBy, ev.ID, func(ctx context.Context, u *domain.User) error {
		return q.notifier.NotifyDecision(ctx, u, ev, decision, note)
	})
}

// deliver runs send in the background. Errors are logged, never returned.
func (q *NotificationQueue) deliver(ctx context.Context, kind, userID, eventID string, send func(context.Context, *domain.User) error) {
	ctx = context.WithoutCancel(ctx)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()

		user, err := q.users.GetByID(ctx, userID)
		if err != nil {
			q.logger.Error("failed to get user for notification",
				logger.String("kind", kind),
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
			return
		}

		if err = send(ctx, user); err != nil {
			q.logger.Error("notification delivery failed",
				logger.String("kind", kind),
				logger.String("user_id", userID),
				logger.String("event_id", eventID),
				logger.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until in-flight background deliveries finish.
func (q *NotificationQueue) Wait() {
	q.wg.Wait()
}

// DispatchDue sends due draft reminders. It is driven by the scheduler.
func (q *NotificationQueue) DispatchDue(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultDispatchBatch
	}

	due, err := q.repo.ClaimDue(ctx, q.now(), limit)
	if err != nil {
		return 0, fmt.Errorf("claim due notifications: %w", err)
	}

	sent := 0
	for _, n := range due {
		status, lastErr := q.dispatchOne(ctx, n)
		if status == domain.NotificationSent {
			sent++
		}
		if err = q.repo.MarkStatus(ctx, n.ID, status, lastErr); err != nil {
			q.logger.Error("failed to mark notification",
				logger.String("notification_id", n.ID),
				logger.String("status", string(status)),
				logger.String("error", err.Error()),
			)
		}
	}

	return sent, nil
}

func (q *NotificationQueue) dispatchOne(ctx context.Context, n *domain.Notification) (domain.NotificationStatus, string) {
	if n.Type != domain.NotificationDraftReminder {
		return domain.NotificationFailed, "unsupported notification type " + string(n.Type)
	}

	event, err := q.events.GetByID(ctx, n.EventID)
	if err != nil {
		return domain.NotificationFailed, err.Error()
	}
	if !event.Status.Editable() {
		return domain.NotificationCancelled, ""
	}

	user, err := q.users.GetByID(ctx, n.UserID)
	if err != nil {
		return domain.NotificationFailed, err.Error()
	}

	if err = q.notifier.NotifyDraftReminder(ctx, user, event); err != nil {
		return domain.NotificationFailed, err.Error()
	}

	return domain.NotificationSent, ""
}
