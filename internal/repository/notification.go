package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) HasPending(ctx context.Context, userID, eventID string, t domain.NotificationType) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM notifications
				WHERE user_id = $1 AND event_id = $2 AND type = $3 AND status = ANY($4)
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, eventID, t, pq.Array(domain.PendingNotificationStatuses))
	if err != nil {
		return false, fmt.Errorf("check pending notification: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan pending notification: %w", err)
	}

	return exists, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return fmt.Errorf("encode notification payload: %w", err)
	}

	query := `INSERT INTO notifications (id, user_id, event_id, type, status, payload, scheduled_for, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		n.ID, n.UserID, n.EventID, n.Type, n.Status, payload, n.ScheduledFor, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

// ClaimDue moves up to limit due queued rows to sending and returns them.
// Concurrent dispatchers never claim the same row.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*domain.Notification, error) {
	query := `
		UPDATE notifications
		SET status = $2, updated_at = $3
		WHERE id IN (
			SELECT id FROM notifications
			WHERE status = $1 AND scheduled_for <= $3
			ORDER BY scheduled_for
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, user_id, event_id, type, status, payload, scheduled_for,
		          COALESCE(last_error, ''), created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.NotificationQueued, domain.NotificationSending, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("claim due notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var (
			n   domain.Notification
			raw []byte
		)
		if err = rows.Scan(
			&n.ID, &n.UserID, &n.EventID, &n.Type, &n.Status, &raw,
			&n.ScheduledFor, &n.LastError, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if err = json.Unmarshal(raw, &n.Payload); err != nil {
			return nil, fmt.Errorf("decode notification payload: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *NotificationRepository) MarkStatus(ctx context.Context, id string, status domain.NotificationStatus, lastErr string) error {
	query := `UPDATE notifications
			  SET status = $2, last_error = NULLIF($3, ''), updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, lastErr)
	if err != nil {
		return fmt.Errorf("mark notification: %w", err)
	}

	return expectOneRow(res, fmt.Errorf("notification %s not found", id))
}

// CancelPending cancels queued rows only; a row already sending is left to finish.
func (r *NotificationRepository) CancelPending(ctx context.Context, eventID string, t domain.NotificationType) (int, error) {
	query := `UPDATE notifications
			  SET status = $3, updated_at = now()
			  WHERE event_id = $1 AND type = $2 AND status = $4`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, t, domain.NotificationCancelled, domain.NotificationQueued)
	if err != nil {
		return 0, fmt.Errorf("cancel notifications: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return int(n), nil
}
