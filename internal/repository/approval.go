package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ApprovalRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApprovalRepo(db *dbpg.DB) *ApprovalRepository {
	return &ApprovalRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ApprovalRepository) Create(ctx context.Context, a *domain.Approval) error {
	query := `INSERT INTO approvals (id, event_id, reviewer_id, decision, note, version, decided_at)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.EventID, a.ReviewerID, a.Decision, a.Note, a.Version, a.DecidedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert approval: %w", err)
	}

	return nil
}

func (r *ApprovalRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Approval, error) {
	query := `SELECT id, event_id, reviewer_id, decision, note, COALESCE(version, 0), decided_at
			  FROM approvals
			  WHERE event_id = $1
			  ORDER BY decided_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	defer rows.Close()

	var res []*domain.Approval
	for rows.Next() {
		var a domain.Approval
		if err = rows.Scan(&a.ID, &a.EventID, &a.ReviewerID, &a.Decision, &a.Note, &a.Version, &a.DecidedAt); err != nil {
			return nil, fmt.Errorf("scan approval: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
