package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// AuditRepository is a write-only sink; nothing in the service reads it back.
type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Write(ctx context.Context, entry *domain.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("encode audit details: %w", err)
	}

	query := `INSERT INTO audit_log (id, actor_id, action, entity_type, entity_id, details, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		entry.ID, entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, details, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}
