package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var errDuplicateVersion = errors.New("version number already taken")

type VersionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVersionRepo(db *dbpg.DB) *VersionRepository {
	return &VersionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const versionColumns = `id, event_id, version, payload, submitted_at, submitted_by, created_by, created_at`

func scanVersion(row rowScanner) (*domain.EventVersion, error) {
	var (
		v   domain.EventVersion
		raw []byte
	)
	if err := row.Scan(&v.ID, &v.EventID, &v.Version, &raw, &v.SubmittedAt, &v.SubmittedBy, &v.CreatedBy, &v.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &v.Payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &v, nil
}

func (r *VersionRepository) Latest(ctx context.Context, eventID string) (*domain.EventVersion, error) {
	query := `SELECT ` + versionColumns + `
			  FROM event_versions
			  WHERE event_id = $1
			  ORDER BY version DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get latest version: %w", err)
	}

	v, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVersionNotFound
		}
		return nil, fmt.Errorf("scan version: %w", err)
	}

	return v, nil
}

// Insert never overwrites: a taken (event_id, version) pair is an error.
func (r *VersionRepository) Insert(ctx context.Context, v *domain.EventVersion) error {
	payload, err := json.Marshal(v.Payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	query := `INSERT INTO event_versions (` + versionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.EventID, v.Version, payload, v.SubmittedAt, v.SubmittedBy, v.CreatedBy, v.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return fmt.Errorf("%w: %s v%d", errDuplicateVersion, v.EventID, v.Version)
			case pgForeignKeyViolation:
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert version: %w", err)
	}

	return nil
}

func (r *VersionRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventVersion, error) {
	query := `SELECT ` + versionColumns + `
			  FROM event_versions
			  WHERE event_id = $1
			  ORDER BY version ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}
