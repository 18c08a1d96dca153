package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT id, name FROM venues WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) ListAreasByIDs(ctx context.Context, ids []string) ([]*domain.VenueArea, error) {
	query := `SELECT id, venue_id, name, capacity
			  FROM venue_areas
			  WHERE id = ANY($1)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list venue areas: %w", err)
	}
	defer rows.Close()

	var res []*domain.VenueArea
	for rows.Next() {
		var a domain.VenueArea
		if err = rows.Scan(&a.ID, &a.VenueID, &a.Name, &a.Capacity); err != nil {
			return nil, fmt.Errorf("scan venue area: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *VenueRepository) CountAreas(ctx context.Context, venueID string) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM venue_areas WHERE venue_id = $1`, venueID)
	if err != nil {
		return 0, fmt.Errorf("count venue areas: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan venue area count: %w", err)
	}

	return n, nil
}

// ListDefaultReviewers returns reviewer ids in the order they were configured.
func (r *VenueRepository) ListDefaultReviewers(ctx context.Context, venueID string) ([]string, error) {
	query := `SELECT user_id
			  FROM venue_default_reviewers
			  WHERE venue_id = $1
			  ORDER BY seq ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list default reviewers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan default reviewer: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
