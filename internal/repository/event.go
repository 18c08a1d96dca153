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

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `
	e.id, e.title, e.description, e.venue_id, v.name,
	e.start_at, e.end_at, e.status, e.created_by, e.assigned_reviewer_id,
	e.submitted_at, e.decided_at, e.created_at, e.updated_at,
	COALESCE(array_agg(ea.area_id ORDER BY ea.area_id) FILTER (WHERE ea.area_id IS NOT NULL), '{}'::text[])`

const eventFrom = `
	FROM events e
	LEFT JOIN venues v ON v.id = e.venue_id
	LEFT JOIN event_areas ea ON ea.event_id = e.id`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvent reads one eventColumns row. The joined venue always becomes a
// single optional reference.
func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e         domain.Event
		venueName sql.NullString
		areaIDs   pq.StringArray
	)
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.VenueID, &venueName,
		&e.StartAt, &e.EndAt, &e.Status, &e.CreatedBy, &e.AssignedReviewerID,
		&e.SubmittedAt, &e.DecidedAt, &e.CreatedAt, &e.UpdatedAt,
		&areaIDs,
	); err != nil {
		return nil, err
	}

	e.AreaIDs = []string(areaIDs)
	if venueName.Valid {
		e.Venue = &domain.VenueRef{ID: e.VenueID, Name: venueName.String}
	}

	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, venue_id, start_at, end_at, status,
                    created_by, assigned_reviewer_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.VenueID, e.StartAt, e.EndAt, e.Status,
		e.CreatedBy, e.AssignedReviewerID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + eventFrom + `
			  WHERE e.id = $1
			  GROUP BY e.id, v.name`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + eventFrom + `
			  WHERE ($1::text IS NULL OR e.status = $1)
			    AND ($2 = '' OR e.venue_id = $2)
			  GROUP BY e.id, v.name
			  ORDER BY e.start_at DESC
			  LIMIT $3`

	var status any
	if filter.Status != nil {
		status = string(*filter.Status)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status, filter.VenueID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, venue_id = $4, start_at = $5, end_at = $6,
			      status = $7, assigned_reviewer_id = $8, updated_at = $9
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.VenueID, e.StartAt, e.EndAt,
		e.Status, e.AssignedReviewerID, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}

	return expectOneRow(res, domain.ErrEventNotFound)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus, at time.Time) error {
	query := `UPDATE events
			  SET status = $2,
			      submitted_at = CASE WHEN $2 = 'submitted' THEN $3 ELSE submitted_at END,
			      decided_at = CASE WHEN $2 = 'submitted' THEN decided_at ELSE $3 END,
			      updated_at = $3
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(status), at)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	return expectOneRow(res, domain.ErrEventNotFound)
}

func (r *EventRepository) AssignReviewer(ctx context.Context, id, reviewerID string) error {
	query := `UPDATE events SET assigned_reviewer_id = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, reviewerID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("assign reviewer: %w", err)
	}

	return expectOneRow(res, domain.ErrEventNotFound)
}

// Delete removes the event and, by cascade, its area links and versions.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectOneRow(res, domain.ErrEventNotFound)
}

func (r *EventRepository) ListAreaIDs(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT area_id FROM event_areas WHERE event_id = $1 ORDER BY area_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event areas: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event area: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *EventRepository) ReplaceAreas(ctx context.Context, eventID string, areaIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM event_areas WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("clear event areas: %w", err)
	}

	if len(areaIDs) > 0 {
		query := `INSERT INTO event_areas (event_id, area_id)
				  SELECT $1, unnest($2::text[])`
		if _, err = tx.ExecContext(ctx, query, eventID, pq.Array(areaIDs)); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return domain.ErrAreaNotFound
			}
			return fmt.Errorf("link event areas: %w", err)
		}
	}

	return tx.Commit()
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
