package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
)

// VersionStore appends immutable per-event snapshots.
type VersionStore struct {
	repo ports.VersionRepo
	now  func() time.Time
}

func NewVersionStore(repo ports.VersionRepo) *VersionStore {
	return &VersionStore{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Latest returns nil without error when the event has no versions yet.
func (s *VersionStore) Latest(ctx context.Context, eventID string) (*domain.EventVersion, error) {
	v, err := s.repo.Latest(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrVersionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest version: %w", err)
	}
	return v, nil
}

func (s *VersionStore) NextVersion(ctx context.Context, eventID string) (int, error) {
	latest, err := s.Latest(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 1, nil
	}
	return latest.Version + 1, nil
}

// Append writes the next version with fields layered over the latest payload.
func (s *VersionStore) Append(ctx context.Context, eventID string, fields domain.Snapshot, meta domain.VersionMeta) (*domain.EventVersion, error) {
	latest, err := s.Latest(ctx, eventID)
	if err != nil {
		return nil, err
	}

	next := 1
	payload := domain.Snapshot{}
	if latest != nil {
		next = latest.Version + 1
		payload = latest.Payload
	}

	return s.AppendVersion(ctx, eventID, next, payload.Merge(fields), meta)
}

// AppendVersion inserts a version as given. It never updates an existing row.
func (s *VersionStore) AppendVersion(ctx context.Context, eventID string, version int, payload domain.Snapshot, meta domain.VersionMeta) (*domain.EventVersion, error) {
	v := &domain.EventVersion{
		ID:          uuid.New().String(),
		EventID:     eventID,
		Version:     version,
		Payload:     payload,
		SubmittedAt: meta.SubmittedAt,
		SubmittedBy: meta.SubmittedBy,
		CreatedBy:   meta.ActorID,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Insert(ctx, v); err != nil {
		return nil, fmt.Errorf("insert version %d: %w", version, err)
	}

	return v, nil
}

func (s *VersionStore) List(ctx context.Context, eventID string) ([]*domain.EventVersion, error) {
	return s.repo.ListByEvent(ctx, eventID)
}
