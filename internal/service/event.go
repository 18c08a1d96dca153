package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// EventService is the read side of the event workflow.
type EventService struct {
	repo      ports.EventRepo
	venues    ports.VenueRepo
	versions  *VersionStore
	approvals ports.ApprovalRepo
}

func NewEventService(repo ports.EventRepo, venues ports.VenueRepo, versions *VersionStore, approvals ports.ApprovalRepo) *EventService {
	return &EventService{
		repo:      repo,
		venues:    venues,
		versions:  versions,
		approvals: approvals,
	}
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.EventDetails{Event: *event, Areas: []*domain.VenueArea{}}

	if len(event.AreaIDs) > 0 {
		areas, err := s.venues.ListAreasByIDs(ctx, event.AreaIDs)
		if err != nil {
			return nil, fmt.Errorf("list event areas: %w", err)
		}
		details.Areas = areas
	}

	latest, err := s.versions.Latest(ctx, id)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		details.Version = latest.Version
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	return s.repo.List(ctx, filter)
}

func (s *EventService) ListVersions(ctx context.Context, id string) ([]*domain.EventVersion, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.versions.List(ctx, id)
}

func (s *EventService) ListApprovals(ctx context.Context, id string) ([]*domain.Approval, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.approvals.ListByEvent(ctx, id)
}
