package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockVenueRepo, *mocks.MockVersionRepo, *mocks.MockApprovalRepo) {
	eventRepo := mocks.NewMockEventRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	versionRepo := mocks.NewMockVersionRepo(t)
	approvalRepo := mocks.NewMockApprovalRepo(t)
	svc := NewEventService(eventRepo, venueRepo, NewVersionStore(versionRepo), approvalRepo)
	return svc, eventRepo, venueRepo, versionRepo, approvalRepo
}

func TestEventService_GetDetails_Success(t *testing.T) {
	svc, eventRepo, venueRepo, versionRepo, _ := newTestEventService(t)

	eventID := "event-123"
	event := &domain.Event{
		ID:      eventID,
		Title:   "Concert",
		VenueID: "v1",
		Venue:   &domain.VenueRef{ID: "v1", Name: "Main Hall"},
		AreaIDs: []string{"a1", "a2"},
		Status:  domain.EventStatusSubmitted,
	}
	areas := []*domain.VenueArea{
		{ID: "a1", VenueID: "v1", Name: "Stage"},
		{ID: "a2", VenueID: "v1", Name: "Bar"},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(event, nil)
	venueRepo.EXPECT().ListAreasByIDs(mock.Anything, []string{"a1", "a2"}).Return(areas, nil)
	versionRepo.EXPECT().Latest(mock.Anything, eventID).Return(&domain.EventVersion{Version: 2}, nil)

	result, err := svc.GetDetails(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, eventID, result.Event.ID)
	assert.Equal(t, "Main Hall", result.Event.Venue.Name)
	assert.Len(t, result.Areas, 2)
	assert.Equal(t, 2, result.Version)
}

func TestEventService_GetDetails_NoAreasNoVersions(t *testing.T) {
	svc, eventRepo, _, versionRepo, _ := newTestEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	versionRepo.EXPECT().Latest(mock.Anything, "e1").Return(nil, domain.ErrVersionNotFound)

	result, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Empty(t, result.Areas)
	assert.NotNil(t, result.Areas)
	assert.Zero(t, result.Version)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, eventRepo, _, _, _ := newTestEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_AppliesDefaultLimit(t *testing.T) {
	svc, eventRepo, _, _, _ := newTestEventService(t)

	status := domain.EventStatusSubmitted
	events := []*domain.Event{
		{ID: "e1", Title: "Event 1"},
		{ID: "e2", Title: "Event 2"},
	}
	eventRepo.EXPECT().List(mock.Anything, domain.EventFilter{Status: &status, Limit: defaultListLimit}).Return(events, nil)

	result, err := svc.List(context.Background(), domain.EventFilter{Status: &status})

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestEventService_List_CapsLimit(t *testing.T) {
	svc, eventRepo, _, _, _ := newTestEventService(t)

	eventRepo.EXPECT().List(mock.Anything, domain.EventFilter{VenueID: "v1", Limit: maxListLimit}).Return(nil, nil)

	_, err := svc.List(context.Background(), domain.EventFilter{VenueID: "v1", Limit: 10_000})

	require.NoError(t, err)
}

func TestEventService_List_Error(t *testing.T) {
	svc, eventRepo, _, _, _ := newTestEventService(t)

	eventRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), domain.EventFilter{})

	require.Error(t, err)
}

func TestEventService_ListVersions(t *testing.T) {
	svc, eventRepo, _, versionRepo, _ := newTestEventService(t)

	versions := []*domain.EventVersion{{Version: 1}, {Version: 2}}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	versionRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(versions, nil)

	result, err := svc.ListVersions(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, versions, result)
}

func TestEventService_ListApprovals_EventMissing(t *testing.T) {
	svc, eventRepo, _, _, _ := newTestEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.ListApprovals(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ListApprovals(t *testing.T) {
	svc, eventRepo, _, _, approvalRepo := newTestEventService(t)

	approvals := []*domain.Approval{{ID: "ap1", EventID: "e1", Decision: domain.DecisionApproved}}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	approvalRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(approvals, nil)

	result, err := svc.ListApprovals(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
