package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lifecycleFixture struct {
	events    *mocks.MockEventRepo
	venues    *mocks.MockVenueRepo
	users     *mocks.MockUserRepo
	versions  *mocks.MockVersionRepo
	approvals *mocks.MockApprovalRepo
	audit     *mocks.MockAuditSink
	notifs    *mocks.MockNotificationRepo
	notifier  *mocks.MockNotifier
	listing   *mocks.MockListingPublisher
	svc       *EventLifecycle
}

func newLifecycleFixture(t *testing.T, opts LifecycleOptions) *lifecycleFixture {
	t.Helper()

	f := &lifecycleFixture{
		events:    mocks.NewMockEventRepo(t),
		venues:    mocks.NewMockVenueRepo(t),
		users:     mocks.NewMockUserRepo(t),
		versions:  mocks.NewMockVersionRepo(t),
		approvals: mocks.NewMockApprovalRepo(t),
		audit:     mocks.NewMockAuditSink(t),
		notifs:    mocks.NewMockNotificationRepo(t),
		notifier:  mocks.NewMockNotifier(t),
		listing:   mocks.NewMockListingPublisher(t),
	}

	log := newTestLogger(t)
	audit := NewAuditRecorder(f.audit, log)
	queue := NewNotificationQueue(f.notifs, f.users, f.events, f.notifier, log)
	reviewers := NewReviewerResolver(f.events, f.venues, f.users, audit, queue, log)

	f.svc = NewEventLifecycle(
		f.events, f.venues, f.approvals, f.listing,
		NewVersionStore(f.versions), reviewers, audit, queue,
		opts, log,
	)
	t.Cleanup(f.svc.Wait)

	return f
}

var (
	planner = domain.Actor{ID: "planner-1", Role: domain.RoleCentralPlanner}
	manager = domain.Actor{ID: "manager-1", Role: domain.RoleVenueManager}
)

func strPtr(s string) *string { return &s }

func draftInput(areaIDs ...string) domain.DraftInput {
	return domain.DraftInput{
		Title:   "Tap Takeover",
		VenueID: "v1",
		StartAt: time.Date(2026, 11, 6, 19, 0, 0, 0, time.UTC),
		AreaIDs: areaIDs,
	}
}

func TestEventLifecycle_CreateDraft_VenueWithoutAreas(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1", Name: "Main Hall"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, domain.ErrVersionNotFound)
	f.versions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *domain.EventVersion) bool {
		return v.Version == 1 && v.Payload[domain.SnapTitle] == "Tap Takeover"
	})).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditEventDraftCreated
	})).Return(nil)
	f.notifs.EXPECT().HasPending(mock.Anything, manager.ID, mock.Anything, domain.NotificationDraftReminder).Return(false, nil)
	f.notifs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.CreateDraft(context.Background(), draftInput(), manager)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Version)
	assert.Equal(t, domain.EventStatusDraft, res.Event.Status)
	assert.Equal(t, manager.ID, res.Event.CreatedBy)
	assert.Equal(t, res.Event.StartAt.Add(defaultEventDuration), res.Event.EndAt)
	assert.Empty(t, res.Warnings)
}

func TestEventLifecycle_CreateDraft_AreaSelectionRequired(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(2, nil)

	_, err := f.svc.CreateDraft(context.Background(), draftInput(), manager)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "area_ids", verr.Fields[0].Field)
}

func TestEventLifecycle_CreateDraft_WithArea(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().ListAreasByIDs(mock.Anything, []string{"a1"}).
		Return([]*domain.VenueArea{{ID: "a1", VenueID: "v1", Name: "Patio"}}, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.events.EXPECT().ReplaceAreas(mock.Anything, mock.Anything, []string{"a1"}).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, domain.ErrVersionNotFound)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.notifs.EXPECT().HasPending(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	res, err := f.svc.CreateDraft(context.Background(), draftInput("a1", "a1"), manager)

	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, res.Event.AreaIDs)
}

func TestEventLifecycle_CreateDraft_AreaVenueMismatch(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().ListAreasByIDs(mock.Anything, []string{"a9"}).
		Return([]*domain.VenueArea{{ID: "a9", VenueID: "v2"}}, nil)

	_, err := f.svc.CreateDraft(context.Background(), draftInput("a9"), manager)

	assert.ErrorIs(t, err, domain.ErrAreaVenueMismatch)
	assert.EqualError(t, err, "selected areas do not belong to the chosen venue")
}

func TestEventLifecycle_CreateDraft_UnknownArea(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().ListAreasByIDs(mock.Anything, []string{"a1", "a2"}).
		Return([]*domain.VenueArea{{ID: "a1", VenueID: "v1"}}, nil)

	_, err := f.svc.CreateDraft(context.Background(), draftInput("a1", "a2"), manager)

	assert.ErrorIs(t, err, domain.ErrAreaNotFound)
}

func TestEventLifecycle_CreateDraft_InvalidInput(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	in := draftInput()
	in.Title = "ab"
	end := in.StartAt.Add(-time.Hour)
	in.EndAt = &end

	_, err := f.svc.CreateDraft(context.Background(), in, manager)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"title", "end_at"}, fields)
}

func TestEventLifecycle_CreateDraft_MissingStart(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	in := draftInput()
	in.StartAt = time.Time{}

	_, err := f.svc.CreateDraft(context.Background(), in, manager)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "start_at: is required")
}

func TestEventLifecycle_CreateDraft_ReviewerForbidden(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	_, err := f.svc.CreateDraft(context.Background(), draftInput(), domain.Actor{ID: "r1", Role: domain.RoleReviewer})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventLifecycle_CreateDraft_RollsBackOnAreaLinkFailure(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	var createdID string
	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().ListAreasByIDs(mock.Anything, []string{"a1"}).
		Return([]*domain.VenueArea{{ID: "a1", VenueID: "v1"}}, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.Event) { createdID = e.ID }).
		Return(nil)
	f.events.EXPECT().ReplaceAreas(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.events.EXPECT().Delete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, id string) { assert.Equal(t, createdID, id) }).
		Return(nil).Once()

	res, err := f.svc.CreateDraft(context.Background(), draftInput("a1"), manager)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "db down")
}

func TestEventLifecycle_CreateDraft_RollsBackOnVersionFailure(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, domain.ErrVersionNotFound)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	f.events.EXPECT().Delete(mock.Anything, mock.Anything).Return(errors.New("delete failed")).Once()

	_, err := f.svc.CreateDraft(context.Background(), draftInput(), manager)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
	assert.Contains(t, err.Error(), "rollback delete event: delete failed")
}

func TestEventLifecycle_CreateDraft_AuditFailureIsWarning(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, domain.ErrVersionNotFound)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(errors.New("sink offline"))
	f.notifs.EXPECT().HasPending(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("db error"))

	res, err := f.svc.CreateDraft(context.Background(), draftInput(), manager)

	require.NoError(t, err)
	assert.Equal(t, []string{auditWarning, reminderWarning}, res.Warnings)
	assert.Equal(t, int64(1), f.svc.audit.Failures())
}

func TestEventLifecycle_CreateDraft_SubmitFailureKeepsDraft(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, domain.ErrVersionNotFound)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	in := draftInput()
	in.Submit = true
	res, err := f.svc.CreateDraft(context.Background(), in, manager)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartialFailure)
	assert.Contains(t, err.Error(), "draft created but submission failed")
	require.NotNil(t, res)
	assert.Equal(t, domain.EventStatusDraft, res.Event.Status)
	assert.Equal(t, 1, res.Version)
	f.events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEventLifecycle_CreateDraft_SubmitImmediately(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	version := &domain.EventVersion{Version: 1, Payload: domain.Snapshot{domain.SnapTitle: "Tap Takeover"}}
	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, domain.ErrVersionNotFound).Once()
	f.versions.EXPECT().Latest(mock.Anything, mock.Anything).Return(version, nil).Once()
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, mock.Anything).Return(nil, nil)
	f.venues.EXPECT().ListDefaultReviewers(mock.Anything, "v1").Return(nil, nil)
	f.users.EXPECT().ListByRole(mock.Anything, domain.RoleCentralPlanner).Return(nil, nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, mock.Anything, domain.EventStatusSubmitted, mock.Anything).Return(nil)
	f.notifs.EXPECT().CancelPending(mock.Anything, mock.Anything, domain.NotificationDraftReminder).Return(0, nil)

	in := draftInput()
	in.Submit = true
	res, err := f.svc.CreateDraft(context.Background(), in, manager)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusSubmitted, res.Event.Status)
	assert.Equal(t, 2, res.Version)
	assert.Nil(t, res.Event.AssignedReviewerID)
}

func existingDraft() *domain.Event {
	return &domain.Event{
		ID:          "e1",
		Title:       "Old title",
		Description: "old",
		VenueID:     "v1",
		Venue:       &domain.VenueRef{ID: "v1", Name: "Main Hall"},
		StartAt:     time.Date(2026, 11, 6, 19, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2026, 11, 6, 21, 0, 0, 0, time.UTC),
		Status:      domain.EventStatusDraft,
		CreatedBy:   manager.ID,
	}
}

func TestEventLifecycle_UpdateDraft_RestoresOnVersionFailure(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	original := existingDraft()
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(original.Clone(), nil)
	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().ListAreasByIDs(mock.Anything, []string{"a2"}).
		Return([]*domain.VenueArea{{ID: "a2", VenueID: "v1"}}, nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return([]string{"a1"}, nil)

	var areaWrites [][]string
	f.events.EXPECT().ReplaceAreas(mock.Anything, "e1", mock.Anything).
		Run(func(_ context.Context, _ string, ids []string) { areaWrites = append(areaWrites, ids) }).
		Return(nil).Times(2)

	var rowWrites []*domain.Event
	f.events.EXPECT().Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.Event) { rowWrites = append(rowWrites, e.Clone()) }).
		Return(nil).Times(2)

	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 1, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	in := domain.UpdateDraftInput{EventID: "e1", DraftInput: draftInput("a2")}
	_, err := f.svc.UpdateDraft(context.Background(), in, manager)

	require.Error(t, err)
	assert.Equal(t, [][]string{{"a2"}, {"a1"}}, areaWrites)
	require.Len(t, rowWrites, 2)
	assert.Equal(t, "Tap Takeover", rowWrites[0].Title)
	assert.Equal(t, original.Title, rowWrites[1].Title)
	assert.Equal(t, original.Description, rowWrites[1].Description)
	assert.Equal(t, original.StartAt, rowWrites[1].StartAt)
	assert.Equal(t, original.EndAt, rowWrites[1].EndAt)
}

func TestEventLifecycle_UpdateDraft_MergesSnapshot(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)
	f.venues.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return(nil, nil)
	f.events.EXPECT().ReplaceAreas(mock.Anything, "e1", mock.Anything).Return(nil)
	f.events.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{
		Version: 3,
		Payload: domain.Snapshot{domain.SnapTitle: "Old title", domain.SnapDecisionNote: "add a poster"},
	}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *domain.EventVersion) bool {
		return v.Version == 4 &&
			v.Payload[domain.SnapTitle] == "Tap Takeover" &&
			v.Payload[domain.SnapDecisionNote] == "add a poster"
	})).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		prev, _ := e.Details["previous"].(domain.Snapshot)
		return e.Action == domain.AuditEventDraftUpdated && prev[domain.SnapTitle] == "Old title"
	})).Return(nil)

	res, err := f.svc.UpdateDraft(context.Background(), domain.UpdateDraftInput{EventID: "e1", DraftInput: draftInput()}, planner)

	require.NoError(t, err)
	assert.Equal(t, 4, res.Version)
	assert.Equal(t, "Tap Takeover", res.Event.Title)
}

func TestEventLifecycle_UpdateDraft_InvalidStatus(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	ev := existingDraft()
	ev.Status = domain.EventStatusSubmitted
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(ev, nil)

	_, err := f.svc.UpdateDraft(context.Background(), domain.UpdateDraftInput{EventID: "e1", DraftInput: draftInput()}, manager)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "only drafts or revisions can be updated")
}

func TestEventLifecycle_UpdateDraft_OtherManagerForbidden(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)

	other := domain.Actor{ID: "manager-2", Role: domain.RoleVenueManager}
	_, err := f.svc.UpdateDraft(context.Background(), domain.UpdateDraftInput{EventID: "e1", DraftInput: draftInput()}, other)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventLifecycle_Submit_NoReviewerAvailable(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return(nil, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(0, nil)
	f.venues.EXPECT().ListDefaultReviewers(mock.Anything, "v1").Return(nil, nil)
	f.users.EXPECT().ListByRole(mock.Anything, domain.RoleCentralPlanner).Return(nil, nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusSubmitted, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 1, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *domain.EventVersion) bool {
		return v.Version == 2 && v.SubmittedBy != nil && *v.SubmittedBy == manager.ID &&
			v.Payload[domain.SnapReviewerID] == nil
	})).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditEventSubmitted
	})).Return(nil)
	f.notifs.EXPECT().CancelPending(mock.Anything, "e1", domain.NotificationDraftReminder).Return(1, nil)

	res, err := f.svc.Submit(context.Background(), "e1", manager)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusSubmitted, res.Event.Status)
	assert.Nil(t, res.Event.AssignedReviewerID)
	assert.False(t, res.ReviewerAssigned)
	assert.Equal(t, 2, res.Version)
}

func TestEventLifecycle_Submit_AssignsVenueDefaultReviewer(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	reviewer := &domain.User{ID: "r1", Role: domain.RoleReviewer}
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return([]string{"a1"}, nil)
	f.venues.EXPECT().ListDefaultReviewers(mock.Anything, "v1").Return([]string{"r1", "r2"}, nil)
	f.events.EXPECT().AssignReviewer(mock.Anything, "e1", "r1").Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.users.EXPECT().GetByID(mock.Anything, "r1").Return(reviewer, nil)
	f.notifier.EXPECT().NotifyReviewerAssigned(mock.Anything, reviewer, mock.Anything).Return(errors.New("smtp down"))
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusSubmitted, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(nil, domain.ErrVersionNotFound)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.notifs.EXPECT().CancelPending(mock.Anything, "e1", domain.NotificationDraftReminder).Return(0, nil)

	res, err := f.svc.Submit(context.Background(), "e1", manager)
	f.svc.Wait()

	require.NoError(t, err)
	require.NotNil(t, res.Event.AssignedReviewerID)
	assert.Equal(t, "r1", *res.Event.AssignedReviewerID)
	assert.True(t, res.ReviewerAssigned)
	assert.Equal(t, []string{"a1"}, res.Event.AreaIDs)
}

func TestEventLifecycle_Submit_AreasRequired(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return(nil, nil)
	f.venues.EXPECT().CountAreas(mock.Anything, "v1").Return(1, nil)

	_, err := f.svc.Submit(context.Background(), "e1", manager)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "assign at least one venue area before submitting")
}

func TestEventLifecycle_Submit_VersionFailureIsReported(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	ev := existingDraft()
	ev.Status = domain.EventStatusNeedsRevisions
	ev.AssignedReviewerID = strPtr("r1")
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(ev, nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return([]string{"a1"}, nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusSubmitted, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(nil, errors.New("read timeout"))
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.notifs.EXPECT().CancelPending(mock.Anything, "e1", domain.NotificationDraftReminder).Return(0, nil)

	res, err := f.svc.Submit(context.Background(), "e1", manager)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartialFailure)
	assert.Contains(t, err.Error(), "draft submitted but version snapshot failed: ")
	require.NotNil(t, res)
	assert.Equal(t, domain.EventStatusSubmitted, res.Event.Status)
	assert.False(t, res.ReviewerAssigned)
	f.events.AssertNotCalled(t, "AssignReviewer", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventLifecycle_Submit_AlreadySubmitted(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	ev := existingDraft()
	ev.Status = domain.EventStatusApproved
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(ev, nil)

	_, err := f.svc.Submit(context.Background(), "e1", planner)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func submittedEvent() *domain.Event {
	ev := existingDraft()
	ev.Status = domain.EventStatusSubmitted
	ev.AssignedReviewerID = strPtr("r1")
	return ev
}

var reviewerActor = domain.Actor{ID: "r1", Role: domain.RoleReviewer}

func TestEventLifecycle_Decide_Approved(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	creator := &domain.User{ID: manager.ID, Role: domain.RoleVenueManager}
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(submittedEvent(), nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 2, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *domain.EventVersion) bool {
		return v.Version == 3 && v.Payload[domain.SnapDecision] == "approved"
	})).Return(nil)
	f.approvals.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.Approval) bool {
		return a.ReviewerID == "r1" && a.Decision == domain.DecisionApproved && a.Version == 3
	})).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditEventApproved
	})).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, manager.ID).Return(creator, nil)
	f.notifier.EXPECT().NotifyDecision(mock.Anything, creator, mock.Anything, domain.DecisionApproved, "looks good").Return(nil)
	f.listing.EXPECT().PublishDecision(mock.Anything, mock.Anything, domain.DecisionApproved).Return(nil)

	res, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionApproved, Note: "looks good",
	}, reviewerActor)
	f.svc.Wait()

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusApproved, res.Event.Status)
	assert.Equal(t, 3, res.Version)
	assert.NotNil(t, res.Event.DecidedAt)
}

func TestEventLifecycle_Decide_NeedsRevisionsSkipsListing(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(submittedEvent(), nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusNeedsRevisions, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 2, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.approvals.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditEventNeedsRevisions
	})).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, manager.ID).Return(nil, domain.ErrUserNotFound)

	res, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionNeedsRevisions,
	}, planner)
	f.svc.Wait()

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusNeedsRevisions, res.Event.Status)
	f.listing.AssertNotCalled(t, "PublishDecision", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventLifecycle_Decide_ApprovalLogFailure(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(submittedEvent(), nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 2, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.approvals.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("constraint"))
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, manager.ID).Return(&domain.User{ID: manager.ID}, nil)
	f.notifier.EXPECT().NotifyDecision(mock.Anything, mock.Anything, mock.Anything, domain.DecisionRejected, "").Return(nil)
	f.listing.EXPECT().PublishDecision(mock.Anything, mock.Anything, domain.DecisionRejected).Return(errors.New("broker down"))

	res, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionRejected,
	}, reviewerActor)
	f.svc.Wait()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartialFailure)
	assert.Contains(t, err.Error(), "decision recorded but approval log failed")
	assert.Equal(t, domain.EventStatusRejected, res.Event.Status)
	f.events.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestEventLifecycle_Decide_VersionFailure(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(submittedEvent(), nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 2, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	f.approvals.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, manager.ID).Return(&domain.User{ID: manager.ID}, nil)
	f.notifier.EXPECT().NotifyDecision(mock.Anything, mock.Anything, mock.Anything, domain.DecisionApproved, "").Return(nil)
	f.listing.EXPECT().PublishDecision(mock.Anything, mock.Anything, domain.DecisionApproved).Return(nil)

	res, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionApproved,
	}, reviewerActor)
	f.svc.Wait()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decision applied but version snapshot failed")
	assert.Equal(t, domain.EventStatusApproved, res.Event.Status)
	assert.Zero(t, res.Version)
}

func TestEventLifecycle_Decide_InvalidStatus(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	ev := submittedEvent()
	ev.Status = domain.EventStatusNeedsRevisions
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(ev, nil)

	_, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionApproved,
	}, reviewerActor)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "only submitted drafts or revisions can receive a new decision")
}

func TestEventLifecycle_Decide_RevisionsAllowedByOption(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{AllowDecisionOnRevisions: true})

	ev := submittedEvent()
	ev.Status = domain.EventStatusNeedsRevisions
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(ev, nil)
	f.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, mock.Anything).Return(nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{Version: 4, Payload: domain.Snapshot{}}, nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	f.approvals.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, manager.ID).Return(&domain.User{ID: manager.ID}, nil)
	f.notifier.EXPECT().NotifyDecision(mock.Anything, mock.Anything, mock.Anything, domain.DecisionRejected, "").Return(nil)
	f.listing.EXPECT().PublishDecision(mock.Anything, mock.Anything, domain.DecisionRejected).Return(nil)

	res, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionRejected,
	}, reviewerActor)
	f.svc.Wait()

	require.NoError(t, err)
	assert.Equal(t, 5, res.Version)
}

func TestEventLifecycle_Decide_UnassignedReviewerForbidden(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(submittedEvent(), nil)

	_, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: domain.DecisionApproved,
	}, domain.Actor{ID: "r2", Role: domain.RoleReviewer})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventLifecycle_Decide_UnknownDecision(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	_, err := f.svc.Decide(context.Background(), domain.DecideInput{
		EventID: "e1", Decision: "maybe",
	}, planner)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventLifecycle_Clone_ApprovedEvent(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	source := submittedEvent()
	source.Status = domain.EventStatusApproved
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(source, nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return([]string{"a1", "a2"}, nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(&domain.EventVersion{
		Version: 3,
		Payload: domain.Snapshot{domain.SnapTitle: "Old title", domain.SnapDecision: "approved", domain.SnapReviewerID: "r1"},
	}, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.events.EXPECT().ReplaceAreas(mock.Anything, mock.Anything, []string{"a1", "a2"}).Return(nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v *domain.EventVersion) bool {
		return v.Version == 1 &&
			v.EventID != "e1" &&
			v.Payload[domain.SnapClonedFrom] == "e1" &&
			v.Payload[domain.SnapClonedFromVersion] == 3 &&
			v.Payload[domain.SnapDecision] == "approved" &&
			v.Payload[domain.SnapReviewerID] == nil &&
			v.Payload[domain.SnapStatus] == "draft"
	})).Return(nil)
	f.audit.EXPECT().Write(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditEventCloned
	})).Return(nil)

	res, err := f.svc.Clone(context.Background(), "e1", planner)

	require.NoError(t, err)
	assert.NotEqual(t, "e1", res.Event.ID)
	assert.Equal(t, "Old title (Copy)", res.Event.Title)
	assert.Equal(t, domain.EventStatusDraft, res.Event.Status)
	assert.Nil(t, res.Event.AssignedReviewerID)
	assert.Equal(t, 1, res.Version)
	assert.Equal(t, []string{"a1", "a2"}, res.Event.AreaIDs)
	assert.Equal(t, planner.ID, res.Event.CreatedBy)
}

func TestEventLifecycle_Clone_ManagerForbidden(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)

	_, err := f.svc.Clone(context.Background(), "e1", manager)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventLifecycle_Clone_RollsBackOnVersionFailure(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(existingDraft(), nil)
	f.events.EXPECT().ListAreaIDs(mock.Anything, "e1").Return(nil, nil)
	f.versions.EXPECT().Latest(mock.Anything, "e1").Return(nil, domain.ErrVersionNotFound)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.versions.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	f.events.EXPECT().Delete(mock.Anything, mock.MatchedBy(func(id string) bool { return id != "e1" })).Return(nil).Once()

	res, err := f.svc.Clone(context.Background(), "e1", planner)

	require.Error(t, err)
	assert.Nil(t, res)
}

func TestEventLifecycle_NotFound(t *testing.T) {
	f := newLifecycleFixture(t, LifecycleOptions{})

	f.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.Submit(context.Background(), "missing", planner)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
