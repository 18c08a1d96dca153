package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStatus_Editable(t *testing.T) {
	editable := map[EventStatus]bool{
		EventStatusDraft:          true,
		EventStatusNeedsRevisions: true,
		EventStatusSubmitted:      false,
		EventStatusApproved:       false,
		EventStatusRejected:       false,
		EventStatusCompleted:      false,
	}

	for status, want := range editable {
		assert.Equal(t, want, status.Editable(), string(status))
	}
}

func TestParseEventStatus(t *testing.T) {
	st, err := ParseEventStatus("needs_revisions")
	require.NoError(t, err)
	assert.Equal(t, EventStatusNeedsRevisions, st)

	_, err = ParseEventStatus("archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDecision_StatusAndAudit(t *testing.T) {
	assert.Equal(t, EventStatusApproved, DecisionApproved.Status())
	assert.Equal(t, EventStatusRejected, DecisionRejected.Status())
	assert.Equal(t, EventStatusNeedsRevisions, DecisionNeedsRevisions.Status())

	assert.Equal(t, AuditAction("event.approved"), DecisionApproved.AuditAction())
	assert.Equal(t, AuditAction("event.rejected"), DecisionRejected.AuditAction())
	assert.Equal(t, AuditAction("event.needs_revisions"), DecisionNeedsRevisions.AuditAction())

	_, err := ParseDecision("submitted")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEvent_CloneIsDeep(t *testing.T) {
	reviewer := "r1"
	ev := &Event{ID: "e1", AreaIDs: []string{"a1"}, Venue: &VenueRef{ID: "v1"}, AssignedReviewerID: &reviewer}

	cp := ev.Clone()
	cp.AreaIDs[0] = "changed"
	cp.Venue.Name = "changed"
	*cp.AssignedReviewerID = "changed"

	assert.Equal(t, "a1", ev.AreaIDs[0])
	assert.Empty(t, ev.Venue.Name)
	assert.Equal(t, "r1", *ev.AssignedReviewerID)
}

func TestSnapshot_Merge(t *testing.T) {
	base := Snapshot{"title": "A", "note": "n"}
	merged := base.Merge(Snapshot{"title": "B", SnapReviewerID: nil})

	assert.Equal(t, Snapshot{"title": "B", "note": "n", SnapReviewerID: nil}, merged)
	assert.Equal(t, "A", base["title"])
}

func TestPartialFailureError(t *testing.T) {
	cause := errors.New("timeout")
	err := error(&PartialFailureError{EventID: "e1", Committed: "draft submitted", Failed: "version snapshot", Err: cause})

	assert.EqualError(t, err, "draft submitted but version snapshot failed: timeout")
	assert.ErrorIs(t, err, ErrPartialFailure)
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Fields: []FieldError{
		{Field: "title", Message: "is required"},
		{Field: "area_ids", Message: "select at least one venue area"},
	}})

	assert.EqualError(t, err, "validation error: title: is required; area_ids: select at least one venue area")
	assert.ErrorIs(t, err, ErrValidation)
}
