package domain

import (
	"fmt"
	"time"
)

type EventStatus string

const (
	EventStatusDraft          EventStatus = "draft"
	EventStatusSubmitted      EventStatus = "submitted"
	EventStatusNeedsRevisions EventStatus = "needs_revisions"
	EventStatusApproved       EventStatus = "approved"
	EventStatusRejected       EventStatus = "rejected"
	EventStatusCompleted      EventStatus = "completed"
)

var eventStatuses = map[EventStatus]struct{}{
	EventStatusDraft:          {},
	EventStatusSubmitted:      {},
	EventStatusNeedsRevisions: {},
	EventStatusApproved:       {},
	EventStatusRejected:       {},
	EventStatusCompleted:      {},
}

func ParseEventStatus(s string) (EventStatus, error) {
	st := EventStatus(s)
	if _, ok := eventStatuses[st]; !ok {
		return "", fmt.Errorf("%w: unknown event status %q", ErrValidation, s)
	}
	return st, nil
}

// Editable reports whether the creator may still change the event.
func (s EventStatus) Editable() bool {
	return s == EventStatusDraft || s == EventStatusNeedsRevisions
}

// VenueRef is the venue as joined onto an event row. Adapters always produce
// at most one of these, never a list.
type VenueRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Event struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	VenueID            string      `json:"venue_id"`
	Venue              *VenueRef   `json:"venue,omitempty"`
	AreaIDs            []string    `json:"area_ids"`
	StartAt            time.Time   `json:"start_at"`
	EndAt              time.Time   `json:"end_at"`
	Status             EventStatus `json:"status"`
	CreatedBy          string      `json:"created_by"`
	AssignedReviewerID *string     `json:"assigned_reviewer_id"`
	SubmittedAt        *time.Time  `json:"submitted_at,omitempty"`
	DecidedAt          *time.Time  `json:"decided_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// Clone returns a deep copy safe to hand to background goroutines.
func (e *Event) Clone() *Event {
	cp := *e
	cp.AreaIDs = append([]string(nil), e.AreaIDs...)
	if e.Venue != nil {
		v := *e.Venue
		cp.Venue = &v
	}
	if e.AssignedReviewerID != nil {
		id := *e.AssignedReviewerID
		cp.AssignedReviewerID = &id
	}
	if e.SubmittedAt != nil {
		t := *e.SubmittedAt
		cp.SubmittedAt = &t
	}
	if e.DecidedAt != nil {
		t := *e.DecidedAt
		cp.DecidedAt = &t
	}
	return &cp
}

type EventFilter struct {
	Status  *EventStatus
	VenueID string
	Limit   int
}

// DraftInput carries the editable fields of a create or update request.
type DraftInput struct {
	Title       string     `json:"title"       validate:"required,min=3,max=150"`
	Description string     `json:"description" validate:"max=5000"`
	VenueID     string     `json:"venue_id"    validate:"required"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	AreaIDs     []string   `json:"area_ids"    validate:"dive,required"`
	// Submit chains into the submit operation once the draft is saved.
	Submit bool `json:"submit"`
}

type UpdateDraftInput struct {
	EventID string `json:"event_id" validate:"required"`
	DraftInput
}

type Decision string

const (
	DecisionApproved       Decision = "approved"
	DecisionNeedsRevisions Decision = "needs_revisions"
	DecisionRejected       Decision = "rejected"
)

func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionApproved, DecisionNeedsRevisions, DecisionRejected:
		return d, nil
	default:
		return "", &ValidationError{Fields: []FieldError{{Field: "decision", Message: "must be one of approved, needs_revisions, rejected"}}}
	}
}

func (d Decision) Status() EventStatus {
	return EventStatus(d)
}

func (d Decision) AuditAction() AuditAction {
	switch d {
	case DecisionApproved:
		return AuditEventApproved
	case DecisionRejected:
		return AuditEventRejected
	default:
		return AuditEventNeedsRevisions
	}
}

type DecideInput struct {
	EventID  string
	Decision Decision
	Note     string
}

// TransitionResult is returned by every lifecycle operation.
type TransitionResult struct {
	Event            *Event   `json:"event"`
	Version          int      `json:"version"`
	ReviewerAssigned bool     `json:"reviewer_assigned"`
	Warnings         []string `json:"warnings,omitempty"`
}

type EventDetails struct {
	Event   Event        `json:"event"`
	Areas   []*VenueArea `json:"areas"`
	Version int          `json:"version"`
}
