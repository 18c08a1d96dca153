package domain

import (
	"time"
)

// Snapshot is the structured payload of an event version.
type Snapshot map[string]any

const (
	SnapTitle             = "title"
	SnapDescription       = "description"
	SnapVenueID           = "venue_id"
	SnapAreaIDs           = "area_ids"
	SnapStartAt           = "start_at"
	SnapEndAt             = "end_at"
	SnapStatus            = "status"
	SnapReviewerID        = "assigned_reviewer_id"
	SnapSubmittedAt       = "submitted_at"
	SnapSubmittedBy       = "submitted_by"
	SnapDecision          = "decision"
	SnapDecisionNote      = "decision_note"
	SnapDecidedBy         = "decided_by"
	SnapDecidedAt         = "decided_at"
	SnapClonedFrom        = "cloned_from"
	SnapClonedAt          = "cloned_at"
	SnapClonedFromVersion = "cloned_from_version"
)

// Merge layers other over s without touching either map. Keys missing from
// other keep their value from s.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	out := make(Snapshot, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// EditableSnapshot captures the fields a creator can change.
func EditableSnapshot(e *Event) Snapshot {
	areas := append([]string{}, e.AreaIDs...)
	return Snapshot{
		SnapTitle:       e.Title,
		SnapDescription: e.Description,
		SnapVenueID:     e.VenueID,
		SnapAreaIDs:     areas,
		SnapStartAt:     e.StartAt.UTC().Format(time.RFC3339),
		SnapEndAt:       e.EndAt.UTC().Format(time.RFC3339),
		SnapStatus:      string(e.Status),
	}
}

type EventVersion struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Version     int        `json:"version"`
	Payload     Snapshot   `json:"payload"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	SubmittedBy *string    `json:"submitted_by,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

type VersionMeta struct {
	ActorID     string
	SubmittedAt *time.Time
	SubmittedBy *string
}
