package domain

import "time"

// AuditAction values are consumed verbatim by external audit readers.
type AuditAction string

const (
	AuditEventDraftCreated     AuditAction = "event.draft_created"
	AuditEventDraftUpdated     AuditAction = "event.draft_updated"
	AuditEventSubmitted        AuditAction = "event.submitted"
	AuditEventApproved         AuditAction = "event.approved"
	AuditEventRejected         AuditAction = "event.rejected"
	AuditEventNeedsRevisions   AuditAction = "event.needs_revisions"
	AuditEventCloned           AuditAction = "event.cloned"
	AuditEventReviewerAssigned AuditAction = "event.reviewer_assigned"
)

const AuditEntityEvent = "event"

type AuditEntry struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	Action     AuditAction    `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Details    map[string]any `json:"details"`
	Timestamp  time.Time      `json:"timestamp"`
}

type Approval struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	ReviewerID string    `json:"reviewer_id"`
	Decision   Decision  `json:"decision"`
	Note       string    `json:"note"`
	Version    int       `json:"version"`
	DecidedAt  time.Time `json:"decided_at"`
}
