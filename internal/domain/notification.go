package domain

import "time"

type NotificationType string

const (
	NotificationDraftReminder NotificationType = "draft_reminder"
)

type NotificationStatus string

const (
	NotificationQueued    NotificationStatus = "queued"
	NotificationSending   NotificationStatus = "sending"
	NotificationSent      NotificationStatus = "sent"
	NotificationFailed    NotificationStatus = "failed"
	NotificationCancelled NotificationStatus = "cancelled"
)

// PendingNotificationStatuses block a second reminder for the same user and event.
var PendingNotificationStatuses = []NotificationStatus{NotificationQueued, NotificationSending}

type Notification struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	EventID      string             `json:"event_id"`
	Type         NotificationType   `json:"type"`
	Status       NotificationStatus `json:"status"`
	Payload      map[string]any     `json:"payload"`
	ScheduledFor time.Time          `json:"scheduled_for"`
	LastError    string             `json:"last_error,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
