package dto

import (
	"time"

	"github.com/stpnv0/EventPlanner/internal/domain"
)

type VenueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventResponse struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	VenueID            string         `json:"venue_id"`
	Venue              *VenueResponse `json:"venue,omitempty"`
	AreaIDs            []string       `json:"area_ids"`
	StartAt            string         `json:"start_at"`
	EndAt              string         `json:"end_at"`
	Status             string         `json:"status"`
	CreatedBy          string         `json:"created_by"`
	AssignedReviewerID *string        `json:"assigned_reviewer_id"`
	SubmittedAt        *string        `json:"submitted_at,omitempty"`
	DecidedAt          *string        `json:"decided_at,omitempty"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}

type TransitionResponse struct {
	Event            EventResponse `json:"event"`
	Version          int           `json:"version"`
	ReviewerAssigned bool          `json:"reviewer_assigned"`
	Warnings         []string      `json:"warnings,omitempty"`
}

type AreaResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}

type EventDetailsResponse struct {
	Event   EventResponse  `json:"event"`
	Areas   []AreaResponse `json:"areas"`
	Version int            `json:"version"`
}

type VersionResponse struct {
	Version     int             `json:"version"`
	Payload     domain.Snapshot `json:"payload"`
	SubmittedAt *string         `json:"submitted_at,omitempty"`
	SubmittedBy *string         `json:"submitted_by,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
}

type ApprovalResponse struct {
	ID         string `json:"id"`
	ReviewerID string `json:"reviewer_id"`
	Decision   string `json:"decision"`
	Note       string `json:"note,omitempty"`
	Version    int    `json:"version"`
	DecidedAt  string `json:"decided_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	EventID string              `json:"event_id,omitempty"`
	// Result is what was committed before a partial failure.
	Result *TransitionResponse `json:"result,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToEventResponse(e *domain.Event) EventResponse {
	areaIDs := e.AreaIDs
	if areaIDs == nil {
		areaIDs = []string{}
	}

	resp := EventResponse{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		VenueID:            e.VenueID,
		AreaIDs:            areaIDs,
		StartAt:            e.StartAt.Format(time.RFC3339),
		EndAt:              e.EndAt.Format(time.RFC3339),
		Status:             string(e.Status),
		CreatedBy:          e.CreatedBy,
		AssignedReviewerID: e.AssignedReviewerID,
		SubmittedAt:        formatTime(e.SubmittedAt),
		DecidedAt:          formatTime(e.DecidedAt),
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          e.UpdatedAt.Format(time.RFC3339),
	}
	if e.Venue != nil {
		resp.Venue = &VenueResponse{ID: e.Venue.ID, Name: e.Venue.Name}
	}

	return resp
}

func ToTransitionResponse(r *domain.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Event:            ToEventResponse(r.Event),
		Version:          r.Version,
		ReviewerAssigned: r.ReviewerAssigned,
		Warnings:         r.Warnings,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	areas := make([]AreaResponse, 0, len(d.Areas))
	for _, a := range d.Areas {
		areas = append(areas, AreaResponse{ID: a.ID, Name: a.Name, Capacity: a.Capacity})
	}

	return EventDetailsResponse{
		Event:   ToEventResponse(&d.Event),
		Areas:   areas,
		Version: d.Version,
	}
}

func ToVersionResponse(v *domain.EventVersion) VersionResponse {
	return VersionResponse{
		Version:     v.Version,
		Payload:     v.Payload,
		SubmittedAt: formatTime(v.SubmittedAt),
		SubmittedBy: v.SubmittedBy,
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func ToApprovalResponse(a *domain.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:         a.ID,
		ReviewerID: a.ReviewerID,
		Decision:   string(a.Decision),
		Note:       a.Note,
		Version:    a.Version,
		DecidedAt:  a.DecidedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
