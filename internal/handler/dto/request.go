package dto

type DraftRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	VenueID     string   `json:"venue_id" binding:"required"`
	StartAt     string   `json:"start_at" binding:"required"`
	EndAt       *string  `json:"end_at"`
	AreaIDs     []string `json:"area_ids"`
	Submit      bool     `json:"submit"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Note     string `json:"note"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Role           string `json:"role" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
