package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleCentralPlanner Role = "central_planner"
	RoleVenueManager   Role = "venue_manager"
	RoleReviewer       Role = "reviewer"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCentralPlanner, RoleVenueManager, RoleReviewer:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Email          string
	Role           Role
	TelegramChatID *int64
}

// Actor is the request-scoped identity performing a lifecycle operation.
type Actor struct {
	ID   string
	Role Role
}

func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
