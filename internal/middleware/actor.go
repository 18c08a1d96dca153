package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	UserIDHeader = "X-User-ID"
	actorKey     = "actor"
)

type userLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Actor resolves the X-User-ID header to a known user and stores it on the
// request context. Unknown or missing identities are rejected with 401.
func Actor(users userLookup, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": UserIDHeader + " header with a valid user id is required"},
			)
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unknown user"})
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "resolve actor",
				logger.String("user_id", id),
				logger.Any("error", err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		c.Set(actorKey, user.Actor())
		c.Next()
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
