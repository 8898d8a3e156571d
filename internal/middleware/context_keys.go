package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// actorIDKey is the key used to store the acting staff member's ID in the
// context. Using a custom type prevents collisions.
const actorIDKey = contextKey("actorID")

// actorIDHeader names the header the reception and module frontends send to
// identify the staff member behind a posting.
const actorIDHeader = "X-Actor-ID"

// defaultActorID is recorded when no header is present, e.g. for internal
// sweeps triggered from the console.
const defaultActorID = "system"

// ActorMiddleware copies the acting staff member's ID from the request
// header into both the Gin context and the request context.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(actorIDHeader)
		if actorID == "" {
			actorID = defaultActorID
		}

		c.Set(string(actorIDKey), actorID)
		ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetActorIDFromContext retrieves the acting staff member's ID from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(actorIDKey); v != nil {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
		return "", false
	}

	actorID, ok := actorIDVal.(string)
	if !ok {
		return "", false
	}

	return actorID, true
}
