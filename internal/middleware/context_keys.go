package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// actorIDKey is the key used to store the acting user's ID in the context.
const actorIDKey = contextKey("actorID")

// actorHeader carries the acting user's ID, set by the upstream gateway
// that owns authentication.
const actorHeader = "X-Actor-ID"

// ActorMiddleware copies the acting user's ID from the gateway header into
// the request context for audit fields and logging.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorID := c.GetHeader(actorHeader); actorID != "" {
			ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
			c.Request = c.Request.WithContext(ctx)
			c.Set(string(actorIDKey), actorID)
		}
		c.Next()
	}
}

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(actorIDKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	actorID, ok := actorIDVal.(string)
	if !ok {
		return "", false
	}

	return actorID, true
}
