package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor_id"

// RequireActor extracts the acting admin's ID from the X-Admin-ID header.
// The upstream booking platform stays authoritative for authorization;
// the console only needs to know who is asking so the confirmation gate
// can apply the bootstrap-admin protection rules.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Admin-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: X-Admin-ID header required"})
			return
		}

		actorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Admin-ID header"})
			return
		}

		c.Set(actorKey, actorID)
		c.Next()
	}
}

// ActorID reads the acting admin's ID set by RequireActor.
func ActorID(c *gin.Context) int64 {
	if v, exists := c.Get(actorKey); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
