package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-api/internal/actor"
	"portfolio-api/internal/domain/user"
)

// ActorMiddleware binds the authenticated user to the request context for the
// rest of the chain and releases it when the chain returns, panics included.
// Requests without AuthMiddleware claims stay anonymous.
func ActorMiddleware(users user.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		if userID == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}
		internalID, err := users.FetchInternalID(c.Request.Context(), id)
		if err != nil {
			logger.Warn("actor lookup failed", zap.String("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		ctx, release := actor.Bind(c.Request.Context(), actor.Actor{
			ID:   internalID,
			UUID: id,
			Role: c.GetString(CtxUserRole),
		})
		defer release()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
