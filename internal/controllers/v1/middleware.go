package v1

import (
	"strings"

	"github.com/centsible/backend/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contextUser is the gin context key the authenticated user ID is stored
// under.
const contextUser = "centsible-user"

// RequireAuth resolves the Authorization header to a user ID and aborts
// unauthenticated requests. Handlers behind this middleware can rely on
// currentUser always returning a valid user ID.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(status(auth.ErrMissingToken), httpError{
				Error: auth.ErrMissingToken.Error(),
			})
			return
		}

		userID, err := tokens.ParseSession(token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(contextUser, userID)
		c.Next()
	}
}

// currentUser returns the authenticated user's ID.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUser).(uuid.UUID)
}
