package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nikitph/los-backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// authUserKey is the key used to store the resolved session principal.
const authUserKey = contextKey("authUser")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetAuthUserFromContext retrieves the resolved session principal, set by the
// ability middleware after bank membership lookup.
func GetAuthUserFromContext(c *gin.Context) (*domain.AuthUser, bool) {
	val := c.Request.Context().Value(authUserKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.AuthUser)
	return user, ok
}

// WithAuthUser returns a context carrying the session principal.
func WithAuthUser(ctx context.Context, user *domain.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}
