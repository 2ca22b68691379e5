package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
)

// bankIDHeader selects the tenant scope for the request. A user can belong to
// more than one bank; the client states which one it is acting in.
const bankIDHeader = "X-Bank-ID"

// ResolvePrincipal builds the session principal (user + roles + bank scope)
// once per request and stores it in the context for handlers and the ability
// gate. It must run after AuthMiddleware.
func ResolvePrincipal(abilitySvc portssvc.AbilitySvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID not found in context, is AuthMiddleware applied?")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		bankID := c.GetHeader(bankIDHeader)
		authUser, err := abilitySvc.ResolveAuthUser(c.Request.Context(), userID, bankID)
		if err != nil {
			logger.Warn("Failed to resolve session principal", "error", err, "bank_id", bankID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No membership in the requested bank"})
			return
		}

		c.Request = c.Request.WithContext(WithAuthUser(c.Request.Context(), authUser))
		c.Next()
	}
}

// RequireAbility gates a route on the ability engine. Every mutating route is
// wrapped with this so no operation relies on callers remembering to check;
// the check is default-deny.
func RequireAbility(abilitySvc portssvc.AbilitySvcFacade, action domain.AbilityAction, subject domain.AbilitySubject) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authUser, ok := GetAuthUserFromContext(c)
		if !ok {
			logger.Error("Session principal not found in context, is ResolvePrincipal applied?")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ability := abilitySvc.DefineAbilityFor(authUser)
		if ability.Cannot(action, subject) {
			logger.Warn("Ability check denied",
				"action", string(action),
				"subject", string(subject),
				"role", string(authUser.CurrentRole))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}
