package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/middleware"
	"github.com/nikitph/los-backend/internal/platform/config"
)

// GoogleOAuthHandler handles the authorization-code exchange flow. The
// frontend obtains the code from Google and posts it here; the handler
// resolves it to a verified identity and issues the application's own tokens.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	authHandler        *AuthHandler
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(gs portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ah *AuthHandler) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: gs,
		userService:        us,
		authHandler:        ah,
	}
}

// ExchangeCodeRequest is the JSON body for the /auth/google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User,
		NewAuthHandler(services.User, services.TokenService, cfg))

	google := rg.Group("/api/v1/auth/google")
	{
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google authorization code for tokens
// @Description Exchanges the authorization code for a verified Google identity, creates the user on first sign-in, and returns the application's token pair.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	identity, err := h.googleOAuthService.ExchangeCodeForIdentity(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}

	user, err := h.userService.FindOrCreateFromGoogle(ctx, identity.Email, identity.FirstName, identity.LastName)
	if err != nil {
		respondWithError(c, err, "Failed to resolve Google identity to a user")
		return
	}

	resp, err := h.authHandler.buildLoginResponse(c, user)
	if err != nil {
		logger.Error("Failed to issue token pair after Google sign-in", "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
