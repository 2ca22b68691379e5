package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nikitph/los-backend/cmd/docs"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/middleware"
	"github.com/nikitph/los-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)
	registerGoogleOAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Every route in the group carries a resolved session principal (user + role + bank scope), so
// handlers and the ability gate never re-derive it.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ResolvePrincipal(services.Ability),
	)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User)
	registerBankRoutes(v1, services.Bank, services.Ability)
	registerApplicantRoutes(v1, services.Applicant, services.Eligibility, services.Ability)
	registerLoanRoutes(v1, services.Loan, services.Verification, services.Timeline, services.Ability)
	registerVerificationRoutes(v1, services.Verification, services.Ability)
	registerIncomeRoutes(v1, services.Income, services.Ability)
	registerDocumentRoutes(v1, services.Document, services.Ability)
	registerPendingActionRoutes(v1, services.PendingAction, services.Ability)
	registerTimelineRoutes(v1, services.Timeline)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
