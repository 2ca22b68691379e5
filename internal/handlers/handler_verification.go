package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// verificationHandler handles HTTP requests for field verification records.
type verificationHandler struct {
	verificationService portssvc.VerificationSvcFacade
}

func newVerificationHandler(vs portssvc.VerificationSvcFacade) *verificationHandler {
	return &verificationHandler{
		verificationService: vs,
	}
}

func registerVerificationRoutes(rg *gin.RouterGroup, verificationService portssvc.VerificationSvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newVerificationHandler(verificationService)

	verifications := rg.Group("/verifications")
	{
		verifications.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectVerification), h.createVerification)
		verifications.POST("/:verification_id/result", middleware.RequireAbility(abilitySvc, domain.ActionVerify, domain.SubjectLoanApplication), h.recordResult)
	}
}

// createVerification godoc
// @Summary Create a verification record
// @Description Opens a verification of the given type for an application that is awaiting verification.
// @Tags verifications
// @Accept json
// @Produce json
// @Param verification body dto.CreateVerificationRequest true "Verification details"
// @Success 201 {object} dto.VerificationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application is not awaiting verification"
// @Security BearerAuth
// @Router /verifications [post]
func (h *verificationHandler) createVerification(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	verification, err := h.verificationService.CreateVerification(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to create verification")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVerificationResponse(verification))
}

// recordResult godoc
// @Summary Record a verification result
// @Description Marks the verification completed with a pass/fail result and appends the outcome to the application's timeline.
// @Tags verifications
// @Accept json
// @Produce json
// @Param verification_id path string true "Verification ID"
// @Param result body dto.RecordVerificationResultRequest true "Result"
// @Success 200 {object} dto.VerificationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Verification already completed"
// @Security BearerAuth
// @Router /verifications/{verification_id}/result [post]
func (h *verificationHandler) recordResult(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RecordVerificationResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	verification, err := h.verificationService.RecordResult(c.Request.Context(), actor, c.Param("verification_id"), req.Result, req.Remarks)
	if err != nil {
		respondWithError(c, err, "Failed to record verification result")
		return
	}

	c.JSON(http.StatusOK, dto.ToVerificationResponse(verification))
}
