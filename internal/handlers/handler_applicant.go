package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// applicantHandler handles HTTP requests related to applicant profiles and
// their derived eligibility.
type applicantHandler struct {
	applicantService   portssvc.ApplicantSvcFacade
	eligibilityService portssvc.EligibilitySvcFacade
}

func newApplicantHandler(as portssvc.ApplicantSvcFacade, es portssvc.EligibilitySvcFacade) *applicantHandler {
	return &applicantHandler{
		applicantService:   as,
		eligibilityService: es,
	}
}

func registerApplicantRoutes(rg *gin.RouterGroup, applicantService portssvc.ApplicantSvcFacade, eligibilityService portssvc.EligibilitySvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newApplicantHandler(applicantService, eligibilityService)

	applicants := rg.Group("/applicants")
	{
		applicants.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectApplicant), h.createApplicant)
		applicants.GET("", h.listApplicants)
		applicants.GET("/:applicant_id", h.getApplicant)
		applicants.PUT("/:applicant_id", middleware.RequireAbility(abilitySvc, domain.ActionUpdate, domain.SubjectApplicant), h.updateApplicant)
		applicants.GET("/:applicant_id/eligibility", h.getEligibility)
	}
}

// createApplicant godoc
// @Summary Create an applicant profile
// @Description Creates an applicant profile in the caller's bank.
// @Tags applicants
// @Accept json
// @Produce json
// @Param applicant body dto.CreateApplicantRequest true "Applicant details"
// @Success 201 {object} dto.ApplicantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /applicants [post]
func (h *applicantHandler) createApplicant(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	applicant, err := h.applicantService.CreateApplicant(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to create applicant")
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicantResponse(applicant))
}

// getApplicant godoc
// @Summary Get an applicant by ID
// @Description Retrieves an applicant in the caller's bank. Applicants may only fetch their own profile.
// @Tags applicants
// @Produce json
// @Param applicant_id path string true "Applicant ID"
// @Success 200 {object} dto.ApplicantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applicants/{applicant_id} [get]
func (h *applicantHandler) getApplicant(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applicant, err := h.applicantService.GetApplicant(c.Request.Context(), actor, c.Param("applicant_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve applicant")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicantResponse(applicant))
}

// listApplicants godoc
// @Summary List applicants in the caller's bank
// @Tags applicants
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.ApplicantResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /applicants [get]
func (h *applicantHandler) listApplicants(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	applicants, err := h.applicantService.ListApplicants(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondWithError(c, err, "Failed to list applicants")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicantResponses(applicants))
}

// updateApplicant godoc
// @Summary Update an applicant
// @Tags applicants
// @Accept json
// @Produce json
// @Param applicant_id path string true "Applicant ID"
// @Param applicant body dto.UpdateApplicantRequest true "Fields to update"
// @Success 200 {object} dto.ApplicantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applicants/{applicant_id} [put]
func (h *applicantHandler) updateApplicant(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	applicant, err := h.applicantService.UpdateApplicant(c.Request.Context(), actor, c.Param("applicant_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update applicant")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicantResponse(applicant))
}

// getEligibility godoc
// @Summary Compute loan eligibility for an applicant
// @Description Aggregates the applicant's income and obligation records into an eligible loan amount. Nothing is persisted.
// @Tags applicants
// @Produce json
// @Param applicant_id path string true "Applicant ID"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applicants/{applicant_id}/eligibility [get]
func (h *applicantHandler) getEligibility(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eligibility, err := h.eligibilityService.CalculateEligibility(c.Request.Context(), actor, c.Param("applicant_id"))
	if err != nil {
		respondWithError(c, err, "Failed to calculate eligibility")
		return
	}

	c.JSON(http.StatusOK, dto.ToEligibilityResponse(eligibility))
}
