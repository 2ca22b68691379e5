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

// loanHandler handles HTTP requests for loan applications and their
// lifecycle transitions. Each transition is a dedicated route gated by the
// ability middleware; the service enforces the status graph.
type loanHandler struct {
	loanService         portssvc.LoanSvcFacade
	verificationService portssvc.VerificationSvcFacade
	timelineService     portssvc.TimelineSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade, vs portssvc.VerificationSvcFacade, ts portssvc.TimelineSvcFacade) *loanHandler {
	return &loanHandler{
		loanService:         ls,
		verificationService: vs,
		timelineService:     ts,
	}
}

func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade, verificationService portssvc.VerificationSvcFacade, timelineService portssvc.TimelineSvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newLoanHandler(loanService, verificationService, timelineService)

	loans := rg.Group("/loans")
	{
		loans.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectLoanApplication), h.createApplication)
		loans.GET("", h.listApplications)
		loans.GET("/:loan_id", h.getApplication)
		loans.PUT("/:loan_id", middleware.RequireAbility(abilitySvc, domain.ActionUpdate, domain.SubjectLoanApplication), h.updateDraft)

		loans.POST("/:loan_id/submit", middleware.RequireAbility(abilitySvc, domain.ActionSubmit, domain.SubjectLoanApplication), h.submit)
		loans.POST("/:loan_id/assign-officer", middleware.RequireAbility(abilitySvc, domain.ActionAssign, domain.SubjectLoanApplication), h.assignOfficer)
		loans.POST("/:loan_id/review", middleware.RequireAbility(abilitySvc, domain.ActionReview, domain.SubjectLoanApplication), h.reviewByOfficer)
		loans.POST("/:loan_id/assign-inspector", middleware.RequireAbility(abilitySvc, domain.ActionAssign, domain.SubjectLoanApplication), h.assignInspector)
		loans.POST("/:loan_id/start-verification", middleware.RequireAbility(abilitySvc, domain.ActionVerify, domain.SubjectLoanApplication), h.startVerification)
		loans.POST("/:loan_id/complete-verification", middleware.RequireAbility(abilitySvc, domain.ActionVerify, domain.SubjectLoanApplication), h.completeVerification)
		loans.POST("/:loan_id/move-to-review", middleware.RequireAbility(abilitySvc, domain.ActionReview, domain.SubjectLoanApplication), h.moveToReview)
		loans.POST("/:loan_id/approve", middleware.RequireAbility(abilitySvc, domain.ActionApprove, domain.SubjectLoanApplication), h.approve)
		loans.POST("/:loan_id/reject", middleware.RequireAbility(abilitySvc, domain.ActionReject, domain.SubjectLoanApplication), h.reject)
		loans.POST("/:loan_id/withdraw", middleware.RequireAbility(abilitySvc, domain.ActionCancel, domain.SubjectLoanApplication), h.withdraw)

		loans.POST("/:loan_id/guarantors", middleware.RequireAbility(abilitySvc, domain.ActionUpdate, domain.SubjectLoanApplication), h.addGuarantor)
		loans.GET("/:loan_id/guarantors", h.listGuarantors)
		loans.GET("/:loan_id/verifications", h.listVerifications)
		loans.GET("/:loan_id/timeline", middleware.RequireAbility(abilitySvc, domain.ActionView, domain.SubjectTimeline), h.getTimeline)
	}
}

// createApplication godoc
// @Summary Create a loan application
// @Description Creates a loan application in DRAFT for an applicant in the caller's bank.
// @Tags loans
// @Accept json
// @Produce json
// @Param application body dto.CreateLoanApplicationRequest true "Application details"
// @Success 201 {object} dto.LoanApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createApplication(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateLoanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	app, err := h.loanService.CreateApplication(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to create loan application")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanApplicationResponse(app))
}

// getApplication godoc
// @Summary Get a loan application
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loan_id} [get]
func (h *loanHandler) getApplication(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	app, err := h.loanService.GetApplication(c.Request.Context(), actor, c.Param("loan_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve loan application")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanApplicationResponse(app))
}

// listApplications godoc
// @Summary List loan applications in the caller's bank
// @Description Token-paginated listing, optionally filtered by status.
// @Tags loans
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListLoanApplicationsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listApplications(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListLoanApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.loanService.ListApplications(c.Request.Context(), actor, params)
	if err != nil {
		respondWithError(c, err, "Failed to list loan applications")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateDraft godoc
// @Summary Update a draft loan application
// @Description Updates loan type and requested amount. Only permitted while the application is in DRAFT.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param application body dto.UpdateLoanApplicationRequest true "Fields to update"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application is no longer in DRAFT"
// @Security BearerAuth
// @Router /loans/{loan_id} [put]
func (h *loanHandler) updateDraft(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateLoanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	app, err := h.loanService.UpdateDraft(c.Request.Context(), actor, c.Param("loan_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update loan application")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanApplicationResponse(app))
}

// submit godoc
// @Summary Submit a draft application
// @Description Moves the application from DRAFT into the assignment queue.
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/submit [post]
func (h *loanHandler) submit(c *gin.Context) {
	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.SubmitApplication(c.Request.Context(), actor, loanID)
	})
}

// assignOfficer godoc
// @Summary Assign a loan officer
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param assignment body dto.AssignRequest true "Loan officer to assign"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/assign-officer [post]
func (h *loanHandler) assignOfficer(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.AssignLoanOfficer(c.Request.Context(), actor, loanID, req.AssigneeID)
	})
}

// reviewByOfficer godoc
// @Summary Record the loan officer's review
// @Description A passing review queues the application for inspector assignment; a failing one rejects it.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param review body dto.ReviewRequest true "Review outcome"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/review [post]
func (h *loanHandler) reviewByOfficer(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.ReviewByLoanOfficer(c.Request.Context(), actor, loanID, req.Pass, req.Remarks)
	})
}

// assignInspector godoc
// @Summary Assign a field inspector
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param assignment body dto.AssignRequest true "Inspector to assign"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/assign-inspector [post]
func (h *loanHandler) assignInspector(c *gin.Context) {
	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.AssignInspector(c.Request.Context(), actor, loanID, req.AssigneeID)
	})
}

// startVerification godoc
// @Summary Start field verification
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/start-verification [post]
func (h *loanHandler) startVerification(c *gin.Context) {
	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.StartVerification(c.Request.Context(), actor, loanID)
	})
}

// completeVerification godoc
// @Summary Complete field verification
// @Description Settles the verification phase from the recorded verification results. All results passing completes the phase; any failure, or no recorded verifications, fails it.
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/complete-verification [post]
func (h *loanHandler) completeVerification(c *gin.Context) {
	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.CompleteVerification(c.Request.Context(), actor, loanID)
	})
}

// moveToReview godoc
// @Summary Move a verified application to final review
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/move-to-review [post]
func (h *loanHandler) moveToReview(c *gin.Context) {
	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.MoveToReview(c.Request.Context(), actor, loanID)
	})
}

// approve godoc
// @Summary Approve a loan application
// @Description Final disposition. Restricted to the review roles; bank admins are explicitly denied.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param disposition body dto.ReviewRequest false "Optional remarks"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/approve [post]
func (h *loanHandler) approve(c *gin.Context) {
	var req dto.ReviewRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.Approve(c.Request.Context(), actor, loanID, req.Remarks)
	})
}

// reject godoc
// @Summary Reject a loan application
// @Description Final disposition. Remarks are required so the applicant knows why.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param disposition body dto.ReviewRequest true "Rejection remarks"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /loans/{loan_id}/reject [post]
func (h *loanHandler) reject(c *gin.Context) {
	var req dto.ReviewRequest
	_ = c.ShouldBindJSON(&req)

	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.Reject(c.Request.Context(), actor, loanID, req.Remarks)
	})
}

// withdraw godoc
// @Summary Withdraw a loan application
// @Description Lets the applicant withdraw from any state that is not already terminal.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param disposition body dto.ReviewRequest false "Optional remarks"
// @Success 200 {object} dto.LoanApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application is already terminal"
// @Security BearerAuth
// @Router /loans/{loan_id}/withdraw [post]
func (h *loanHandler) withdraw(c *gin.Context) {
	var req dto.ReviewRequest
	_ = c.ShouldBindJSON(&req)

	h.transition(c, func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error) {
		return h.loanService.Withdraw(c.Request.Context(), actor, loanID, req.Remarks)
	})
}

// transition runs a lifecycle operation and writes the common response shape.
func (h *loanHandler) transition(c *gin.Context, op func(actor *domain.AuthUser, loanID string) (*domain.LoanApplication, error)) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	app, err := op(actor, c.Param("loan_id"))
	if err != nil {
		respondWithError(c, err, "Failed to update loan application status")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanApplicationResponse(app))
}

// addGuarantor godoc
// @Summary Add a guarantor to a loan application
// @Tags loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param guarantor body dto.CreateGuarantorRequest true "Guarantor details"
// @Success 201 {object} dto.GuarantorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loan_id}/guarantors [post]
func (h *loanHandler) addGuarantor(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateGuarantorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	guarantor, err := h.loanService.AddGuarantor(c.Request.Context(), actor, c.Param("loan_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add guarantor")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuarantorResponse(guarantor))
}

// listGuarantors godoc
// @Summary List guarantors of a loan application
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {array} dto.GuarantorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loan_id}/guarantors [get]
func (h *loanHandler) listGuarantors(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	guarantors, err := h.loanService.ListGuarantors(c.Request.Context(), actor, c.Param("loan_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list guarantors")
		return
	}

	c.JSON(http.StatusOK, dto.ToGuarantorResponses(guarantors))
}

// listVerifications godoc
// @Summary List verifications recorded for a loan application
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Success 200 {array} dto.VerificationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loan_id}/verifications [get]
func (h *loanHandler) listVerifications(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	verifications, err := h.verificationService.ListByApplication(c.Request.Context(), actor, c.Param("loan_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list verifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToVerificationResponses(verifications))
}

// getTimeline godoc
// @Summary Get the timeline of a loan application
// @Description Returns the append-only audit trail, newest first.
// @Tags loans
// @Produce json
// @Param loan_id path string true "Loan Application ID"
// @Param limit query int false "Maximum events" default(100)
// @Success 200 {array} dto.TimelineEventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loan_id}/timeline [get]
func (h *loanHandler) getTimeline(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	events, err := h.timelineService.ListByLoanApplication(c.Request.Context(), actor, c.Param("loan_id"), limit)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve timeline")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimelineEventResponses(events))
}
