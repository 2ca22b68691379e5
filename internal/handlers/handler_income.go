package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// incomeHandler handles HTTP requests for income and obligation records.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{
		incomeService: is,
	}
}

func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newIncomeHandler(incomeService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectIncome), h.saveIncome)
		incomes.DELETE("/:income_id", middleware.RequireAbility(abilitySvc, domain.ActionDelete, domain.SubjectIncome), h.deleteIncome)
	}

	rg.GET("/applicants/:applicant_id/incomes", h.listIncomes)
	rg.POST("/obligations", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectLoanObligation), h.saveObligation)
}

// saveIncome godoc
// @Summary Record an income declaration
// @Tags incomes
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /incomes [post]
func (h *incomeHandler) saveIncome(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.incomeService.SaveIncome(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to save income")
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// listIncomes godoc
// @Summary List income records for an applicant
// @Tags incomes
// @Produce json
// @Param applicant_id path string true "Applicant ID"
// @Success 200 {array} dto.IncomeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applicants/{applicant_id}/incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	incomes, err := h.incomeService.ListIncomes(c.Request.Context(), actor, c.Param("applicant_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list incomes")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeResponses(incomes))
}

// deleteIncome godoc
// @Summary Delete an income record
// @Tags incomes
// @Produce json
// @Param income_id path string true "Income ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /incomes/{income_id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), actor, c.Param("income_id")); err != nil {
		respondWithError(c, err, "Failed to delete income")
		return
	}

	c.Status(http.StatusNoContent)
}

// saveObligation godoc
// @Summary Record an applicant's loan obligations
// @Description Records the applicant's existing EMI commitments, used by the eligibility calculation.
// @Tags incomes
// @Accept json
// @Produce json
// @Param obligation body dto.CreateObligationRequest true "Obligation details"
// @Success 201 {object} dto.ObligationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /obligations [post]
func (h *incomeHandler) saveObligation(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	obligation, err := h.incomeService.SaveObligation(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to save obligation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToObligationResponse(obligation))
}
