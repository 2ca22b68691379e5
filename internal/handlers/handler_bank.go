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

// bankHandler handles HTTP requests related to banks and their memberships.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{
		bankService: bs,
	}
}

// registerBankRoutes registers all bank-related routes. Mutations are gated by
// the ability middleware; handlers then delegate scoping to the service.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectBank), h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bank_id", h.getBank)
		banks.POST("/:bank_id/members", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectBankMembership), h.addMember)
	}
}

// createBank godoc
// @Summary Onboard a new bank
// @Description Creates a bank tenant. The creator becomes its first bank admin.
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to create bank")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankResponse(bank))
}

// getBank godoc
// @Summary Get a bank by ID
// @Tags banks
// @Produce json
// @Param bank_id path string true "Bank ID"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bank_id} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	bank, err := h.bankService.GetBankByID(c.Request.Context(), c.Param("bank_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve bank")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// listBanks godoc
// @Summary List banks
// @Tags banks
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.BankResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	banks, err := h.bankService.ListBanks(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondWithError(c, err, "Failed to list banks")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponses(banks))
}

// addMember godoc
// @Summary Add a user to a bank
// @Description Grants a user a role in the bank. Non-platform callers may only add members to their own bank.
// @Tags banks
// @Accept json
// @Produce json
// @Param bank_id path string true "Bank ID"
// @Param member body dto.AddBankMemberRequest true "User and role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bank_id}/members [post]
func (h *bankHandler) addMember(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddBankMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.bankService.AddUserToBank(c.Request.Context(), actor, req.UserID, c.Param("bank_id"), domain.UserRole(req.Role))
	if err != nil {
		respondWithError(c, err, "Failed to add user to bank")
		return
	}

	c.Status(http.StatusNoContent)
}
