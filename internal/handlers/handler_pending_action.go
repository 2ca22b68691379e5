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

// pendingActionHandler handles HTTP requests for the request/approve workflow
// around privileged administrative operations.
type pendingActionHandler struct {
	pendingActionService portssvc.PendingActionSvcFacade
}

func newPendingActionHandler(ps portssvc.PendingActionSvcFacade) *pendingActionHandler {
	return &pendingActionHandler{
		pendingActionService: ps,
	}
}

func registerPendingActionRoutes(rg *gin.RouterGroup, pendingActionService portssvc.PendingActionSvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newPendingActionHandler(pendingActionService)

	actions := rg.Group("/pending-actions")
	{
		actions.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectPendingAction), h.requestAction)
		actions.GET("", h.listActions)
		actions.GET("/:action_id", h.getAction)
		actions.POST("/:action_id/approve", middleware.RequireAbility(abilitySvc, domain.ActionApprove, domain.SubjectPendingAction), h.approveAction)
		actions.POST("/:action_id/reject", middleware.RequireAbility(abilitySvc, domain.ActionReject, domain.SubjectPendingAction), h.rejectAction)
		actions.POST("/:action_id/cancel", middleware.RequireAbility(abilitySvc, domain.ActionCancel, domain.SubjectPendingAction), h.cancelAction)
	}
}

// requestAction godoc
// @Summary Request a privileged operation
// @Description Queues an administrative operation (user creation, role change, bank detail update) for reviewer approval. Nothing is applied until a reviewer approves.
// @Tags pending-actions
// @Accept json
// @Produce json
// @Param action body dto.RequestPendingActionRequest true "Action type and payload"
// @Success 201 {object} dto.PendingActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pending-actions [post]
func (h *pendingActionHandler) requestAction(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RequestPendingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	action, err := h.pendingActionService.RequestAction(c.Request.Context(), actor, actor.BankID, domain.PendingActionType(req.ActionType), req.Payload)
	if err != nil {
		respondWithError(c, err, "Failed to request action")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPendingActionResponse(action))
}

// getAction godoc
// @Summary Get a pending action
// @Tags pending-actions
// @Produce json
// @Param action_id path string true "Pending Action ID"
// @Success 200 {object} dto.PendingActionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pending-actions/{action_id} [get]
func (h *pendingActionHandler) getAction(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	action, err := h.pendingActionService.GetAction(c.Request.Context(), actor, c.Param("action_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve action")
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingActionResponse(action))
}

// listActions godoc
// @Summary List pending actions in the caller's bank
// @Tags pending-actions
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(50)
// @Success 200 {array} dto.PendingActionResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pending-actions [get]
func (h *pendingActionHandler) listActions(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var status *domain.PendingActionStatus
	if s := c.Query("status"); s != "" {
		st := domain.PendingActionStatus(s)
		status = &st
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	actions, err := h.pendingActionService.ListActions(c.Request.Context(), actor, actor.BankID, status, limit)
	if err != nil {
		respondWithError(c, err, "Failed to list actions")
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingActionResponses(actions))
}

// approveAction godoc
// @Summary Approve a pending action
// @Description Applies the requested operation and finalizes the request. Requesters cannot approve their own requests.
// @Tags pending-actions
// @Produce json
// @Param action_id path string true "Pending Action ID"
// @Success 200 {object} dto.PendingActionResponse
// @Failure 403 {object} ErrorResponse "Self-approval or missing ability"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already reviewed"
// @Security BearerAuth
// @Router /pending-actions/{action_id}/approve [post]
func (h *pendingActionHandler) approveAction(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	action, err := h.pendingActionService.Approve(c.Request.Context(), actor, c.Param("action_id"))
	if err != nil {
		respondWithError(c, err, "Failed to approve action")
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingActionResponse(action))
}

// rejectAction godoc
// @Summary Reject a pending action
// @Description Rejects the request. Remarks are required so the requester knows why.
// @Tags pending-actions
// @Accept json
// @Produce json
// @Param action_id path string true "Pending Action ID"
// @Param review body dto.ReviewPendingActionRequest true "Rejection remarks"
// @Success 200 {object} dto.PendingActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already reviewed"
// @Security BearerAuth
// @Router /pending-actions/{action_id}/reject [post]
func (h *pendingActionHandler) rejectAction(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ReviewPendingActionRequest
	_ = c.ShouldBindJSON(&req) // empty remarks are rejected by the service

	action, err := h.pendingActionService.Reject(c.Request.Context(), actor, c.Param("action_id"), req.Remarks)
	if err != nil {
		respondWithError(c, err, "Failed to reject action")
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingActionResponse(action))
}

// cancelAction godoc
// @Summary Cancel a pending action
// @Description Lets the requester withdraw their own request while it is still pending.
// @Tags pending-actions
// @Produce json
// @Param action_id path string true "Pending Action ID"
// @Success 200 {object} dto.PendingActionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already reviewed"
// @Security BearerAuth
// @Router /pending-actions/{action_id}/cancel [post]
func (h *pendingActionHandler) cancelAction(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	action, err := h.pendingActionService.Cancel(c.Request.Context(), actor, c.Param("action_id"))
	if err != nil {
		respondWithError(c, err, "Failed to cancel action")
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingActionResponse(action))
}
