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

// timelineHandler exposes the append-only audit trail for any entity type.
// Loan-application timelines also have a dedicated route under /loans.
type timelineHandler struct {
	timelineService portssvc.TimelineSvcFacade
}

func newTimelineHandler(ts portssvc.TimelineSvcFacade) *timelineHandler {
	return &timelineHandler{
		timelineService: ts,
	}
}

func registerTimelineRoutes(rg *gin.RouterGroup, timelineService portssvc.TimelineSvcFacade) {
	h := newTimelineHandler(timelineService)

	rg.GET("/timeline", h.listByEntity)
}

// listByEntity godoc
// @Summary List timeline events for an entity
// @Description Returns the audit trail of the given entity, newest first.
// @Tags timeline
// @Produce json
// @Param entityType query string true "Entity type"
// @Param entityID query string true "Entity ID"
// @Param limit query int false "Maximum events" default(100)
// @Success 200 {array} dto.TimelineEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /timeline [get]
func (h *timelineHandler) listByEntity(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entityType := c.Query("entityType")
	entityID := c.Query("entityID")
	if entityType == "" || entityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entityType and entityID are required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	events, err := h.timelineService.ListByEntity(c.Request.Context(), actor, domain.EntityType(entityType), entityID, limit)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve timeline")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimelineEventResponses(events))
}
