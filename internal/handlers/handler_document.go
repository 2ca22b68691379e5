package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikitph/los-backend/internal/core/domain"
	portssvc "github.com/nikitph/los-backend/internal/core/ports/services"
	"github.com/nikitph/los-backend/internal/dto"
	"github.com/nikitph/los-backend/internal/middleware"
)

// documentHandler handles HTTP requests for document metadata. The blobs
// themselves live in the external object store; the API only tracks keys and
// review status.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{
		documentService: ds,
	}
}

func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, abilitySvc portssvc.AbilitySvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", middleware.RequireAbility(abilitySvc, domain.ActionCreate, domain.SubjectDocument), h.attachDocument)
		documents.GET("", h.listDocuments)
		documents.POST("/:document_id/review", middleware.RequireAbility(abilitySvc, domain.ActionUpdate, domain.SubjectDocument), h.reviewDocument)
	}
}

// attachDocument godoc
// @Summary Attach a document to an entity
// @Description Records metadata for an uploaded blob and logs the upload on the entity's timeline.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.AttachDocumentRequest true "Document metadata"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) attachDocument(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.AttachDocument(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "Failed to attach document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List documents attached to an entity
// @Tags documents
// @Produce json
// @Param entityType query string true "Entity type"
// @Param entityID query string true "Entity ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
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

	docs, err := h.documentService.ListDocuments(c.Request.Context(), actor, domain.EntityType(entityType), entityID)
	if err != nil {
		respondWithError(c, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// reviewDocument godoc
// @Summary Review a pending document
// @Description Marks a pending document verified or rejected and logs the verdict on the entity's timeline.
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param review body dto.ReviewDocumentRequest true "Verdict"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document already reviewed"
// @Security BearerAuth
// @Router /documents/{document_id}/review [post]
func (h *documentHandler) reviewDocument(c *gin.Context) {
	actor, ok := middleware.GetAuthUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.ReviewDocument(c.Request.Context(), actor, c.Param("document_id"), req.Approved)
	if err != nil {
		respondWithError(c, err, "Failed to review document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
