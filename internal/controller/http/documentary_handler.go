package http

import (
	"net/http"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DocumentaryHandler struct {
	docUseCase usecase.DocumentaryUseCase
	logger     *logger.Logger
}

func NewDocumentaryHandler(docUseCase usecase.DocumentaryUseCase, logger *logger.Logger) *DocumentaryHandler {
	return &DocumentaryHandler{docUseCase: docUseCase, logger: logger}
}

type CreateDocumentaryRequest struct {
	Title       string `form:"title" binding:"required,min=3,max=200"`
	Description string `form:"description"`
	Duration    int    `form:"duration" binding:"required,min=1,max=500"`
	Status      string `form:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateDocumentaryRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=3,max=200"`
	Description *string `form:"description"`
	Duration    *int    `form:"duration" binding:"omitempty,min=1,max=500"`
	Status      *string `form:"status" binding:"omitempty,oneof=draft published"`
}

// ListDocumentaries godoc
// @Summary      List documentaries
// @Tags         documentaries
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against title"
// @Param        status query string false "draft, published or all"
// @Param        sort_by query string false "latest, oldest or title"
// @Param        page query int false "Page number (1-based)"
// @Param        per_page query int false "Page size"
// @Success      200  {object}  entity.DocumentaryList
// @Router       /documentaries [get]
func (h *DocumentaryHandler) ListDocumentaries(c *gin.Context) {
	filters := entity.DocumentaryFilters{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		SortBy:  c.Query("sort_by"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	result, err := h.docUseCase.ListDocumentaries(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list documentaries: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDocumentary godoc
// @Summary      Get documentary by ID
// @Tags         documentaries
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Documentary ID"
// @Success      200  {object}  entity.Documentary
// @Router       /documentaries/{id} [get]
func (h *DocumentaryHandler) GetDocumentary(c *gin.Context) {
	doc, err := h.docUseCase.GetDocumentary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// CreateDocumentary godoc
// @Summary      Create a documentary
// @Tags         documentaries
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string false "Description"
// @Param        duration formData int true "Duration in minutes"
// @Param        status formData string false "draft or published" Enums(draft, published)
// @Param        video formData file true "Video file (up to 2GB)"
// @Param        thumbnail formData file true "Thumbnail image (up to 5MB)"
// @Success      201  {object}  entity.Documentary
// @Failure      400  {object}  map[string]string
// @Router       /documentaries [post]
func (h *DocumentaryHandler) CreateDocumentary(c *gin.Context) {
	var req CreateDocumentaryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateDocumentaryInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      entity.Status(req.Status),
	}
	if input.Status == "" {
		input.Status = entity.StatusDraft
	}
	input.VideoFile, _ = c.FormFile("video")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")

	doc, err := h.docUseCase.CreateDocumentary(c.Request.Context(), input, nil)
	if err != nil {
		h.logger.Error("Failed to create documentary: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// UpdateDocumentary godoc
// @Summary      Update a documentary
// @Tags         documentaries
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Documentary ID"
// @Success      200  {object}  entity.Documentary
// @Router       /documentaries/{id} [put]
func (h *DocumentaryHandler) UpdateDocumentary(c *gin.Context) {
	var req UpdateDocumentaryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateDocumentaryInput{
		Fields: entity.DocumentaryFields{
			Title:       req.Title,
			Description: req.Description,
			Duration:    req.Duration,
		},
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Fields.Status = &status
	}
	input.VideoFile, _ = c.FormFile("video")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")

	doc, err := h.docUseCase.UpdateDocumentary(c.Request.Context(), c.Param("id"), input, nil)
	if err != nil {
		h.logger.Error("Failed to update documentary: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocumentary godoc
// @Summary      Delete a documentary
// @Tags         documentaries
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Documentary ID"
// @Success      200  {object}  map[string]string
// @Router       /documentaries/{id} [delete]
func (h *DocumentaryHandler) DeleteDocumentary(c *gin.Context) {
	if err := h.docUseCase.DeleteDocumentary(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete documentary: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "documentary deleted"})
}

// BulkDeleteDocumentaries godoc
// @Summary      Delete several documentaries
// @Tags         documentaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body bulkIDsRequest true "Documentary IDs"
// @Success      200  {object}  map[string]int64
// @Router       /documentaries/bulk-delete [post]
func (h *DocumentaryHandler) BulkDeleteDocumentaries(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.docUseCase.BulkDeleteDocumentaries(c.Request.Context(), req.IDs)
	if err != nil {
		h.logger.Error("Failed to bulk delete documentaries: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
