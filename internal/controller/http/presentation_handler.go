package http

import (
	"net/http"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PresentationHandler struct {
	presentationUseCase usecase.PresentationUseCase
	logger              *logger.Logger
}

func NewPresentationHandler(presentationUseCase usecase.PresentationUseCase, logger *logger.Logger) *PresentationHandler {
	return &PresentationHandler{presentationUseCase: presentationUseCase, logger: logger}
}

type CreatePresentationRequest struct {
	Title       string `form:"title" binding:"required,min=3,max=200"`
	Type        string `form:"type" binding:"required,oneof=podcast family_foundations spiritual_health bible_studies"`
	Speaker     string `form:"speaker" binding:"required"`
	Description string `form:"description"`
	Duration    int    `form:"duration" binding:"required,min=1,max=300"`
	Status      string `form:"status" binding:"omitempty,oneof=draft published"`
}

type UpdatePresentationRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=3,max=200"`
	Type        *string `form:"type" binding:"omitempty,oneof=podcast family_foundations spiritual_health bible_studies"`
	Speaker     *string `form:"speaker"`
	Description *string `form:"description"`
	Duration    *int    `form:"duration" binding:"omitempty,min=1,max=300"`
	Status      *string `form:"status" binding:"omitempty,oneof=draft published"`
}

// ListPresentations godoc
// @Summary      List presentations
// @Description  List presentations filtered by category, status and search text
// @Tags         presentations
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against title or speaker"
// @Param        type query string false "podcast, family_foundations, spiritual_health, bible_studies or all"
// @Param        status query string false "draft, published or all"
// @Param        sort_by query string false "latest, oldest or title"
// @Param        page query int false "Page number (1-based)"
// @Param        per_page query int false "Page size"
// @Success      200  {object}  entity.PresentationList
// @Router       /presentations [get]
func (h *PresentationHandler) ListPresentations(c *gin.Context) {
	filters := entity.PresentationFilters{
		Search:  c.Query("search"),
		Type:    c.Query("type"),
		Status:  c.Query("status"),
		SortBy:  c.Query("sort_by"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	result, err := h.presentationUseCase.ListPresentations(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list presentations: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PresentationHandler) GetPresentation(c *gin.Context) {
	presentation, err := h.presentationUseCase.GetPresentation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentation)
}

// CreatePresentation godoc
// @Summary      Create a presentation
// @Tags         presentations
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        type formData string true "Category" Enums(podcast, family_foundations, spiritual_health, bible_studies)
// @Param        speaker formData string true "Speaker name"
// @Param        description formData string false "Description"
// @Param        duration formData int true "Duration in minutes"
// @Param        status formData string false "draft or published" Enums(draft, published)
// @Param        video formData file true "Video file (up to 500MB)"
// @Param        thumbnail formData file true "Thumbnail image (up to 5MB)"
// @Success      201  {object}  entity.Presentation
// @Failure      400  {object}  map[string]string
// @Router       /presentations [post]
func (h *PresentationHandler) CreatePresentation(c *gin.Context) {
	var req CreatePresentationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreatePresentationInput{
		Title:       req.Title,
		Type:        entity.PresentationType(req.Type),
		Speaker:     req.Speaker,
		Description: req.Description,
		Duration:    req.Duration,
		Status:      entity.Status(req.Status),
	}
	if input.Status == "" {
		input.Status = entity.StatusDraft
	}
	input.VideoFile, _ = c.FormFile("video")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")

	presentation, err := h.presentationUseCase.CreatePresentation(c.Request.Context(), input, nil)
	if err != nil {
		h.logger.Error("Failed to create presentation: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, presentation)
}

func (h *PresentationHandler) UpdatePresentation(c *gin.Context) {
	var req UpdatePresentationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdatePresentationInput{
		Fields: entity.PresentationFields{
			Title:       req.Title,
			Speaker:     req.Speaker,
			Description: req.Description,
			Duration:    req.Duration,
		},
	}
	if req.Type != nil {
		presentationType := entity.PresentationType(*req.Type)
		input.Fields.Type = &presentationType
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Fields.Status = &status
	}
	input.VideoFile, _ = c.FormFile("video")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")

	presentation, err := h.presentationUseCase.UpdatePresentation(c.Request.Context(), c.Param("id"), input, nil)
	if err != nil {
		h.logger.Error("Failed to update presentation: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentation)
}

func (h *PresentationHandler) DeletePresentation(c *gin.Context) {
	if err := h.presentationUseCase.DeletePresentation(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete presentation: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "presentation deleted"})
}

func (h *PresentationHandler) BulkDeletePresentations(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.presentationUseCase.BulkDeletePresentations(c.Request.Context(), req.IDs)
	if err != nil {
		h.logger.Error("Failed to bulk delete presentations: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
