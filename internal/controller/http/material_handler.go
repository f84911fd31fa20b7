package http

import (
	"net/http"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	materialUseCase usecase.MaterialUseCase
	logger          *logger.Logger
}

func NewMaterialHandler(materialUseCase usecase.MaterialUseCase, logger *logger.Logger) *MaterialHandler {
	return &MaterialHandler{materialUseCase: materialUseCase, logger: logger}
}

type CreateMaterialRequest struct {
	Title       string `form:"title" binding:"required,min=3,max=200"`
	Type        string `form:"type" binding:"required,oneof=book article study_guide"`
	Author      string `form:"author" binding:"required"`
	Description string `form:"description"`
	Status      string `form:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateMaterialRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=3,max=200"`
	Type        *string `form:"type" binding:"omitempty,oneof=book article study_guide"`
	Author      *string `form:"author"`
	Description *string `form:"description"`
	Status      *string `form:"status" binding:"omitempty,oneof=draft published"`
}

// ListMaterials godoc
// @Summary      List spiritual materials
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against title or author"
// @Param        type query string false "book, article, study_guide or all"
// @Param        status query string false "draft, published or all"
// @Param        sort_by query string false "latest, oldest or title"
// @Param        page query int false "Page number (1-based)"
// @Param        per_page query int false "Page size"
// @Success      200  {object}  entity.MaterialList
// @Router       /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	filters := entity.MaterialFilters{
		Search:  c.Query("search"),
		Type:    c.Query("type"),
		Status:  c.Query("status"),
		SortBy:  c.Query("sort_by"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	result, err := h.materialUseCase.ListMaterials(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list materials: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	material, err := h.materialUseCase.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, material)
}

// CreateMaterial godoc
// @Summary      Create a spiritual material
// @Description  Create a downloadable resource from a document and a cover thumbnail
// @Tags         materials
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        type formData string true "Resource kind" Enums(book, article, study_guide)
// @Param        author formData string true "Author"
// @Param        description formData string false "Description"
// @Param        status formData string false "draft or published" Enums(draft, published)
// @Param        document formData file true "Document (pdf/epub/doc/docx, up to 50MB)"
// @Param        thumbnail formData file true "Cover image (up to 5MB)"
// @Success      201  {object}  entity.Material
// @Failure      400  {object}  map[string]string
// @Router       /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateMaterialInput{
		Title:       req.Title,
		Type:        entity.MaterialType(req.Type),
		Author:      req.Author,
		Description: req.Description,
		Status:      entity.Status(req.Status),
	}
	if input.Status == "" {
		input.Status = entity.StatusDraft
	}
	input.DocumentFile, _ = c.FormFile("document")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")

	material, err := h.materialUseCase.CreateMaterial(c.Request.Context(), input, nil)
	if err != nil {
		h.logger.Error("Failed to create material: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var req UpdateMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateMaterialInput{
		Fields: entity.MaterialFields{
			Title:       req.Title,
			Author:      req.Author,
			Description: req.Description,
		},
	}
	if req.Type != nil {
		materialType := entity.MaterialType(*req.Type)
		input.Fields.Type = &materialType
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Fields.Status = &status
	}
	input.DocumentFile, _ = c.FormFile("document")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")

	material, err := h.materialUseCase.UpdateMaterial(c.Request.Context(), c.Param("id"), input, nil)
	if err != nil {
		h.logger.Error("Failed to update material: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.materialUseCase.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete material: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "material deleted"})
}

func (h *MaterialHandler) BulkDeleteMaterials(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.materialUseCase.BulkDeleteMaterials(c.Request.Context(), req.IDs)
	if err != nil {
		h.logger.Error("Failed to bulk delete materials: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
