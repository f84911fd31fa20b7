package http

import (
	"net/http"
	"time"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SermonHandler struct {
	sermonUseCase usecase.SermonUseCase
	logger        *logger.Logger
}

func NewSermonHandler(sermonUseCase usecase.SermonUseCase, logger *logger.Logger) *SermonHandler {
	return &SermonHandler{sermonUseCase: sermonUseCase, logger: logger}
}

type CreateSermonRequest struct {
	Title        string `form:"title" binding:"required,min=3,max=200"`
	Speaker      string `form:"speaker" binding:"required,min=2,max=100"`
	Description  string `form:"description"`
	Duration     int    `form:"duration" binding:"required,min=1,max=300"`
	DatePreached string `form:"date_preached"`
	Featured     bool   `form:"featured"`
	Status       string `form:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateSermonRequest struct {
	Title        *string `form:"title" binding:"omitempty,min=3,max=200"`
	Speaker      *string `form:"speaker" binding:"omitempty,min=2,max=100"`
	Description  *string `form:"description"`
	Duration     *int    `form:"duration" binding:"omitempty,min=1,max=300"`
	DatePreached *string `form:"date_preached"`
	Featured     *bool   `form:"featured"`
	Status       *string `form:"status" binding:"omitempty,oneof=draft published"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Status string   `json:"status" binding:"required,oneof=draft published"`
}

// ListSermons godoc
// @Summary      List sermons
// @Description  List sermons with search, status filter, sorting and pagination
// @Tags         sermons
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against title or speaker"
// @Param        status query string false "draft, published or all"
// @Param        sort_by query string false "latest, oldest or title"
// @Param        page query int false "Page number (1-based)"
// @Param        per_page query int false "Page size"
// @Success      200  {object}  entity.SermonList
// @Failure      500  {object}  map[string]string
// @Router       /sermons [get]
func (h *SermonHandler) ListSermons(c *gin.Context) {
	filters := entity.SermonFilters{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		SortBy:  c.Query("sort_by"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	result, err := h.sermonUseCase.ListSermons(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list sermons: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSermon godoc
// @Summary      Get sermon by ID
// @Tags         sermons
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sermon ID"
// @Success      200  {object}  entity.Sermon
// @Failure      404  {object}  map[string]string
// @Router       /sermons/{id} [get]
func (h *SermonHandler) GetSermon(c *gin.Context) {
	sermon, err := h.sermonUseCase.GetSermon(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sermon)
}

// CreateSermon godoc
// @Summary      Create a sermon
// @Description  Create a sermon with a video and thumbnail, optionally an audio track
// @Tags         sermons
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Sermon title"
// @Param        speaker formData string true "Speaker name"
// @Param        description formData string false "Description"
// @Param        duration formData int true "Duration in minutes"
// @Param        date_preached formData string false "Date preached (RFC 3339)"
// @Param        featured formData bool false "Featured flag"
// @Param        status formData string false "draft or published" Enums(draft, published)
// @Param        video formData file true "Video file (mp4/mov/avi, up to 500MB)"
// @Param        thumbnail formData file true "Thumbnail image (up to 5MB)"
// @Param        audio formData file false "Audio track (mp3/m4a/wav, up to 100MB)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /sermons [post]
func (h *SermonHandler) CreateSermon(c *gin.Context) {
	var req CreateSermonRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateSermonInput{
		Title:       req.Title,
		Speaker:     req.Speaker,
		Description: req.Description,
		Duration:    req.Duration,
		Featured:    req.Featured,
		Status:      entity.Status(req.Status),
	}
	if input.Status == "" {
		input.Status = entity.StatusDraft
	}
	if req.DatePreached != "" {
		parsed, err := time.Parse(time.RFC3339, req.DatePreached)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_preached must be RFC 3339"})
			return
		}
		input.DatePreached = parsed
	}

	input.VideoFile, _ = c.FormFile("video")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")
	input.AudioFile, _ = c.FormFile("audio")

	// Keep the last progress snapshot so the response carries the final
	// per-file upload state.
	var uploadState map[string]int
	logProgress := h.uploadProgress(req.Title)
	onProgress := func(snapshot map[string]int) {
		uploadState = snapshot
		logProgress(snapshot)
	}

	sermon, err := h.sermonUseCase.CreateSermon(c.Request.Context(), input, onProgress)
	if err != nil {
		h.logger.Error("Failed to create sermon: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sermon": sermon, "upload": uploadState})
}

// UpdateSermon godoc
// @Summary      Update a sermon
// @Description  Update sermon fields; any uploaded file replaces the stored one
// @Tags         sermons
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sermon ID"
// @Success      200  {object}  entity.Sermon
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sermons/{id} [put]
func (h *SermonHandler) UpdateSermon(c *gin.Context) {
	var req UpdateSermonRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateSermonInput{
		Fields: entity.SermonFields{
			Title:       req.Title,
			Speaker:     req.Speaker,
			Description: req.Description,
			Duration:    req.Duration,
		},
	}
	if req.Featured != nil {
		input.Fields.Featured = req.Featured
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Fields.Status = &status
	}
	if req.DatePreached != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DatePreached)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_preached must be RFC 3339"})
			return
		}
		input.Fields.DatePreached = &parsed
	}

	input.VideoFile, _ = c.FormFile("video")
	input.ThumbnailFile, _ = c.FormFile("thumbnail")
	input.AudioFile, _ = c.FormFile("audio")

	sermon, err := h.sermonUseCase.UpdateSermon(c.Request.Context(), c.Param("id"), input, h.uploadProgress(c.Param("id")))
	if err != nil {
		h.logger.Error("Failed to update sermon: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sermon)
}

// DeleteSermon godoc
// @Summary      Delete a sermon
// @Description  Delete the sermon row, then remove its stored files best-effort
// @Tags         sermons
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sermon ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sermons/{id} [delete]
func (h *SermonHandler) DeleteSermon(c *gin.Context) {
	if err := h.sermonUseCase.DeleteSermon(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete sermon: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sermon deleted"})
}

// BulkDeleteSermons godoc
// @Summary      Delete several sermons
// @Tags         sermons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body bulkIDsRequest true "Sermon IDs"
// @Success      200  {object}  map[string]int64
// @Failure      400  {object}  map[string]string
// @Router       /sermons/bulk-delete [post]
func (h *SermonHandler) BulkDeleteSermons(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.sermonUseCase.BulkDeleteSermons(c.Request.Context(), req.IDs)
	if err != nil {
		h.logger.Error("Failed to bulk delete sermons: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// BulkUpdateSermonStatus godoc
// @Summary      Update status for several sermons
// @Tags         sermons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BulkStatusRequest true "Sermon IDs and target status"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /sermons/bulk-status [post]
func (h *SermonHandler) BulkUpdateSermonStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sermonUseCase.BulkUpdateSermonStatus(c.Request.Context(), req.IDs, entity.Status(req.Status)); err != nil {
		h.logger.Error("Failed to bulk update sermon status: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// uploadProgress logs upload milestones so long-running sermon uploads
// are visible in the service logs.
func (h *SermonHandler) uploadProgress(label string) func(map[string]int) {
	return func(snapshot map[string]int) {
		for name, percent := range snapshot {
			if percent == 100 {
				h.logger.Info("Upload %s/%s complete", label, name)
			}
		}
	}
}
