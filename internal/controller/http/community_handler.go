package http

import (
	"net/http"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityUseCase usecase.CommunityUseCase
	logger           *logger.Logger
}

func NewCommunityHandler(communityUseCase usecase.CommunityUseCase, logger *logger.Logger) *CommunityHandler {
	return &CommunityHandler{communityUseCase: communityUseCase, logger: logger}
}

type CreatePostRequest struct {
	GroupID string `form:"group_id"`
	Content string `form:"content" binding:"required,max=2000"`
}

type PostStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active flagged hidden"`
}

type CreateGroupRequest struct {
	Name        string `form:"name" binding:"required,min=3,max=100"`
	Description string `form:"description"`
}

type UpdateGroupRequest struct {
	Name        *string `form:"name" binding:"omitempty,min=3,max=100"`
	Description *string `form:"description"`
}

// ListPosts godoc
// @Summary      List community posts
// @Description  List posts with author and group details resolved
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against post content"
// @Param        group_id query string false "Limit to one group"
// @Param        status query string false "active, flagged, hidden or all"
// @Param        page query int false "Page number (1-based)"
// @Param        per_page query int false "Page size"
// @Success      200  {object}  entity.PostList
// @Router       /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	filters := entity.PostFilters{
		Search:  c.Query("search"),
		GroupID: c.Query("group_id"),
		Status:  c.Query("status"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	result, err := h.communityUseCase.ListPosts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CommunityHandler) GetPost(c *gin.Context) {
	post, err := h.communityUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a community post
// @Tags         community
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        content formData string true "Post text"
// @Param        group_id formData string false "Group to post into"
// @Param        image formData file false "Attached image (up to 10MB)"
// @Success      201  {object}  entity.CommunityPost
// @Failure      400  {object}  map[string]string
// @Router       /community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreatePostInput{
		UserID:  c.GetString("user_id"),
		GroupID: req.GroupID,
		Content: req.Content,
	}
	input.ImageFile, _ = c.FormFile("image")

	post, err := h.communityUseCase.CreatePost(c.Request.Context(), input, nil)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePostStatus godoc
// @Summary      Moderate a post
// @Description  Set a post to active, flagged or hidden
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body PostStatusRequest true "Target status"
// @Success      200  {object}  entity.CommunityPost
// @Failure      400  {object}  map[string]string
// @Router       /community/posts/{id}/status [patch]
func (h *CommunityHandler) UpdatePostStatus(c *gin.Context) {
	var req PostStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.communityUseCase.UpdatePostStatus(c.Request.Context(), c.Param("id"), entity.PostStatus(req.Status))
	if err != nil {
		h.logger.Error("Failed to update post status: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *CommunityHandler) DeletePost(c *gin.Context) {
	if err := h.communityUseCase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *CommunityHandler) BulkDeletePosts(c *gin.Context) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.communityUseCase.BulkDeletePosts(c.Request.Context(), req.IDs)
	if err != nil {
		h.logger.Error("Failed to bulk delete posts: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListGroups godoc
// @Summary      List community groups
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.CommunityGroup
// @Router       /community/groups [get]
func (h *CommunityHandler) ListGroups(c *gin.Context) {
	groups, err := h.communityUseCase.ListGroups(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list groups: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *CommunityHandler) GetGroup(c *gin.Context) {
	group, err := h.communityUseCase.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// CreateGroup godoc
// @Summary      Create a community group
// @Tags         community
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name formData string true "Group name"
// @Param        description formData string false "Description"
// @Param        image formData file false "Group image (up to 10MB)"
// @Success      201  {object}  entity.CommunityGroup
// @Failure      400  {object}  map[string]string
// @Router       /community/groups [post]
func (h *CommunityHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   c.GetString("user_id"),
	}
	input.ImageFile, _ = c.FormFile("image")

	group, err := h.communityUseCase.CreateGroup(c.Request.Context(), input, nil)
	if err != nil {
		h.logger.Error("Failed to create group: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (h *CommunityHandler) UpdateGroup(c *gin.Context) {
	var req UpdateGroupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
	}
	input.ImageFile, _ = c.FormFile("image")

	group, err := h.communityUseCase.UpdateGroup(c.Request.Context(), c.Param("id"), input, nil)
	if err != nil {
		h.logger.Error("Failed to update group: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

func (h *CommunityHandler) DeleteGroup(c *gin.Context) {
	if err := h.communityUseCase.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete group: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}
