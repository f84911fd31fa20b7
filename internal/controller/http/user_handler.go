package http

import (
	"net/http"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, logger: logger}
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=admin editor moderator user"`
}

type UpdateUserRequest struct {
	Email    *string `form:"email" binding:"omitempty,email"`
	FullName *string `form:"full_name"`
	Phone    *string `form:"phone"`
	Bio      *string `form:"bio"`
	Role     *string `form:"role" binding:"omitempty,oneof=admin editor moderator user"`
}

// ListUsers godoc
// @Summary      List user profiles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Match against full name or email"
// @Param        role query string false "admin, editor, moderator, user or all"
// @Param        sort_by query string false "latest, oldest or title (full name)"
// @Param        page query int false "Page number (1-based)"
// @Param        per_page query int false "Page size"
// @Success      200  {object}  entity.UserList
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := entity.UserFilters{
		Search:  c.Query("search"),
		Role:    c.Query("role"),
		SortBy:  c.Query("sort_by"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	}

	result, err := h.userUseCase.ListUsers(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	if !canAccessProfile(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary      Create a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequest true "New user"
// @Success      201  {object}  entity.UserProfile
// @Failure      400  {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		h.logger.Error("Failed to create user: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary      Update a user profile
// @Description  Update profile fields; an uploaded avatar replaces the stored one. Non-admins may only update their own profile and cannot change roles.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        avatar formData file false "Avatar image (up to 5MB)"
// @Success      200  {object}  entity.UserProfile
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	if !canAccessProfile(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Role assignment stays admin-only even on a self-update.
	if req.Role != nil && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can change roles"})
		return
	}

	input := usecase.UpdateUserInput{
		Fields: entity.UserFields{
			Email:    req.Email,
			FullName: req.FullName,
			Phone:    req.Phone,
			Bio:      req.Bio,
		},
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Fields.Role = &role
	}
	input.AvatarFile, _ = c.FormFile("avatar")

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), c.Param("id"), input, nil)
	if err != nil {
		h.logger.Error("Failed to update user: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete user: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// canAccessProfile allows admins to reach any profile and everyone else
// only their own. AuthMiddleware set user_id and role on the context.
func canAccessProfile(c *gin.Context) bool {
	return c.GetString("role") == "admin" || c.GetString("user_id") == c.Param("id")
}
