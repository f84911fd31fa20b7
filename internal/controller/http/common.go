package http

import (
	"errors"
	"net/http"
	"strconv"

	"grace-media/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps a usecase error onto the right status code. Anything
// unrecognized is a 500 with the error text preserved for the admin UI.
func respondError(c *gin.Context, err error) {
	switch {
	case usecase.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case usecase.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

type bulkIDsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
