package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResult), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupAuthRouter(uc usecase.AuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(uc, logger.New())

	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r
}

func TestLoginEndpoint(t *testing.T) {
	mockUC := new(MockAuthUseCase)
	router := setupAuthRouter(mockUC)

	mockUC.On("Login", mock.Anything, "admin@example.com", "correct horse").
		Return(&usecase.LoginResult{
			Token: "signed-token",
			User:  &entity.UserProfile{ID: "u1", Email: "admin@example.com", Role: entity.RoleAdmin},
		}, nil)

	body, _ := json.Marshal(gin.H{"email": "admin@example.com", "password": "correct horse"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	mockUC := new(MockAuthUseCase)
	router := setupAuthRouter(mockUC)

	mockUC.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return(nil, usecase.ErrInvalidCredentials)

	body, _ := json.Marshal(gin.H{"email": "admin@example.com", "password": "wrong"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEndpointMissingFields(t *testing.T) {
	mockUC := new(MockAuthUseCase)
	router := setupAuthRouter(mockUC)

	body, _ := json.Marshal(gin.H{"email": "not-an-email"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
