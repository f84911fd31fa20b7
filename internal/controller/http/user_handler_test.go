package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"grace-media/internal/entity"
	"grace-media/internal/usecase"
	"grace-media/pkg/logger"
	"grace-media/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) ListUsers(ctx context.Context, filters entity.UserFilters) (*entity.UserList, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserList), args.Error(1)
}

func (m *MockUserUseCase) GetUser(ctx context.Context, id string) (*entity.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserUseCase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.UserProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, id string, input usecase.UpdateUserInput, onProgress storage.ProgressFunc) (*entity.UserProfile, error) {
	args := m.Called(ctx, id, input, onProgress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

// setupUserRouter registers the user routes behind a stub of the auth
// middleware that seeds the caller's identity and role.
func setupUserRouter(uc usecase.UserUseCase, callerID, callerRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(uc, logger.New())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", callerID)
		c.Set("role", callerRole)
	})
	r.GET("/users/:id", handler.GetUser)
	r.PUT("/users/:id", handler.UpdateUser)
	return r
}

func formBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		assert.NoError(t, writer.WriteField(name, value))
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpdateUserCannotPromoteOtherAccount(t *testing.T) {
	mockUC := new(MockUserUseCase)
	router := setupUserRouter(mockUC, "u1", "user")

	body, contentType := formBody(t, map[string]string{"role": "admin"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/victim", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUC.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserSelfPromotionForbidden(t *testing.T) {
	mockUC := new(MockUserUseCase)
	router := setupUserRouter(mockUC, "u1", "user")

	body, contentType := formBody(t, map[string]string{"role": "admin"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/u1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUC.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserSelfProfileAllowed(t *testing.T) {
	mockUC := new(MockUserUseCase)
	router := setupUserRouter(mockUC, "u1", "user")

	mockUC.On("UpdateUser", mock.Anything, "u1", mock.MatchedBy(func(input usecase.UpdateUserInput) bool {
		return input.Fields.FullName != nil && *input.Fields.FullName == "New Name" &&
			input.Fields.Role == nil
	}), mock.Anything).Return(&entity.UserProfile{ID: "u1", FullName: "New Name"}, nil)

	body, contentType := formBody(t, map[string]string{"full_name": "New Name"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/u1", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUC.AssertExpectations(t)
}

func TestUpdateUserAdminCanChangeRole(t *testing.T) {
	mockUC := new(MockUserUseCase)
	router := setupUserRouter(mockUC, "admin-1", "admin")

	mockUC.On("UpdateUser", mock.Anything, "u2", mock.MatchedBy(func(input usecase.UpdateUserInput) bool {
		return input.Fields.Role != nil && *input.Fields.Role == entity.RoleEditor
	}), mock.Anything).Return(&entity.UserProfile{ID: "u2"}, nil)

	body, contentType := formBody(t, map[string]string{"role": "editor"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/u2", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUC.AssertExpectations(t)
}

func TestGetUserOtherProfileForbidden(t *testing.T) {
	mockUC := new(MockUserUseCase)
	router := setupUserRouter(mockUC, "u1", "user")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/u2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUC.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestGetUserOwnProfile(t *testing.T) {
	mockUC := new(MockUserUseCase)
	router := setupUserRouter(mockUC, "u1", "user")

	mockUC.On("GetUser", mock.Anything, "u1").
		Return(&entity.UserProfile{ID: "u1", FullName: "Mary Smith"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/u1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mary Smith")
}
