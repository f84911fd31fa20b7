package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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
	"gorm.io/gorm"
)

// MockSermonUseCase is a mock implementation of SermonUseCase
type MockSermonUseCase struct {
	mock.Mock
}

func (m *MockSermonUseCase) ListSermons(ctx context.Context, filters entity.SermonFilters) (*entity.SermonList, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SermonList), args.Error(1)
}

func (m *MockSermonUseCase) GetSermon(ctx context.Context, id string) (*entity.Sermon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sermon), args.Error(1)
}

func (m *MockSermonUseCase) CreateSermon(ctx context.Context, input usecase.CreateSermonInput, onProgress storage.ProgressFunc) (*entity.Sermon, error) {
	args := m.Called(ctx, input, onProgress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sermon), args.Error(1)
}

func (m *MockSermonUseCase) UpdateSermon(ctx context.Context, id string, input usecase.UpdateSermonInput, onProgress storage.ProgressFunc) (*entity.Sermon, error) {
	args := m.Called(ctx, id, input, onProgress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sermon), args.Error(1)
}

func (m *MockSermonUseCase) DeleteSermon(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSermonUseCase) BulkDeleteSermons(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSermonUseCase) BulkUpdateSermonStatus(ctx context.Context, ids []string, status entity.Status) error {
	args := m.Called(ctx, ids, status)
	return args.Error(0)
}

var _ usecase.SermonUseCase = (*MockSermonUseCase)(nil)

func setupSermonRouter(uc usecase.SermonUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSermonHandler(uc, logger.New())

	r := gin.New()
	r.GET("/sermons", handler.ListSermons)
	r.GET("/sermons/:id", handler.GetSermon)
	r.DELETE("/sermons/:id", handler.DeleteSermon)
	r.POST("/sermons/bulk-delete", handler.BulkDeleteSermons)
	r.POST("/sermons/bulk-status", handler.BulkUpdateSermonStatus)
	return r
}

func TestListSermonsEndpoint(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	expected := &entity.SermonList{
		Sermons: []*entity.Sermon{{ID: "s1", Title: "Amazing Grace"}},
		Total:   1,
	}
	mockUC.On("ListSermons", mock.Anything, entity.SermonFilters{
		Search: "grace", Status: "published", SortBy: "latest", Page: 2, PerPage: 20,
	}).Return(expected, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sermons?search=grace&status=published&sort_by=latest&page=2&per_page=20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result entity.SermonList
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.Total)
	mockUC.AssertExpectations(t)
}

func TestListSermonsDefaultsPagination(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	mockUC.On("ListSermons", mock.Anything, entity.SermonFilters{Page: 1, PerPage: 10}).
		Return(&entity.SermonList{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sermons", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUC.AssertExpectations(t)
}

func TestGetSermonNotFound(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	mockUC.On("GetSermon", mock.Anything, "missing").
		Return(nil, &usecase.QueryError{Err: gorm.ErrRecordNotFound})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sermons/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSermonBackendFailure(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	mockUC.On("DeleteSermon", mock.Anything, "s1").
		Return(&usecase.MutationError{Err: errors.New("deadlock detected")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/sermons/s1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "deadlock detected")
}

func TestBulkDeleteSermonsEndpoint(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	mockUC.On("BulkDeleteSermons", mock.Anything, []string{"s1", "s2"}).Return(int64(2), nil)

	body, _ := json.Marshal(gin.H{"ids": []string{"s1", "s2"}})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sermons/bulk-delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":2`)
}

func TestBulkDeleteSermonsEmptyBody(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	body, _ := json.Marshal(gin.H{"ids": []string{}})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sermons/bulk-delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "BulkDeleteSermons", mock.Anything, mock.Anything)
}

func TestBulkUpdateSermonStatusEndpoint(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	mockUC.On("BulkUpdateSermonStatus", mock.Anything, []string{"s1"}, entity.StatusPublished).Return(nil)

	body, _ := json.Marshal(gin.H{"ids": []string{"s1"}, "status": "published"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sermons/bulk-status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUC.AssertExpectations(t)
}

func TestBulkUpdateSermonStatusRejectsBadStatus(t *testing.T) {
	mockUC := new(MockSermonUseCase)
	router := setupSermonRouter(mockUC)

	body, _ := json.Marshal(gin.H{"ids": []string{"s1"}, "status": "archived"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sermons/bulk-status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUC.AssertNotCalled(t, "BulkUpdateSermonStatus", mock.Anything, mock.Anything, mock.Anything)
}
