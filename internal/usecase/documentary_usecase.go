package usecase

import (
	"context"
	"mime/multipart"
	"time"

	"grace-media/internal/entity"
	"grace-media/internal/repo/persistent"
	"grace-media/pkg/cache"
	"grace-media/pkg/logger"
	"grace-media/pkg/queue"
	"grace-media/pkg/storage"
)

const (
	maxDocumentaryVideoSize = 2 << 30
	maxDocumentaryThumbSize = 5 << 20
)

type CreateDocumentaryInput struct {
	Title       string
	Description string
	Duration    int
	Status      entity.Status

	VideoFile     *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
}

type UpdateDocumentaryInput struct {
	Fields entity.DocumentaryFields

	VideoFile     *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
}

type DocumentaryUseCase interface {
	ListDocumentaries(ctx context.Context, filters entity.DocumentaryFilters) (*entity.DocumentaryList, error)
	GetDocumentary(ctx context.Context, id string) (*entity.Documentary, error)
	CreateDocumentary(ctx context.Context, input CreateDocumentaryInput, onProgress storage.ProgressFunc) (*entity.Documentary, error)
	UpdateDocumentary(ctx context.Context, id string, input UpdateDocumentaryInput, onProgress storage.ProgressFunc) (*entity.Documentary, error)
	DeleteDocumentary(ctx context.Context, id string) error
	BulkDeleteDocumentaries(ctx context.Context, ids []string) (int64, error)
}

type documentaryUseCase struct {
	docRepo persistent.DocumentaryRepository
	files   FileStore
	cache   ContentCache
	events  EventPublisher
	logger  *logger.Logger
}

func NewDocumentaryUseCase(
	docRepo persistent.DocumentaryRepository,
	files FileStore,
	contentCache ContentCache,
	events EventPublisher,
	log *logger.Logger,
) DocumentaryUseCase {
	return &documentaryUseCase{
		docRepo: docRepo,
		files:   files,
		cache:   contentCache,
		events:  events,
		logger:  log,
	}
}

func (uc *documentaryUseCase) ListDocumentaries(ctx context.Context, filters entity.DocumentaryFilters) (*entity.DocumentaryList, error) {
	filterKey := cache.FilterKey(filters)

	var cached entity.DocumentaryList
	if uc.cache.GetList(ctx, CacheDocumentaries, filterKey, &cached) {
		return &cached, nil
	}

	docs, total, err := uc.docRepo.List(filters)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	result := &entity.DocumentaryList{Documentaries: docs, Total: total}
	uc.cache.SetList(ctx, CacheDocumentaries, filterKey, result)
	return result, nil
}

func (uc *documentaryUseCase) GetDocumentary(ctx context.Context, id string) (*entity.Documentary, error) {
	var cached entity.Documentary
	if uc.cache.GetDetail(ctx, CacheDocumentaries, id, &cached) {
		return &cached, nil
	}

	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.cache.SetDetail(ctx, CacheDocumentaries, id, doc)
	return doc, nil
}

func (uc *documentaryUseCase) CreateDocumentary(ctx context.Context, input CreateDocumentaryInput, onProgress storage.ProgressFunc) (*entity.Documentary, error) {
	if input.VideoFile == nil {
		return nil, NewValidationError("video file is required")
	}
	if input.ThumbnailFile == nil {
		return nil, NewValidationError("thumbnail file is required")
	}

	if err := storage.ValidateFile(input.VideoFile, storage.ValidateOptions{
		MaxSize:      maxDocumentaryVideoSize,
		AllowedTypes: []string{"video/*", ".mp4", ".mov", ".avi"},
	}); err != nil {
		return nil, NewValidationError("video: %v", err)
	}
	if err := storage.ValidateFile(input.ThumbnailFile, storage.ValidateOptions{
		MaxSize:      maxDocumentaryThumbSize,
		AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
	}); err != nil {
		return nil, NewValidationError("thumbnail: %v", err)
	}

	tracker := storage.NewProgressTracker(onProgress)

	videoURL, err := uc.files.Upload(input.VideoFile, storage.BucketDocumentaries, "videos", tracker.Slot("video"))
	if err != nil {
		return nil, &UploadError{Field: "video", Err: err}
	}

	thumbnailURL, err := uc.files.Upload(input.ThumbnailFile, storage.BucketDocumentaries, "thumbnails", tracker.Slot("thumbnail"))
	if err != nil {
		return nil, &UploadError{Field: "thumbnail", Err: err}
	}

	doc := &entity.Documentary{
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		Status:       input.Status,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	}

	if err := uc.docRepo.Create(doc); err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheDocumentaries)
	uc.publishEvent("created", doc.ID, doc.Title)

	return doc, nil
}

func (uc *documentaryUseCase) UpdateDocumentary(ctx context.Context, id string, input UpdateDocumentaryInput, onProgress storage.ProgressFunc) (*entity.Documentary, error) {
	existing, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	tracker := storage.NewProgressTracker(onProgress)
	patch := documentaryPatch(input.Fields)

	if input.VideoFile != nil {
		uc.cleanupFile(existing.VideoURL)
		url, err := uc.files.Upload(input.VideoFile, storage.BucketDocumentaries, "videos", tracker.Slot("video"))
		if err != nil {
			return nil, &UploadError{Field: "video", Err: err}
		}
		patch["video_url"] = url
	}
	if input.ThumbnailFile != nil {
		uc.cleanupFile(existing.ThumbnailURL)
		url, err := uc.files.Upload(input.ThumbnailFile, storage.BucketDocumentaries, "thumbnails", tracker.Slot("thumbnail"))
		if err != nil {
			return nil, &UploadError{Field: "thumbnail", Err: err}
		}
		patch["thumbnail_url"] = url
	}

	doc, err := uc.docRepo.Update(id, patch)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheDocumentaries)
	uc.cache.InvalidateDetail(ctx, CacheDocumentaries, id)
	uc.publishEvent("updated", doc.ID, doc.Title)

	return doc, nil
}

func (uc *documentaryUseCase) DeleteDocumentary(ctx context.Context, id string) error {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.docRepo.Delete(id); err != nil {
		return &MutationError{Err: err}
	}

	uc.cleanupFile(doc.VideoURL)
	uc.cleanupFile(doc.ThumbnailURL)

	uc.cache.InvalidateEntity(ctx, CacheDocumentaries)
	uc.cache.InvalidateDetail(ctx, CacheDocumentaries, id)
	uc.publishEvent("deleted", id, doc.Title)

	return nil
}

func (uc *documentaryUseCase) BulkDeleteDocumentaries(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("no ids given")
	}

	docs, err := uc.docRepo.GetByIDs(ids)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	deleted, err := uc.docRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, &MutationError{Err: err}
	}

	for _, doc := range docs {
		uc.cleanupFile(doc.VideoURL)
		uc.cleanupFile(doc.ThumbnailURL)
		uc.cache.InvalidateDetail(ctx, CacheDocumentaries, doc.ID)
	}

	uc.cache.InvalidateEntity(ctx, CacheDocumentaries)
	return deleted, nil
}

func (uc *documentaryUseCase) cleanupFile(url string) {
	if url == "" {
		return
	}
	if err := uc.files.DeleteByURL(url, storage.BucketDocumentaries); err != nil {
		uc.logger.Warn("file cleanup failed for %s: %v", url, err)
	}
}

func (uc *documentaryUseCase) publishEvent(action, id, title string) {
	if uc.events == nil {
		return
	}
	err := uc.events.PublishContentEvent(queue.ContentEvent{
		Action:     action,
		EntityType: "documentary",
		EntityID:   id,
		Title:      title,
	})
	if err != nil {
		uc.logger.Warn("failed to publish documentary event: %v", err)
	}
}

func documentaryPatch(fields entity.DocumentaryFields) map[string]interface{} {
	patch := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if fields.Title != nil {
		patch["title"] = *fields.Title
	}
	if fields.Description != nil {
		patch["description"] = *fields.Description
	}
	if fields.Duration != nil {
		patch["duration"] = *fields.Duration
	}
	if fields.Status != nil {
		patch["status"] = string(*fields.Status)
	}
	return patch
}
