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
	maxPresentationVideoSize = 500 << 20
	maxPresentationThumbSize = 5 << 20
)

type CreatePresentationInput struct {
	Title       string
	Type        entity.PresentationType
	Speaker     string
	Description string
	Duration    int
	Status      entity.Status

	VideoFile     *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
}

type UpdatePresentationInput struct {
	Fields entity.PresentationFields

	VideoFile     *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
}

type PresentationUseCase interface {
	ListPresentations(ctx context.Context, filters entity.PresentationFilters) (*entity.PresentationList, error)
	GetPresentation(ctx context.Context, id string) (*entity.Presentation, error)
	CreatePresentation(ctx context.Context, input CreatePresentationInput, onProgress storage.ProgressFunc) (*entity.Presentation, error)
	UpdatePresentation(ctx context.Context, id string, input UpdatePresentationInput, onProgress storage.ProgressFunc) (*entity.Presentation, error)
	DeletePresentation(ctx context.Context, id string) error
	BulkDeletePresentations(ctx context.Context, ids []string) (int64, error)
}

type presentationUseCase struct {
	presentationRepo persistent.PresentationRepository
	files            FileStore
	cache            ContentCache
	events           EventPublisher
	logger           *logger.Logger
}

func NewPresentationUseCase(
	presentationRepo persistent.PresentationRepository,
	files FileStore,
	contentCache ContentCache,
	events EventPublisher,
	log *logger.Logger,
) PresentationUseCase {
	return &presentationUseCase{
		presentationRepo: presentationRepo,
		files:            files,
		cache:            contentCache,
		events:           events,
		logger:           log,
	}
}

func (uc *presentationUseCase) ListPresentations(ctx context.Context, filters entity.PresentationFilters) (*entity.PresentationList, error) {
	filterKey := cache.FilterKey(filters)

	var cached entity.PresentationList
	if uc.cache.GetList(ctx, CachePresentations, filterKey, &cached) {
		return &cached, nil
	}

	presentations, total, err := uc.presentationRepo.List(filters)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	result := &entity.PresentationList{Presentations: presentations, Total: total}
	uc.cache.SetList(ctx, CachePresentations, filterKey, result)
	return result, nil
}

func (uc *presentationUseCase) GetPresentation(ctx context.Context, id string) (*entity.Presentation, error) {
	var cached entity.Presentation
	if uc.cache.GetDetail(ctx, CachePresentations, id, &cached) {
		return &cached, nil
	}

	presentation, err := uc.presentationRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.cache.SetDetail(ctx, CachePresentations, id, presentation)
	return presentation, nil
}

func (uc *presentationUseCase) CreatePresentation(ctx context.Context, input CreatePresentationInput, onProgress storage.ProgressFunc) (*entity.Presentation, error) {
	if input.VideoFile == nil {
		return nil, NewValidationError("video file is required")
	}
	if input.ThumbnailFile == nil {
		return nil, NewValidationError("thumbnail file is required")
	}

	if err := storage.ValidateFile(input.VideoFile, storage.ValidateOptions{
		MaxSize:      maxPresentationVideoSize,
		AllowedTypes: []string{"video/*", ".mp4", ".mov", ".avi"},
	}); err != nil {
		return nil, NewValidationError("video: %v", err)
	}
	if err := storage.ValidateFile(input.ThumbnailFile, storage.ValidateOptions{
		MaxSize:      maxPresentationThumbSize,
		AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
	}); err != nil {
		return nil, NewValidationError("thumbnail: %v", err)
	}

	tracker := storage.NewProgressTracker(onProgress)

	videoURL, err := uc.files.Upload(input.VideoFile, storage.BucketPresentations, "videos", tracker.Slot("video"))
	if err != nil {
		return nil, &UploadError{Field: "video", Err: err}
	}

	thumbnailURL, err := uc.files.Upload(input.ThumbnailFile, storage.BucketPresentations, "thumbnails", tracker.Slot("thumbnail"))
	if err != nil {
		return nil, &UploadError{Field: "thumbnail", Err: err}
	}

	presentation := &entity.Presentation{
		Title:        input.Title,
		Type:         input.Type,
		Speaker:      input.Speaker,
		Description:  input.Description,
		Duration:     input.Duration,
		Status:       input.Status,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	}

	if err := uc.presentationRepo.Create(presentation); err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CachePresentations)
	uc.publishEvent("created", presentation.ID, presentation.Title)

	return presentation, nil
}

func (uc *presentationUseCase) UpdatePresentation(ctx context.Context, id string, input UpdatePresentationInput, onProgress storage.ProgressFunc) (*entity.Presentation, error) {
	existing, err := uc.presentationRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	tracker := storage.NewProgressTracker(onProgress)
	patch := presentationPatch(input.Fields)

	if input.VideoFile != nil {
		uc.cleanupFile(existing.VideoURL)
		url, err := uc.files.Upload(input.VideoFile, storage.BucketPresentations, "videos", tracker.Slot("video"))
		if err != nil {
			return nil, &UploadError{Field: "video", Err: err}
		}
		patch["video_url"] = url
	}
	if input.ThumbnailFile != nil {
		uc.cleanupFile(existing.ThumbnailURL)
		url, err := uc.files.Upload(input.ThumbnailFile, storage.BucketPresentations, "thumbnails", tracker.Slot("thumbnail"))
		if err != nil {
			return nil, &UploadError{Field: "thumbnail", Err: err}
		}
		patch["thumbnail_url"] = url
	}

	presentation, err := uc.presentationRepo.Update(id, patch)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CachePresentations)
	uc.cache.InvalidateDetail(ctx, CachePresentations, id)
	uc.publishEvent("updated", presentation.ID, presentation.Title)

	return presentation, nil
}

func (uc *presentationUseCase) DeletePresentation(ctx context.Context, id string) error {
	presentation, err := uc.presentationRepo.GetByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.presentationRepo.Delete(id); err != nil {
		return &MutationError{Err: err}
	}

	uc.cleanupFile(presentation.VideoURL)
	uc.cleanupFile(presentation.ThumbnailURL)

	uc.cache.InvalidateEntity(ctx, CachePresentations)
	uc.cache.InvalidateDetail(ctx, CachePresentations, id)
	uc.publishEvent("deleted", id, presentation.Title)

	return nil
}

func (uc *presentationUseCase) BulkDeletePresentations(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("no ids given")
	}

	presentations, err := uc.presentationRepo.GetByIDs(ids)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	deleted, err := uc.presentationRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, &MutationError{Err: err}
	}

	for _, presentation := range presentations {
		uc.cleanupFile(presentation.VideoURL)
		uc.cleanupFile(presentation.ThumbnailURL)
		uc.cache.InvalidateDetail(ctx, CachePresentations, presentation.ID)
	}

	uc.cache.InvalidateEntity(ctx, CachePresentations)
	return deleted, nil
}

func (uc *presentationUseCase) cleanupFile(url string) {
	if url == "" {
		return
	}
	if err := uc.files.DeleteByURL(url, storage.BucketPresentations); err != nil {
		uc.logger.Warn("file cleanup failed for %s: %v", url, err)
	}
}

func (uc *presentationUseCase) publishEvent(action, id, title string) {
	if uc.events == nil {
		return
	}
	err := uc.events.PublishContentEvent(queue.ContentEvent{
		Action:     action,
		EntityType: "presentation",
		EntityID:   id,
		Title:      title,
	})
	if err != nil {
		uc.logger.Warn("failed to publish presentation event: %v", err)
	}
}

func presentationPatch(fields entity.PresentationFields) map[string]interface{} {
	patch := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if fields.Title != nil {
		patch["title"] = *fields.Title
	}
	if fields.Type != nil {
		patch["type"] = string(*fields.Type)
	}
	if fields.Speaker != nil {
		patch["speaker"] = *fields.Speaker
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
