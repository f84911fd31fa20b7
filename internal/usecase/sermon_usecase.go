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

// Upload limits for sermon media. Each content family keeps its own
// limits; they are intentionally not shared constants.
const (
	maxSermonVideoSize = 500 << 20
	maxSermonThumbSize = 5 << 20
	maxSermonAudioSize = 100 << 20
)

type CreateSermonInput struct {
	Title        string
	Speaker      string
	Description  string
	Duration     int
	DatePreached time.Time
	Featured     bool
	Status       entity.Status

	VideoFile     *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
	AudioFile     *multipart.FileHeader // optional
}

type UpdateSermonInput struct {
	Fields entity.SermonFields

	VideoFile     *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
	AudioFile     *multipart.FileHeader
}

type SermonUseCase interface {
	ListSermons(ctx context.Context, filters entity.SermonFilters) (*entity.SermonList, error)
	GetSermon(ctx context.Context, id string) (*entity.Sermon, error)
	CreateSermon(ctx context.Context, input CreateSermonInput, onProgress storage.ProgressFunc) (*entity.Sermon, error)
	UpdateSermon(ctx context.Context, id string, input UpdateSermonInput, onProgress storage.ProgressFunc) (*entity.Sermon, error)
	DeleteSermon(ctx context.Context, id string) error
	BulkDeleteSermons(ctx context.Context, ids []string) (int64, error)
	BulkUpdateSermonStatus(ctx context.Context, ids []string, status entity.Status) error
}

type sermonUseCase struct {
	sermonRepo persistent.SermonRepository
	files      FileStore
	cache      ContentCache
	events     EventPublisher
	logger     *logger.Logger
}

func NewSermonUseCase(
	sermonRepo persistent.SermonRepository,
	files FileStore,
	contentCache ContentCache,
	events EventPublisher,
	log *logger.Logger,
) SermonUseCase {
	return &sermonUseCase{
		sermonRepo: sermonRepo,
		files:      files,
		cache:      contentCache,
		events:     events,
		logger:     log,
	}
}

func (uc *sermonUseCase) ListSermons(ctx context.Context, filters entity.SermonFilters) (*entity.SermonList, error) {
	filterKey := cache.FilterKey(filters)

	var cached entity.SermonList
	if uc.cache.GetList(ctx, CacheSermons, filterKey, &cached) {
		return &cached, nil
	}

	sermons, total, err := uc.sermonRepo.List(filters)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	result := &entity.SermonList{Sermons: sermons, Total: total}
	uc.cache.SetList(ctx, CacheSermons, filterKey, result)
	return result, nil
}

func (uc *sermonUseCase) GetSermon(ctx context.Context, id string) (*entity.Sermon, error) {
	var cached entity.Sermon
	if uc.cache.GetDetail(ctx, CacheSermons, id, &cached) {
		return &cached, nil
	}

	sermon, err := uc.sermonRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.cache.SetDetail(ctx, CacheSermons, id, sermon)
	return sermon, nil
}

func (uc *sermonUseCase) CreateSermon(ctx context.Context, input CreateSermonInput, onProgress storage.ProgressFunc) (*entity.Sermon, error) {
	// Required files are a precondition; nothing is uploaded or written
	// until both are present and within limits.
	if input.VideoFile == nil {
		return nil, NewValidationError("video file is required")
	}
	if input.ThumbnailFile == nil {
		return nil, NewValidationError("thumbnail file is required")
	}

	if err := storage.ValidateFile(input.VideoFile, storage.ValidateOptions{
		MaxSize:      maxSermonVideoSize,
		AllowedTypes: []string{"video/*", ".mp4", ".mov", ".avi"},
	}); err != nil {
		return nil, NewValidationError("video: %v", err)
	}
	if err := storage.ValidateFile(input.ThumbnailFile, storage.ValidateOptions{
		MaxSize:      maxSermonThumbSize,
		AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
	}); err != nil {
		return nil, NewValidationError("thumbnail: %v", err)
	}
	if input.AudioFile != nil {
		if err := storage.ValidateFile(input.AudioFile, storage.ValidateOptions{
			MaxSize:      maxSermonAudioSize,
			AllowedTypes: []string{"audio/*", ".mp3", ".m4a", ".wav"},
		}); err != nil {
			return nil, NewValidationError("audio: %v", err)
		}
	}

	tracker := storage.NewProgressTracker(onProgress)

	videoURL, err := uc.files.Upload(input.VideoFile, storage.BucketSermons, "videos", tracker.Slot("video"))
	if err != nil {
		return nil, &UploadError{Field: "video", Err: err}
	}

	thumbnailURL, err := uc.files.Upload(input.ThumbnailFile, storage.BucketSermons, "thumbnails", tracker.Slot("thumbnail"))
	if err != nil {
		return nil, &UploadError{Field: "thumbnail", Err: err}
	}

	var audioURL string
	if input.AudioFile != nil {
		audioURL, err = uc.files.Upload(input.AudioFile, storage.BucketSermons, "audio", tracker.Slot("audio"))
		if err != nil {
			return nil, &UploadError{Field: "audio", Err: err}
		}
	}

	datePreached := input.DatePreached
	if datePreached.IsZero() {
		datePreached = time.Now()
	}

	sermon := &entity.Sermon{
		Title:        input.Title,
		Speaker:      input.Speaker,
		Description:  input.Description,
		Duration:     input.Duration,
		DatePreached: datePreached,
		Featured:     input.Featured,
		Status:       input.Status,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		AudioURL:     audioURL,
	}

	if err := uc.sermonRepo.Create(sermon); err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheSermons)
	uc.publishEvent("created", sermon.ID, sermon.Title)

	return sermon, nil
}

func (uc *sermonUseCase) UpdateSermon(ctx context.Context, id string, input UpdateSermonInput, onProgress storage.ProgressFunc) (*entity.Sermon, error) {
	existing, err := uc.sermonRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	tracker := storage.NewProgressTracker(onProgress)
	patch := sermonPatch(input.Fields)

	if input.VideoFile != nil {
		uc.cleanupFile(existing.VideoURL, storage.BucketSermons)
		url, err := uc.files.Upload(input.VideoFile, storage.BucketSermons, "videos", tracker.Slot("video"))
		if err != nil {
			return nil, &UploadError{Field: "video", Err: err}
		}
		patch["video_url"] = url
	}
	if input.ThumbnailFile != nil {
		uc.cleanupFile(existing.ThumbnailURL, storage.BucketSermons)
		url, err := uc.files.Upload(input.ThumbnailFile, storage.BucketSermons, "thumbnails", tracker.Slot("thumbnail"))
		if err != nil {
			return nil, &UploadError{Field: "thumbnail", Err: err}
		}
		patch["thumbnail_url"] = url
	}
	if input.AudioFile != nil {
		uc.cleanupFile(existing.AudioURL, storage.BucketSermons)
		url, err := uc.files.Upload(input.AudioFile, storage.BucketSermons, "audio", tracker.Slot("audio"))
		if err != nil {
			return nil, &UploadError{Field: "audio", Err: err}
		}
		patch["audio_url"] = url
	}

	sermon, err := uc.sermonRepo.Update(id, patch)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheSermons)
	uc.cache.InvalidateDetail(ctx, CacheSermons, id)
	uc.publishEvent("updated", sermon.ID, sermon.Title)

	return sermon, nil
}

func (uc *sermonUseCase) DeleteSermon(ctx context.Context, id string) error {
	// Capture file URLs before the row disappears.
	sermon, err := uc.sermonRepo.GetByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.sermonRepo.Delete(id); err != nil {
		return &MutationError{Err: err}
	}

	// Row is gone; file cleanup is best-effort from here on.
	uc.cleanupFile(sermon.VideoURL, storage.BucketSermons)
	uc.cleanupFile(sermon.ThumbnailURL, storage.BucketSermons)
	uc.cleanupFile(sermon.AudioURL, storage.BucketSermons)

	uc.cache.InvalidateEntity(ctx, CacheSermons)
	uc.cache.InvalidateDetail(ctx, CacheSermons, id)
	uc.publishEvent("deleted", id, sermon.Title)

	return nil
}

func (uc *sermonUseCase) BulkDeleteSermons(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("no ids given")
	}

	sermons, err := uc.sermonRepo.GetByIDs(ids)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	deleted, err := uc.sermonRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, &MutationError{Err: err}
	}

	for _, sermon := range sermons {
		uc.cleanupFile(sermon.VideoURL, storage.BucketSermons)
		uc.cleanupFile(sermon.ThumbnailURL, storage.BucketSermons)
		uc.cleanupFile(sermon.AudioURL, storage.BucketSermons)
		uc.cache.InvalidateDetail(ctx, CacheSermons, sermon.ID)
	}

	uc.cache.InvalidateEntity(ctx, CacheSermons)
	return deleted, nil
}

func (uc *sermonUseCase) BulkUpdateSermonStatus(ctx context.Context, ids []string, status entity.Status) error {
	if len(ids) == 0 {
		return NewValidationError("no ids given")
	}

	if err := uc.sermonRepo.UpdateStatusByIDs(ids, status); err != nil {
		return &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheSermons)
	for _, id := range ids {
		uc.cache.InvalidateDetail(ctx, CacheSermons, id)
	}
	return nil
}

// cleanupFile deletes a stored file without ever failing the caller.
func (uc *sermonUseCase) cleanupFile(url, bucket string) {
	if url == "" {
		return
	}
	if err := uc.files.DeleteByURL(url, bucket); err != nil {
		uc.logger.Warn("file cleanup failed for %s: %v", url, err)
	}
}

func (uc *sermonUseCase) publishEvent(action, id, title string) {
	if uc.events == nil {
		return
	}
	err := uc.events.PublishContentEvent(queue.ContentEvent{
		Action:     action,
		EntityType: "sermon",
		EntityID:   id,
		Title:      title,
	})
	if err != nil {
		uc.logger.Warn("failed to publish sermon event: %v", err)
	}
}

// sermonPatch turns the typed update fields into a column patch. File
// fields never appear here; upload URLs are added by the caller.
func sermonPatch(fields entity.SermonFields) map[string]interface{} {
	patch := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if fields.Title != nil {
		patch["title"] = *fields.Title
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
	if fields.DatePreached != nil {
		patch["date_preached"] = *fields.DatePreached
	}
	if fields.Featured != nil {
		patch["featured"] = *fields.Featured
	}
	if fields.Status != nil {
		patch["status"] = string(*fields.Status)
	}
	return patch
}
