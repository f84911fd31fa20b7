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
	maxMaterialDocSize   = 50 << 20
	maxMaterialThumbSize = 5 << 20
)

type CreateMaterialInput struct {
	Title       string
	Type        entity.MaterialType
	Author      string
	Description string
	Status      entity.Status

	DocumentFile  *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
}

type UpdateMaterialInput struct {
	Fields entity.MaterialFields

	DocumentFile  *multipart.FileHeader
	ThumbnailFile *multipart.FileHeader
}

type MaterialUseCase interface {
	ListMaterials(ctx context.Context, filters entity.MaterialFilters) (*entity.MaterialList, error)
	GetMaterial(ctx context.Context, id string) (*entity.Material, error)
	CreateMaterial(ctx context.Context, input CreateMaterialInput, onProgress storage.ProgressFunc) (*entity.Material, error)
	UpdateMaterial(ctx context.Context, id string, input UpdateMaterialInput, onProgress storage.ProgressFunc) (*entity.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
	BulkDeleteMaterials(ctx context.Context, ids []string) (int64, error)
}

type materialUseCase struct {
	materialRepo persistent.MaterialRepository
	files        FileStore
	cache        ContentCache
	events       EventPublisher
	logger       *logger.Logger
}

func NewMaterialUseCase(
	materialRepo persistent.MaterialRepository,
	files FileStore,
	contentCache ContentCache,
	events EventPublisher,
	log *logger.Logger,
) MaterialUseCase {
	return &materialUseCase{
		materialRepo: materialRepo,
		files:        files,
		cache:        contentCache,
		events:       events,
		logger:       log,
	}
}

func (uc *materialUseCase) ListMaterials(ctx context.Context, filters entity.MaterialFilters) (*entity.MaterialList, error) {
	filterKey := cache.FilterKey(filters)

	var cached entity.MaterialList
	if uc.cache.GetList(ctx, CacheMaterials, filterKey, &cached) {
		return &cached, nil
	}

	materials, total, err := uc.materialRepo.List(filters)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	result := &entity.MaterialList{Materials: materials, Total: total}
	uc.cache.SetList(ctx, CacheMaterials, filterKey, result)
	return result, nil
}

func (uc *materialUseCase) GetMaterial(ctx context.Context, id string) (*entity.Material, error) {
	var cached entity.Material
	if uc.cache.GetDetail(ctx, CacheMaterials, id, &cached) {
		return &cached, nil
	}

	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.cache.SetDetail(ctx, CacheMaterials, id, material)
	return material, nil
}

func (uc *materialUseCase) CreateMaterial(ctx context.Context, input CreateMaterialInput, onProgress storage.ProgressFunc) (*entity.Material, error) {
	if input.DocumentFile == nil {
		return nil, NewValidationError("document file is required")
	}
	if input.ThumbnailFile == nil {
		return nil, NewValidationError("thumbnail file is required")
	}

	if err := storage.ValidateFile(input.DocumentFile, storage.ValidateOptions{
		MaxSize:      maxMaterialDocSize,
		AllowedTypes: []string{".pdf", ".epub", ".doc", ".docx"},
	}); err != nil {
		return nil, NewValidationError("document: %v", err)
	}
	if err := storage.ValidateFile(input.ThumbnailFile, storage.ValidateOptions{
		MaxSize:      maxMaterialThumbSize,
		AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
	}); err != nil {
		return nil, NewValidationError("thumbnail: %v", err)
	}

	tracker := storage.NewProgressTracker(onProgress)

	contentURL, err := uc.files.Upload(input.DocumentFile, storage.BucketMaterials, "documents", tracker.Slot("document"))
	if err != nil {
		return nil, &UploadError{Field: "document", Err: err}
	}

	thumbnailURL, err := uc.files.Upload(input.ThumbnailFile, storage.BucketMaterials, "thumbnails", tracker.Slot("thumbnail"))
	if err != nil {
		return nil, &UploadError{Field: "thumbnail", Err: err}
	}

	material := &entity.Material{
		Title:        input.Title,
		Type:         input.Type,
		Author:       input.Author,
		Description:  input.Description,
		Status:       input.Status,
		ContentURL:   contentURL,
		ThumbnailURL: thumbnailURL,
	}

	if err := uc.materialRepo.Create(material); err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheMaterials)
	uc.publishEvent("created", material.ID, material.Title)

	return material, nil
}

func (uc *materialUseCase) UpdateMaterial(ctx context.Context, id string, input UpdateMaterialInput, onProgress storage.ProgressFunc) (*entity.Material, error) {
	existing, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	tracker := storage.NewProgressTracker(onProgress)
	patch := materialPatch(input.Fields)

	if input.DocumentFile != nil {
		uc.cleanupFile(existing.ContentURL)
		url, err := uc.files.Upload(input.DocumentFile, storage.BucketMaterials, "documents", tracker.Slot("document"))
		if err != nil {
			return nil, &UploadError{Field: "document", Err: err}
		}
		patch["content_url"] = url
	}
	if input.ThumbnailFile != nil {
		uc.cleanupFile(existing.ThumbnailURL)
		url, err := uc.files.Upload(input.ThumbnailFile, storage.BucketMaterials, "thumbnails", tracker.Slot("thumbnail"))
		if err != nil {
			return nil, &UploadError{Field: "thumbnail", Err: err}
		}
		patch["thumbnail_url"] = url
	}

	material, err := uc.materialRepo.Update(id, patch)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheMaterials)
	uc.cache.InvalidateDetail(ctx, CacheMaterials, id)
	uc.publishEvent("updated", material.ID, material.Title)

	return material, nil
}

func (uc *materialUseCase) DeleteMaterial(ctx context.Context, id string) error {
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.materialRepo.Delete(id); err != nil {
		return &MutationError{Err: err}
	}

	uc.cleanupFile(material.ContentURL)
	uc.cleanupFile(material.ThumbnailURL)

	uc.cache.InvalidateEntity(ctx, CacheMaterials)
	uc.cache.InvalidateDetail(ctx, CacheMaterials, id)
	uc.publishEvent("deleted", id, material.Title)

	return nil
}

func (uc *materialUseCase) BulkDeleteMaterials(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("no ids given")
	}

	materials, err := uc.materialRepo.GetByIDs(ids)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	deleted, err := uc.materialRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, &MutationError{Err: err}
	}

	for _, material := range materials {
		uc.cleanupFile(material.ContentURL)
		uc.cleanupFile(material.ThumbnailURL)
		uc.cache.InvalidateDetail(ctx, CacheMaterials, material.ID)
	}

	uc.cache.InvalidateEntity(ctx, CacheMaterials)
	return deleted, nil
}

func (uc *materialUseCase) cleanupFile(url string) {
	if url == "" {
		return
	}
	if err := uc.files.DeleteByURL(url, storage.BucketMaterials); err != nil {
		uc.logger.Warn("file cleanup failed for %s: %v", url, err)
	}
}

func (uc *materialUseCase) publishEvent(action, id, title string) {
	if uc.events == nil {
		return
	}
	err := uc.events.PublishContentEvent(queue.ContentEvent{
		Action:     action,
		EntityType: "material",
		EntityID:   id,
		Title:      title,
	})
	if err != nil {
		uc.logger.Warn("failed to publish material event: %v", err)
	}
}

func materialPatch(fields entity.MaterialFields) map[string]interface{} {
	patch := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if fields.Title != nil {
		patch["title"] = *fields.Title
	}
	if fields.Type != nil {
		patch["type"] = string(*fields.Type)
	}
	if fields.Author != nil {
		patch["author"] = *fields.Author
	}
	if fields.Description != nil {
		patch["description"] = *fields.Description
	}
	if fields.Status != nil {
		patch["status"] = string(*fields.Status)
	}
	return patch
}
