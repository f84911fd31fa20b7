package usecase

import (
	"context"
	"mime/multipart"

	"grace-media/pkg/queue"
)

// FileStore is the slice of the storage client the usecases need.
// Satisfied by *storage.Client.
type FileStore interface {
	Upload(fh *multipart.FileHeader, bucket, folder string, onProgress func(int)) (string, error)
	DeleteByURL(url, bucket string) error
}

// ContentCache is the list/detail cache with per-entity invalidation.
// Satisfied by *cache.ListCache.
type ContentCache interface {
	GetList(ctx context.Context, entity, filterKey string, dest interface{}) bool
	SetList(ctx context.Context, entity, filterKey string, value interface{})
	GetDetail(ctx context.Context, entity, id string, dest interface{}) bool
	SetDetail(ctx context.Context, entity, id string, value interface{})
	InvalidateEntity(ctx context.Context, entity string)
	InvalidateDetail(ctx context.Context, entity, id string)
}

// EventPublisher emits content events after successful mutations.
// Satisfied by *queue.Client; may be left nil when no broker is wired.
type EventPublisher interface {
	PublishContentEvent(event queue.ContentEvent) error
}

// Cache entity keys. These name the invalidation scope of each family.
const (
	CacheSermons       = "sermons"
	CacheDocumentaries = "documentaries"
	CachePresentations = "presentations"
	CacheMaterials     = "materials"
	CachePosts         = "community-posts"
	CacheGroups        = "community-groups"
	CacheUsers         = "users"
)
