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

const maxCommunityImageSize = 10 << 20

type CreatePostInput struct {
	UserID  string
	GroupID string
	Content string

	ImageFile *multipart.FileHeader
}

type CreateGroupInput struct {
	Name        string
	Description string
	CreatedBy   string

	ImageFile *multipart.FileHeader
}

type UpdateGroupInput struct {
	Name        *string
	Description *string

	ImageFile *multipart.FileHeader
}

type CommunityUseCase interface {
	ListPosts(ctx context.Context, filters entity.PostFilters) (*entity.PostList, error)
	GetPost(ctx context.Context, id string) (*entity.CommunityPost, error)
	CreatePost(ctx context.Context, input CreatePostInput, onProgress storage.ProgressFunc) (*entity.CommunityPost, error)
	UpdatePostStatus(ctx context.Context, id string, status entity.PostStatus) (*entity.CommunityPost, error)
	DeletePost(ctx context.Context, id string) error
	BulkDeletePosts(ctx context.Context, ids []string) (int64, error)

	ListGroups(ctx context.Context) ([]*entity.CommunityGroup, error)
	GetGroup(ctx context.Context, id string) (*entity.CommunityGroup, error)
	CreateGroup(ctx context.Context, input CreateGroupInput, onProgress storage.ProgressFunc) (*entity.CommunityGroup, error)
	UpdateGroup(ctx context.Context, id string, input UpdateGroupInput, onProgress storage.ProgressFunc) (*entity.CommunityGroup, error)
	DeleteGroup(ctx context.Context, id string) error
}

type communityUseCase struct {
	communityRepo persistent.CommunityRepository
	userRepo      persistent.UserRepository
	files         FileStore
	cache         ContentCache
	events        EventPublisher
	logger        *logger.Logger
}

func NewCommunityUseCase(
	communityRepo persistent.CommunityRepository,
	userRepo persistent.UserRepository,
	files FileStore,
	contentCache ContentCache,
	events EventPublisher,
	log *logger.Logger,
) CommunityUseCase {
	return &communityUseCase{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		files:         files,
		cache:         contentCache,
		events:        events,
		logger:        log,
	}
}

// ListPosts fetches the page of posts, then resolves authors and groups
// in two batched lookups and merges them in. A failed lookup degrades to
// posts without the enrichment rather than failing the listing.
func (uc *communityUseCase) ListPosts(ctx context.Context, filters entity.PostFilters) (*entity.PostList, error) {
	filterKey := cache.FilterKey(filters)

	var cached entity.PostList
	if uc.cache.GetList(ctx, CachePosts, filterKey, &cached) {
		return &cached, nil
	}

	posts, total, err := uc.communityRepo.ListPosts(filters)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.enrichPosts(posts)

	result := &entity.PostList{Posts: posts, Total: total}
	uc.cache.SetList(ctx, CachePosts, filterKey, result)
	return result, nil
}

func (uc *communityUseCase) GetPost(ctx context.Context, id string) (*entity.CommunityPost, error) {
	post, err := uc.communityRepo.GetPostByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.enrichPosts([]*entity.CommunityPost{post})
	return post, nil
}

func (uc *communityUseCase) CreatePost(ctx context.Context, input CreatePostInput, onProgress storage.ProgressFunc) (*entity.CommunityPost, error) {
	if input.Content == "" {
		return nil, NewValidationError("post content is required")
	}

	var imageURL string
	if input.ImageFile != nil {
		if err := storage.ValidateFile(input.ImageFile, storage.ValidateOptions{
			MaxSize:      maxCommunityImageSize,
			AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp", ".gif"},
		}); err != nil {
			return nil, NewValidationError("image: %v", err)
		}

		tracker := storage.NewProgressTracker(onProgress)
		url, err := uc.files.Upload(input.ImageFile, storage.BucketCommunity, "posts", tracker.Slot("image"))
		if err != nil {
			return nil, &UploadError{Field: "image", Err: err}
		}
		imageURL = url
	}

	post := &entity.CommunityPost{
		UserID:   input.UserID,
		GroupID:  input.GroupID,
		Content:  input.Content,
		ImageURL: imageURL,
		Status:   entity.PostActive,
	}

	if err := uc.communityRepo.CreatePost(post); err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CachePosts)
	uc.publishEvent("created", "community_post", post.ID, "")

	return post, nil
}

func (uc *communityUseCase) UpdatePostStatus(ctx context.Context, id string, status entity.PostStatus) (*entity.CommunityPost, error) {
	switch status {
	case entity.PostActive, entity.PostFlagged, entity.PostHidden:
	default:
		return nil, NewValidationError("invalid post status %q", status)
	}

	post, err := uc.communityRepo.UpdatePostStatus(id, status)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CachePosts)
	return post, nil
}

func (uc *communityUseCase) DeletePost(ctx context.Context, id string) error {
	post, err := uc.communityRepo.GetPostByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.communityRepo.DeletePost(id); err != nil {
		return &MutationError{Err: err}
	}

	uc.cleanupFile(post.ImageURL)
	uc.cache.InvalidateEntity(ctx, CachePosts)
	return nil
}

func (uc *communityUseCase) BulkDeletePosts(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("no ids given")
	}

	posts, err := uc.communityRepo.GetPostsByIDs(ids)
	if err != nil {
		return 0, &QueryError{Err: err}
	}

	deleted, err := uc.communityRepo.DeletePostsByIDs(ids)
	if err != nil {
		return 0, &MutationError{Err: err}
	}

	for _, post := range posts {
		uc.cleanupFile(post.ImageURL)
	}

	uc.cache.InvalidateEntity(ctx, CachePosts)
	return deleted, nil
}

func (uc *communityUseCase) ListGroups(ctx context.Context) ([]*entity.CommunityGroup, error) {
	groups, err := uc.communityRepo.ListGroups()
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.enrichGroups(groups)
	return groups, nil
}

func (uc *communityUseCase) GetGroup(ctx context.Context, id string) (*entity.CommunityGroup, error) {
	group, err := uc.communityRepo.GetGroupByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	uc.enrichGroups([]*entity.CommunityGroup{group})
	return group, nil
}

func (uc *communityUseCase) CreateGroup(ctx context.Context, input CreateGroupInput, onProgress storage.ProgressFunc) (*entity.CommunityGroup, error) {
	if input.Name == "" {
		return nil, NewValidationError("group name is required")
	}

	var imageURL string
	if input.ImageFile != nil {
		if err := storage.ValidateFile(input.ImageFile, storage.ValidateOptions{
			MaxSize:      maxCommunityImageSize,
			AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
		}); err != nil {
			return nil, NewValidationError("image: %v", err)
		}

		tracker := storage.NewProgressTracker(onProgress)
		url, err := uc.files.Upload(input.ImageFile, storage.BucketCommunity, "groups", tracker.Slot("image"))
		if err != nil {
			return nil, &UploadError{Field: "image", Err: err}
		}
		imageURL = url
	}

	group := &entity.CommunityGroup{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    imageURL,
		CreatedBy:   input.CreatedBy,
	}

	if err := uc.communityRepo.CreateGroup(group); err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheGroups)
	uc.publishEvent("created", "community_group", group.ID, group.Name)

	return group, nil
}

func (uc *communityUseCase) UpdateGroup(ctx context.Context, id string, input UpdateGroupInput, onProgress storage.ProgressFunc) (*entity.CommunityGroup, error) {
	existing, err := uc.communityRepo.GetGroupByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	patch := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}

	if input.ImageFile != nil {
		if err := storage.ValidateFile(input.ImageFile, storage.ValidateOptions{
			MaxSize:      maxCommunityImageSize,
			AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
		}); err != nil {
			return nil, NewValidationError("image: %v", err)
		}

		uc.cleanupFile(existing.ImageURL)

		tracker := storage.NewProgressTracker(onProgress)
		url, err := uc.files.Upload(input.ImageFile, storage.BucketCommunity, "groups", tracker.Slot("image"))
		if err != nil {
			return nil, &UploadError{Field: "image", Err: err}
		}
		patch["image_url"] = url
	}

	group, err := uc.communityRepo.UpdateGroup(id, patch)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheGroups)
	uc.publishEvent("updated", "community_group", group.ID, group.Name)

	return group, nil
}

func (uc *communityUseCase) DeleteGroup(ctx context.Context, id string) error {
	group, err := uc.communityRepo.GetGroupByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.communityRepo.DeleteGroup(id); err != nil {
		return &MutationError{Err: err}
	}

	uc.cleanupFile(group.ImageURL)
	uc.cache.InvalidateEntity(ctx, CacheGroups)
	uc.cache.InvalidateEntity(ctx, CachePosts)
	uc.publishEvent("deleted", "community_group", id, group.Name)

	return nil
}

func (uc *communityUseCase) enrichPosts(posts []*entity.CommunityPost) {
	if len(posts) == 0 {
		return
	}

	userIDSet := make(map[string]struct{})
	groupIDSet := make(map[string]struct{})
	for _, post := range posts {
		if post.UserID != "" {
			userIDSet[post.UserID] = struct{}{}
		}
		if post.GroupID != "" {
			groupIDSet[post.GroupID] = struct{}{}
		}
	}

	authors := make(map[string]*entity.PostAuthor)
	if len(userIDSet) > 0 {
		ids := make([]string, 0, len(userIDSet))
		for id := range userIDSet {
			ids = append(ids, id)
		}
		users, err := uc.userRepo.GetByIDs(ids)
		if err != nil {
			uc.logger.Warn("post author lookup failed: %v", err)
		}
		for _, user := range users {
			authors[user.ID] = &entity.PostAuthor{
				ID:        user.ID,
				FullName:  user.FullName,
				AvatarURL: user.AvatarURL,
			}
		}
	}

	groups := make(map[string]*entity.GroupRef)
	if len(groupIDSet) > 0 {
		ids := make([]string, 0, len(groupIDSet))
		for id := range groupIDSet {
			ids = append(ids, id)
		}
		groupList, err := uc.communityRepo.GetGroupsByIDs(ids)
		if err != nil {
			uc.logger.Warn("post group lookup failed: %v", err)
		}
		for _, group := range groupList {
			groups[group.ID] = &entity.GroupRef{ID: group.ID, Name: group.Name}
		}
	}

	for _, post := range posts {
		post.Author = authors[post.UserID]
		post.Group = groups[post.GroupID]
	}
}

func (uc *communityUseCase) enrichGroups(groups []*entity.CommunityGroup) {
	if len(groups) == 0 {
		return
	}

	creatorIDSet := make(map[string]struct{})
	for _, group := range groups {
		if group.CreatedBy != "" {
			creatorIDSet[group.CreatedBy] = struct{}{}
		}
	}
	if len(creatorIDSet) == 0 {
		return
	}

	ids := make([]string, 0, len(creatorIDSet))
	for id := range creatorIDSet {
		ids = append(ids, id)
	}
	users, err := uc.userRepo.GetByIDs(ids)
	if err != nil {
		uc.logger.Warn("group creator lookup failed: %v", err)
		return
	}

	creators := make(map[string]*entity.PostAuthor, len(users))
	for _, user := range users {
		creators[user.ID] = &entity.PostAuthor{
			ID:        user.ID,
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
		}
	}
	for _, group := range groups {
		group.Creator = creators[group.CreatedBy]
	}
}

func (uc *communityUseCase) cleanupFile(url string) {
	if url == "" {
		return
	}
	if err := uc.files.DeleteByURL(url, storage.BucketCommunity); err != nil {
		uc.logger.Warn("file cleanup failed for %s: %v", url, err)
	}
}

func (uc *communityUseCase) publishEvent(action, entityType, id, title string) {
	if uc.events == nil {
		return
	}
	err := uc.events.PublishContentEvent(queue.ContentEvent{
		Action:     action,
		EntityType: entityType,
		EntityID:   id,
		Title:      title,
	})
	if err != nil {
		uc.logger.Warn("failed to publish community event: %v", err)
	}
}
