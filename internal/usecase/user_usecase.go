package usecase

import (
	"context"
	"mime/multipart"
	"time"

	"grace-media/internal/entity"
	"grace-media/internal/model"
	"grace-media/internal/repo/persistent"
	"grace-media/pkg/cache"
	"grace-media/pkg/logger"
	"grace-media/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

const maxAvatarSize = 5 << 20

type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     entity.Role
}

type UpdateUserInput struct {
	Fields entity.UserFields

	AvatarFile *multipart.FileHeader
}

type UserUseCase interface {
	ListUsers(ctx context.Context, filters entity.UserFilters) (*entity.UserList, error)
	GetUser(ctx context.Context, id string) (*entity.UserProfile, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.UserProfile, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput, onProgress storage.ProgressFunc) (*entity.UserProfile, error)
	DeleteUser(ctx context.Context, id string) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	files    FileStore
	cache    ContentCache
	logger   *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	files FileStore,
	contentCache ContentCache,
	log *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		files:    files,
		cache:    contentCache,
		logger:   log,
	}
}

func (uc *userUseCase) ListUsers(ctx context.Context, filters entity.UserFilters) (*entity.UserList, error) {
	filterKey := cache.FilterKey(filters)

	var cached entity.UserList
	if uc.cache.GetList(ctx, CacheUsers, filterKey, &cached) {
		return &cached, nil
	}

	users, total, err := uc.userRepo.List(filters)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	result := &entity.UserList{Users: users, Total: total}
	uc.cache.SetList(ctx, CacheUsers, filterKey, result)
	return result, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return user, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*entity.UserProfile, error) {
	if input.Email == "" {
		return nil, NewValidationError("email is required")
	}
	if len(input.Password) < 8 {
		return nil, NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}

	user, err := uc.userRepo.Create(&model.UserProfileModel{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         string(role),
	})
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheUsers)
	return user, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id string, input UpdateUserInput, onProgress storage.ProgressFunc) (*entity.UserProfile, error) {
	existing, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	patch := userPatch(input.Fields)

	if input.AvatarFile != nil {
		if err := storage.ValidateFile(input.AvatarFile, storage.ValidateOptions{
			MaxSize:      maxAvatarSize,
			AllowedTypes: []string{"image/*", ".jpg", ".jpeg", ".png", ".webp"},
		}); err != nil {
			return nil, NewValidationError("avatar: %v", err)
		}

		if existing.AvatarURL != "" {
			if err := uc.files.DeleteByURL(existing.AvatarURL, storage.BucketAvatars); err != nil {
				uc.logger.Warn("avatar cleanup failed for %s: %v", existing.AvatarURL, err)
			}
		}

		tracker := storage.NewProgressTracker(onProgress)
		url, err := uc.files.Upload(input.AvatarFile, storage.BucketAvatars, "users", tracker.Slot("avatar"))
		if err != nil {
			return nil, &UploadError{Field: "avatar", Err: err}
		}
		patch["avatar_url"] = url
	}

	user, err := uc.userRepo.Update(id, patch)
	if err != nil {
		return nil, &MutationError{Err: err}
	}

	uc.cache.InvalidateEntity(ctx, CacheUsers)
	return user, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return &QueryError{Err: err}
	}

	if err := uc.userRepo.Delete(id); err != nil {
		return &MutationError{Err: err}
	}

	if user.AvatarURL != "" {
		if err := uc.files.DeleteByURL(user.AvatarURL, storage.BucketAvatars); err != nil {
			uc.logger.Warn("avatar cleanup failed for %s: %v", user.AvatarURL, err)
		}
	}

	uc.cache.InvalidateEntity(ctx, CacheUsers)
	return nil
}

func userPatch(fields entity.UserFields) map[string]interface{} {
	patch := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if fields.Email != nil {
		patch["email"] = *fields.Email
	}
	if fields.FullName != nil {
		patch["full_name"] = *fields.FullName
	}
	if fields.Phone != nil {
		patch["phone"] = *fields.Phone
	}
	if fields.Bio != nil {
		patch["bio"] = *fields.Bio
	}
	if fields.Role != nil {
		patch["role"] = string(*fields.Role)
	}
	return patch
}
