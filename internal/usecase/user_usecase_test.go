package usecase

import (
	"context"
	"testing"

	"grace-media/internal/entity"
	"grace-media/internal/model"
	"grace-media/pkg/logger"
	"grace-media/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture(userRepo *MockUserRepository, files *MockFileStore, cacheStub *stubCache) UserUseCase {
	return NewUserUseCase(userRepo, files, cacheStub, logger.New())
}

func TestCreateUserHashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	cacheStub := &stubCache{}
	uc := newUserFixture(userRepo, new(MockFileStore), cacheStub)

	userRepo.On("Create", mock.MatchedBy(func(m *model.UserProfileModel) bool {
		if m.PasswordHash == "secret-password" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("secret-password")) == nil
	})).Return(&entity.UserProfile{ID: "u1", Email: "new@example.com", Role: entity.RoleUser}, nil)

	user, err := uc.CreateUser(context.Background(), CreateUserInput{
		Email:    "new@example.com",
		Password: "secret-password",
		FullName: "New Member",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Contains(t, cacheStub.invalidatedEntities, CacheUsers)
}

func TestCreateUserShortPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newUserFixture(userRepo, new(MockFileStore), &stubCache{})

	_, err := uc.CreateUser(context.Background(), CreateUserInput{
		Email:    "new@example.com",
		Password: "short",
	})

	assert.True(t, IsValidation(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateUserAvatarReplacesOldFile(t *testing.T) {
	userRepo := new(MockUserRepository)
	files := new(MockFileStore)
	uc := newUserFixture(userRepo, files, &stubCache{})

	existing := &entity.UserProfile{ID: "u1", AvatarURL: "https://cdn/avatars/users/old.jpg"}
	userRepo.On("GetByID", "u1").Return(existing, nil)

	avatar := fileHeader("avatar.png", 1024)
	files.On("DeleteByURL", existing.AvatarURL, storage.BucketAvatars).Return(nil)
	files.On("Upload", avatar, storage.BucketAvatars, "users", mock.Anything).
		Return("https://cdn/avatars/users/new.png", nil)
	userRepo.On("Update", "u1", mock.MatchedBy(func(patch map[string]interface{}) bool {
		return patch["avatar_url"] == "https://cdn/avatars/users/new.png"
	})).Return(&entity.UserProfile{ID: "u1", AvatarURL: "https://cdn/avatars/users/new.png"}, nil)

	user, err := uc.UpdateUser(context.Background(), "u1", UpdateUserInput{AvatarFile: avatar}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn/avatars/users/new.png", user.AvatarURL)
	files.AssertExpectations(t)
}

func TestUpdateUserOversizedAvatarRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	files := new(MockFileStore)
	uc := newUserFixture(userRepo, files, &stubCache{})

	userRepo.On("GetByID", "u1").Return(&entity.UserProfile{ID: "u1"}, nil)

	avatar := fileHeader("avatar.png", maxAvatarSize+1)
	_, err := uc.UpdateUser(context.Background(), "u1", UpdateUserInput{AvatarFile: avatar}, nil)

	assert.True(t, IsValidation(err))
	files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUserCleansUpAvatar(t *testing.T) {
	userRepo := new(MockUserRepository)
	files := new(MockFileStore)
	cacheStub := &stubCache{}
	uc := newUserFixture(userRepo, files, cacheStub)

	user := &entity.UserProfile{ID: "u1", AvatarURL: "https://cdn/avatars/users/a.jpg"}
	userRepo.On("GetByID", "u1").Return(user, nil)
	userRepo.On("Delete", "u1").Return(nil)
	files.On("DeleteByURL", user.AvatarURL, storage.BucketAvatars).Return(nil)

	err := uc.DeleteUser(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Contains(t, cacheStub.invalidatedEntities, CacheUsers)
}
