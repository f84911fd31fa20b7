package usecase

import (
	"context"
	"errors"
	"testing"

	"grace-media/internal/entity"
	"grace-media/pkg/logger"
	"grace-media/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommunityFixture(communityRepo *MockCommunityRepository, userRepo *MockUserRepository, files *MockFileStore, cacheStub *stubCache) CommunityUseCase {
	return NewCommunityUseCase(communityRepo, userRepo, files, cacheStub, nil, logger.New())
}

func TestListPostsMergesAuthorsAndGroups(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	userRepo := new(MockUserRepository)
	uc := newCommunityFixture(communityRepo, userRepo, new(MockFileStore), &stubCache{})

	posts := []*entity.CommunityPost{
		{ID: "p1", UserID: "u1", GroupID: "g1", Content: "first"},
		{ID: "p2", UserID: "u2", Content: "second"},
		{ID: "p3", UserID: "u1", Content: "third"},
	}
	communityRepo.On("ListPosts", mock.Anything).Return(posts, int64(3), nil)

	// Batched lookups: each distinct id appears once.
	userRepo.On("GetByIDs", mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 2
	})).Return([]*entity.UserProfile{
		{ID: "u1", FullName: "Mary Smith", AvatarURL: "https://cdn/avatars/u1.jpg"},
		{ID: "u2", FullName: "James Brown"},
	}, nil)
	communityRepo.On("GetGroupsByIDs", []string{"g1"}).Return([]*entity.CommunityGroup{
		{ID: "g1", Name: "Prayer Warriors"},
	}, nil)

	result, err := uc.ListPosts(context.Background(), entity.PostFilters{Page: 1, PerPage: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, "Mary Smith", result.Posts[0].Author.FullName)
	assert.Equal(t, "Prayer Warriors", result.Posts[0].Group.Name)
	assert.Equal(t, "James Brown", result.Posts[1].Author.FullName)
	assert.Nil(t, result.Posts[1].Group)
	assert.Equal(t, "Mary Smith", result.Posts[2].Author.FullName)
	userRepo.AssertNumberOfCalls(t, "GetByIDs", 1)
}

func TestListPostsEnrichmentFailureDegrades(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	userRepo := new(MockUserRepository)
	uc := newCommunityFixture(communityRepo, userRepo, new(MockFileStore), &stubCache{})

	posts := []*entity.CommunityPost{{ID: "p1", UserID: "u1", Content: "hello"}}
	communityRepo.On("ListPosts", mock.Anything).Return(posts, int64(1), nil)
	userRepo.On("GetByIDs", mock.Anything).Return(nil, errors.New("timeout"))

	result, err := uc.ListPosts(context.Background(), entity.PostFilters{})

	assert.NoError(t, err)
	assert.Len(t, result.Posts, 1)
	assert.Nil(t, result.Posts[0].Author)
}

func TestListPostsAuthorRowMissing(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	userRepo := new(MockUserRepository)
	uc := newCommunityFixture(communityRepo, userRepo, new(MockFileStore), &stubCache{})

	posts := []*entity.CommunityPost{{ID: "p1", UserID: "deleted-user", Content: "orphan"}}
	communityRepo.On("ListPosts", mock.Anything).Return(posts, int64(1), nil)
	userRepo.On("GetByIDs", mock.Anything).Return([]*entity.UserProfile{}, nil)

	result, err := uc.ListPosts(context.Background(), entity.PostFilters{})

	assert.NoError(t, err)
	assert.Nil(t, result.Posts[0].Author)
}

func TestCreatePostWithoutImageSkipsUpload(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	files := new(MockFileStore)
	cacheStub := &stubCache{}
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), files, cacheStub)

	communityRepo.On("CreatePost", mock.MatchedBy(func(p *entity.CommunityPost) bool {
		return p.Content == "hello" && p.Status == entity.PostActive && p.ImageURL == ""
	})).Return(nil)

	post, err := uc.CreatePost(context.Background(), CreatePostInput{UserID: "u1", Content: "hello"}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, post)
	assert.Contains(t, cacheStub.invalidatedEntities, CachePosts)
	files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostEmptyContent(t *testing.T) {
	uc := newCommunityFixture(new(MockCommunityRepository), new(MockUserRepository), new(MockFileStore), &stubCache{})

	_, err := uc.CreatePost(context.Background(), CreatePostInput{UserID: "u1"}, nil)

	assert.True(t, IsValidation(err))
}

func TestUpdatePostStatusRejectsUnknownStatus(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), new(MockFileStore), &stubCache{})

	_, err := uc.UpdatePostStatus(context.Background(), "p1", entity.PostStatus("archived"))

	assert.True(t, IsValidation(err))
	communityRepo.AssertNotCalled(t, "UpdatePostStatus", mock.Anything, mock.Anything)
}

func TestUpdatePostStatusModeration(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	cacheStub := &stubCache{}
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), new(MockFileStore), cacheStub)

	communityRepo.On("UpdatePostStatus", "p1", entity.PostHidden).
		Return(&entity.CommunityPost{ID: "p1", Status: entity.PostHidden}, nil)

	post, err := uc.UpdatePostStatus(context.Background(), "p1", entity.PostHidden)

	assert.NoError(t, err)
	assert.Equal(t, entity.PostHidden, post.Status)
	assert.Contains(t, cacheStub.invalidatedEntities, CachePosts)
}

func TestDeletePostCleansUpImage(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	files := new(MockFileStore)
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), files, &stubCache{})

	post := &entity.CommunityPost{ID: "p1", ImageURL: "https://cdn/community/posts/x.jpg"}
	communityRepo.On("GetPostByID", "p1").Return(post, nil)
	communityRepo.On("DeletePost", "p1").Return(nil)
	files.On("DeleteByURL", post.ImageURL, storage.BucketCommunity).Return(nil)

	err := uc.DeletePost(context.Background(), "p1")

	assert.NoError(t, err)
	files.AssertExpectations(t)
}

func TestBulkDeletePostsCountsRemovedRows(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	files := new(MockFileStore)
	cacheStub := &stubCache{}
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), files, cacheStub)

	// One batched lookup covers all ids, then a single IN delete.
	communityRepo.On("GetPostsByIDs", []string{"p1", "p2"}).Return([]*entity.CommunityPost{
		{ID: "p1", ImageURL: "https://cdn/community/posts/a.jpg"},
		{ID: "p2"},
	}, nil)
	communityRepo.On("DeletePostsByIDs", []string{"p1", "p2"}).Return(int64(2), nil)
	files.On("DeleteByURL", "https://cdn/community/posts/a.jpg", storage.BucketCommunity).Return(nil)

	deleted, err := uc.BulkDeletePosts(context.Background(), []string{"p1", "p2"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Contains(t, cacheStub.invalidatedEntities, CachePosts)
	communityRepo.AssertNumberOfCalls(t, "GetPostsByIDs", 1)
	communityRepo.AssertNotCalled(t, "GetPostByID", mock.Anything)
}

func TestBulkDeletePostsLookupFailureAborts(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	files := new(MockFileStore)
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), files, &stubCache{})

	communityRepo.On("GetPostsByIDs", []string{"p1"}).Return(nil, errors.New("connection refused"))

	_, err := uc.BulkDeletePosts(context.Background(), []string{"p1"})

	var qe *QueryError
	assert.ErrorAs(t, err, &qe)
	communityRepo.AssertNotCalled(t, "DeletePostsByIDs", mock.Anything)
}

func TestListGroupsResolvesCreators(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	userRepo := new(MockUserRepository)
	uc := newCommunityFixture(communityRepo, userRepo, new(MockFileStore), &stubCache{})

	groups := []*entity.CommunityGroup{{ID: "g1", Name: "Youth", CreatedBy: "u1"}}
	communityRepo.On("ListGroups").Return(groups, nil)
	userRepo.On("GetByIDs", []string{"u1"}).
		Return([]*entity.UserProfile{{ID: "u1", FullName: "Ruth Adams"}}, nil)

	result, err := uc.ListGroups(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Ruth Adams", result[0].Creator.FullName)
}

func TestDeleteGroupInvalidatesPostsToo(t *testing.T) {
	communityRepo := new(MockCommunityRepository)
	files := new(MockFileStore)
	cacheStub := &stubCache{}
	uc := newCommunityFixture(communityRepo, new(MockUserRepository), files, cacheStub)

	group := &entity.CommunityGroup{ID: "g1", Name: "Youth", ImageURL: "https://cdn/community/groups/g.jpg"}
	communityRepo.On("GetGroupByID", "g1").Return(group, nil)
	communityRepo.On("DeleteGroup", "g1").Return(nil)
	files.On("DeleteByURL", group.ImageURL, storage.BucketCommunity).Return(nil)

	err := uc.DeleteGroup(context.Background(), "g1")

	assert.NoError(t, err)
	assert.Contains(t, cacheStub.invalidatedEntities, CacheGroups)
	assert.Contains(t, cacheStub.invalidatedEntities, CachePosts)
}
