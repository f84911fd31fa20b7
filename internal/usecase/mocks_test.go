package usecase

import (
	"context"
	"mime/multipart"

	"grace-media/internal/entity"
	"grace-media/internal/model"
	"grace-media/internal/repo/persistent"
	"grace-media/pkg/queue"

	"github.com/stretchr/testify/mock"
)

type MockSermonRepository struct {
	mock.Mock
}

var _ persistent.SermonRepository = (*MockSermonRepository)(nil)

func (m *MockSermonRepository) List(filters entity.SermonFilters) ([]*entity.Sermon, int64, error) {
	args := m.Called(filters)
	var sermons []*entity.Sermon
	if args.Get(0) != nil {
		sermons = args.Get(0).([]*entity.Sermon)
	}
	return sermons, args.Get(1).(int64), args.Error(2)
}

func (m *MockSermonRepository) GetByID(id string) (*entity.Sermon, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sermon), args.Error(1)
}

func (m *MockSermonRepository) GetByIDs(ids []string) ([]*entity.Sermon, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Sermon), args.Error(1)
}

func (m *MockSermonRepository) Create(sermon *entity.Sermon) error {
	args := m.Called(sermon)
	return args.Error(0)
}

func (m *MockSermonRepository) Update(id string, patch map[string]interface{}) (*entity.Sermon, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sermon), args.Error(1)
}

func (m *MockSermonRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSermonRepository) DeleteByIDs(ids []string) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSermonRepository) UpdateStatusByIDs(ids []string, status entity.Status) error {
	args := m.Called(ids, status)
	return args.Error(0)
}

type MockDocumentaryRepository struct {
	mock.Mock
}

var _ persistent.DocumentaryRepository = (*MockDocumentaryRepository)(nil)

func (m *MockDocumentaryRepository) List(filters entity.DocumentaryFilters) ([]*entity.Documentary, int64, error) {
	args := m.Called(filters)
	var docs []*entity.Documentary
	if args.Get(0) != nil {
		docs = args.Get(0).([]*entity.Documentary)
	}
	return docs, args.Get(1).(int64), args.Error(2)
}

func (m *MockDocumentaryRepository) GetByID(id string) (*entity.Documentary, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Documentary), args.Error(1)
}

func (m *MockDocumentaryRepository) GetByIDs(ids []string) ([]*entity.Documentary, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Documentary), args.Error(1)
}

func (m *MockDocumentaryRepository) Create(doc *entity.Documentary) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockDocumentaryRepository) Update(id string, patch map[string]interface{}) (*entity.Documentary, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Documentary), args.Error(1)
}

func (m *MockDocumentaryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDocumentaryRepository) DeleteByIDs(ids []string) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockPresentationRepository struct {
	mock.Mock
}

var _ persistent.PresentationRepository = (*MockPresentationRepository)(nil)

func (m *MockPresentationRepository) List(filters entity.PresentationFilters) ([]*entity.Presentation, int64, error) {
	args := m.Called(filters)
	var presentations []*entity.Presentation
	if args.Get(0) != nil {
		presentations = args.Get(0).([]*entity.Presentation)
	}
	return presentations, args.Get(1).(int64), args.Error(2)
}

func (m *MockPresentationRepository) GetByID(id string) (*entity.Presentation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Presentation), args.Error(1)
}

func (m *MockPresentationRepository) GetByIDs(ids []string) ([]*entity.Presentation, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Presentation), args.Error(1)
}

func (m *MockPresentationRepository) Create(presentation *entity.Presentation) error {
	args := m.Called(presentation)
	return args.Error(0)
}

func (m *MockPresentationRepository) Update(id string, patch map[string]interface{}) (*entity.Presentation, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Presentation), args.Error(1)
}

func (m *MockPresentationRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPresentationRepository) DeleteByIDs(ids []string) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockMaterialRepository struct {
	mock.Mock
}

var _ persistent.MaterialRepository = (*MockMaterialRepository)(nil)

func (m *MockMaterialRepository) List(filters entity.MaterialFilters) ([]*entity.Material, int64, error) {
	args := m.Called(filters)
	var materials []*entity.Material
	if args.Get(0) != nil {
		materials = args.Get(0).([]*entity.Material)
	}
	return materials, args.Get(1).(int64), args.Error(2)
}

func (m *MockMaterialRepository) GetByID(id string) (*entity.Material, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetByIDs(ids []string) ([]*entity.Material, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Material), args.Error(1)
}

func (m *MockMaterialRepository) Create(material *entity.Material) error {
	args := m.Called(material)
	return args.Error(0)
}

func (m *MockMaterialRepository) Update(id string, patch map[string]interface{}) (*entity.Material, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Material), args.Error(1)
}

func (m *MockMaterialRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMaterialRepository) DeleteByIDs(ids []string) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommunityRepository struct {
	mock.Mock
}

var _ persistent.CommunityRepository = (*MockCommunityRepository)(nil)

func (m *MockCommunityRepository) ListPosts(filters entity.PostFilters) ([]*entity.CommunityPost, int64, error) {
	args := m.Called(filters)
	var posts []*entity.CommunityPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]*entity.CommunityPost)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommunityRepository) GetPostByID(id string) (*entity.CommunityPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) GetPostsByIDs(ids []string) ([]*entity.CommunityPost, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) CreatePost(post *entity.CommunityPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockCommunityRepository) UpdatePostStatus(id string, status entity.PostStatus) (*entity.CommunityPost, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommunityPost), args.Error(1)
}

func (m *MockCommunityRepository) DeletePost(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommunityRepository) DeletePostsByIDs(ids []string) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) ListGroups() ([]*entity.CommunityGroup, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommunityGroup), args.Error(1)
}

func (m *MockCommunityRepository) GetGroupByID(id string) (*entity.CommunityGroup, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommunityGroup), args.Error(1)
}

func (m *MockCommunityRepository) GetGroupsByIDs(ids []string) ([]*entity.CommunityGroup, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommunityGroup), args.Error(1)
}

func (m *MockCommunityRepository) CreateGroup(group *entity.CommunityGroup) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockCommunityRepository) UpdateGroup(id string, patch map[string]interface{}) (*entity.CommunityGroup, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommunityGroup), args.Error(1)
}

func (m *MockCommunityRepository) DeleteGroup(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) List(filters entity.UserFilters) ([]*entity.UserProfile, int64, error) {
	args := m.Called(filters)
	var users []*entity.UserProfile
	if args.Get(0) != nil {
		users = args.Get(0).([]*entity.UserProfile)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) GetByID(id string) (*entity.UserProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ids []string) ([]*entity.UserProfile, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*model.UserProfileModel, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfileModel), args.Error(1)
}

func (m *MockUserRepository) Create(user *model.UserProfileModel) (*entity.UserProfile, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Update(id string, patch map[string]interface{}) (*entity.UserProfile, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockFileStore struct {
	mock.Mock
}

var _ FileStore = (*MockFileStore)(nil)

func (m *MockFileStore) Upload(fh *multipart.FileHeader, bucket, folder string, onProgress func(int)) (string, error) {
	args := m.Called(fh, bucket, folder, onProgress)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) DeleteByURL(url, bucket string) error {
	args := m.Called(url, bucket)
	return args.Error(0)
}

// stubCache is an always-miss cache that records invalidations. The
// usecases only care that the right scopes get flushed.
type stubCache struct {
	invalidatedEntities []string
	invalidatedDetails  []string
	listsSet            int
}

var _ ContentCache = (*stubCache)(nil)

func (c *stubCache) GetList(ctx context.Context, entity, filterKey string, dest interface{}) bool {
	return false
}

func (c *stubCache) SetList(ctx context.Context, entity, filterKey string, value interface{}) {
	c.listsSet++
}

func (c *stubCache) GetDetail(ctx context.Context, entity, id string, dest interface{}) bool {
	return false
}

func (c *stubCache) SetDetail(ctx context.Context, entity, id string, value interface{}) {}

func (c *stubCache) InvalidateEntity(ctx context.Context, entity string) {
	c.invalidatedEntities = append(c.invalidatedEntities, entity)
}

func (c *stubCache) InvalidateDetail(ctx context.Context, entity, id string) {
	c.invalidatedDetails = append(c.invalidatedDetails, entity+":"+id)
}

type MockEventPublisher struct {
	mock.Mock
}

var _ EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishContentEvent(event queue.ContentEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
