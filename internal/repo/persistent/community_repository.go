package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityRepository interface {
	ListPosts(filters entity.PostFilters) ([]*entity.CommunityPost, int64, error)
	GetPostByID(id string) (*entity.CommunityPost, error)
	GetPostsByIDs(ids []string) ([]*entity.CommunityPost, error)
	CreatePost(post *entity.CommunityPost) error
	UpdatePostStatus(id string, status entity.PostStatus) (*entity.CommunityPost, error)
	DeletePost(id string) error
	DeletePostsByIDs(ids []string) (int64, error)

	ListGroups() ([]*entity.CommunityGroup, error)
	GetGroupByID(id string) (*entity.CommunityGroup, error)
	GetGroupsByIDs(ids []string) ([]*entity.CommunityGroup, error)
	CreateGroup(group *entity.CommunityGroup) error
	UpdateGroup(id string, patch map[string]interface{}) (*entity.CommunityGroup, error)
	DeleteGroup(id string) error
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) ListPosts(filters entity.PostFilters) ([]*entity.CommunityPost, int64, error) {
	query := r.db.Model(&model.CommunityPostModel{})

	if filters.Search != "" {
		query = query.Where("content ILIKE ?", likePattern(filters.Search))
	}
	if filters.GroupID != "" {
		query = query.Where("group_id = ?", filters.GroupID)
	}
	if filterActive(filters.Status) {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	query = applyPagination(query, filters.Page, filters.PerPage)

	var postModels []model.CommunityPostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.CommunityPost, len(postModels))
	for i := range postModels {
		posts[i] = ToCommunityPostEntity(&postModels[i])
	}
	return posts, total, nil
}

func (r *communityRepository) GetPostByID(id string) (*entity.CommunityPost, error) {
	var postModel model.CommunityPostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToCommunityPostEntity(&postModel), nil
}

func (r *communityRepository) GetPostsByIDs(ids []string) ([]*entity.CommunityPost, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var postModels []model.CommunityPostModel
	if err := r.db.Where("id IN ?", ids).Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.CommunityPost, len(postModels))
	for i := range postModels {
		posts[i] = ToCommunityPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *communityRepository) CreatePost(post *entity.CommunityPost) error {
	postModel := ToCommunityPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToCommunityPostEntity(postModel)
	return nil
}

func (r *communityRepository) UpdatePostStatus(id string, status entity.PostStatus) (*entity.CommunityPost, error) {
	if err := r.db.Model(&model.CommunityPostModel{}).Where("id = ?", id).Update("status", string(status)).Error; err != nil {
		return nil, err
	}
	return r.GetPostByID(id)
}

func (r *communityRepository) DeletePost(id string) error {
	return r.db.Delete(&model.CommunityPostModel{}, "id = ?", id).Error
}

func (r *communityRepository) DeletePostsByIDs(ids []string) (int64, error) {
	result := r.db.Delete(&model.CommunityPostModel{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

func (r *communityRepository) ListGroups() ([]*entity.CommunityGroup, error) {
	var groupModels []model.CommunityGroupModel
	if err := r.db.Order("created_at DESC").Find(&groupModels).Error; err != nil {
		return nil, err
	}

	groups := make([]*entity.CommunityGroup, len(groupModels))
	for i := range groupModels {
		groups[i] = ToCommunityGroupEntity(&groupModels[i])
	}
	return groups, nil
}

func (r *communityRepository) GetGroupByID(id string) (*entity.CommunityGroup, error) {
	var groupModel model.CommunityGroupModel
	if err := r.db.Where("id = ?", id).First(&groupModel).Error; err != nil {
		return nil, err
	}
	return ToCommunityGroupEntity(&groupModel), nil
}

func (r *communityRepository) GetGroupsByIDs(ids []string) ([]*entity.CommunityGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var groupModels []model.CommunityGroupModel
	if err := r.db.Where("id IN ?", ids).Find(&groupModels).Error; err != nil {
		return nil, err
	}

	groups := make([]*entity.CommunityGroup, len(groupModels))
	for i := range groupModels {
		groups[i] = ToCommunityGroupEntity(&groupModels[i])
	}
	return groups, nil
}

func (r *communityRepository) CreateGroup(group *entity.CommunityGroup) error {
	groupModel := ToCommunityGroupModel(group)
	if groupModel.ID == "" {
		groupModel.ID = uuid.New().String()
	}

	if err := r.db.Create(groupModel).Error; err != nil {
		return err
	}

	*group = *ToCommunityGroupEntity(groupModel)
	return nil
}

func (r *communityRepository) UpdateGroup(id string, patch map[string]interface{}) (*entity.CommunityGroup, error) {
	if err := r.db.Model(&model.CommunityGroupModel{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetGroupByID(id)
}

func (r *communityRepository) DeleteGroup(id string) error {
	return r.db.Delete(&model.CommunityGroupModel{}, "id = ?", id).Error
}
