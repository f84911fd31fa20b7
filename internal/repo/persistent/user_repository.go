package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	List(filters entity.UserFilters) ([]*entity.UserProfile, int64, error)
	GetByID(id string) (*entity.UserProfile, error)
	GetByIDs(ids []string) ([]*entity.UserProfile, error)
	GetByEmail(email string) (*model.UserProfileModel, error)
	Create(user *model.UserProfileModel) (*entity.UserProfile, error)
	Update(id string, patch map[string]interface{}) (*entity.UserProfile, error)
	Delete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(filters entity.UserFilters) ([]*entity.UserProfile, int64, error) {
	query := r.db.Model(&model.UserProfileModel{})

	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filterActive(filters.Role) {
		query = query.Where("role = ?", filters.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, filters.SortBy, "full_name")
	query = applyPagination(query, filters.Page, filters.PerPage)

	var userModels []model.UserProfileModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entity.UserProfile, len(userModels))
	for i := range userModels {
		users[i] = ToUserProfileEntity(&userModels[i])
	}
	return users, total, nil
}

func (r *userRepository) GetByID(id string) (*entity.UserProfile, error) {
	var userModel model.UserProfileModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserProfileEntity(&userModel), nil
}

func (r *userRepository) GetByIDs(ids []string) ([]*entity.UserProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userModels []model.UserProfileModel
	if err := r.db.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.UserProfile, len(userModels))
	for i := range userModels {
		users[i] = ToUserProfileEntity(&userModels[i])
	}
	return users, nil
}

// GetByEmail returns the raw model because the login flow needs the
// password hash, which the entity deliberately does not carry.
func (r *userRepository) GetByEmail(email string) (*model.UserProfileModel, error) {
	var userModel model.UserProfileModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return &userModel, nil
}

func (r *userRepository) Create(user *model.UserProfileModel) (*entity.UserProfile, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return ToUserProfileEntity(user), nil
}

func (r *userRepository) Update(id string, patch map[string]interface{}) (*entity.UserProfile, error) {
	if err := r.db.Model(&model.UserProfileModel{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *userRepository) Delete(id string) error {
	return r.db.Delete(&model.UserProfileModel{}, "id = ?", id).Error
}
