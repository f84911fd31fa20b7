package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SermonRepository interface {
	List(filters entity.SermonFilters) ([]*entity.Sermon, int64, error)
	GetByID(id string) (*entity.Sermon, error)
	GetByIDs(ids []string) ([]*entity.Sermon, error)
	Create(sermon *entity.Sermon) error
	Update(id string, patch map[string]interface{}) (*entity.Sermon, error)
	Delete(id string) error
	DeleteByIDs(ids []string) (int64, error)
	UpdateStatusByIDs(ids []string, status entity.Status) error
}

type sermonRepository struct {
	db *gorm.DB
}

func NewSermonRepository(db *gorm.DB) SermonRepository {
	return &sermonRepository{db: db}
}

func (r *sermonRepository) List(filters entity.SermonFilters) ([]*entity.Sermon, int64, error) {
	query := r.db.Model(&model.SermonModel{})

	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("title ILIKE ? OR speaker ILIKE ?", pattern, pattern)
	}
	if filterActive(filters.Status) {
		query = query.Where("status = ?", filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, filters.SortBy, "title")
	query = applyPagination(query, filters.Page, filters.PerPage)

	var sermonModels []model.SermonModel
	if err := query.Find(&sermonModels).Error; err != nil {
		return nil, 0, err
	}

	sermons := make([]*entity.Sermon, len(sermonModels))
	for i := range sermonModels {
		sermons[i] = ToSermonEntity(&sermonModels[i])
	}
	return sermons, total, nil
}

func (r *sermonRepository) GetByID(id string) (*entity.Sermon, error) {
	var sermonModel model.SermonModel
	if err := r.db.Where("id = ?", id).First(&sermonModel).Error; err != nil {
		return nil, err
	}
	return ToSermonEntity(&sermonModel), nil
}

func (r *sermonRepository) GetByIDs(ids []string) ([]*entity.Sermon, error) {
	var sermonModels []model.SermonModel
	if err := r.db.Where("id IN ?", ids).Find(&sermonModels).Error; err != nil {
		return nil, err
	}

	sermons := make([]*entity.Sermon, len(sermonModels))
	for i := range sermonModels {
		sermons[i] = ToSermonEntity(&sermonModels[i])
	}
	return sermons, nil
}

func (r *sermonRepository) Create(sermon *entity.Sermon) error {
	sermonModel := ToSermonModel(sermon)
	if sermonModel.ID == "" {
		sermonModel.ID = uuid.New().String()
	}

	if err := r.db.Create(sermonModel).Error; err != nil {
		return err
	}

	*sermon = *ToSermonEntity(sermonModel)
	return nil
}

func (r *sermonRepository) Update(id string, patch map[string]interface{}) (*entity.Sermon, error) {
	if err := r.db.Model(&model.SermonModel{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *sermonRepository) Delete(id string) error {
	return r.db.Delete(&model.SermonModel{}, "id = ?", id).Error
}

func (r *sermonRepository) DeleteByIDs(ids []string) (int64, error) {
	result := r.db.Delete(&model.SermonModel{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

func (r *sermonRepository) UpdateStatusByIDs(ids []string, status entity.Status) error {
	return r.db.Model(&model.SermonModel{}).Where("id IN ?", ids).Update("status", string(status)).Error
}
