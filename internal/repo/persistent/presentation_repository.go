package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PresentationRepository interface {
	List(filters entity.PresentationFilters) ([]*entity.Presentation, int64, error)
	GetByID(id string) (*entity.Presentation, error)
	GetByIDs(ids []string) ([]*entity.Presentation, error)
	Create(presentation *entity.Presentation) error
	Update(id string, patch map[string]interface{}) (*entity.Presentation, error)
	Delete(id string) error
	DeleteByIDs(ids []string) (int64, error)
}

type presentationRepository struct {
	db *gorm.DB
}

func NewPresentationRepository(db *gorm.DB) PresentationRepository {
	return &presentationRepository{db: db}
}

func (r *presentationRepository) List(filters entity.PresentationFilters) ([]*entity.Presentation, int64, error) {
	query := r.db.Model(&model.PresentationModel{})

	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("title ILIKE ? OR speaker ILIKE ?", pattern, pattern)
	}
	if filterActive(filters.Type) {
		query = query.Where("type = ?", filters.Type)
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

	var presentationModels []model.PresentationModel
	if err := query.Find(&presentationModels).Error; err != nil {
		return nil, 0, err
	}

	presentations := make([]*entity.Presentation, len(presentationModels))
	for i := range presentationModels {
		presentations[i] = ToPresentationEntity(&presentationModels[i])
	}
	return presentations, total, nil
}

func (r *presentationRepository) GetByID(id string) (*entity.Presentation, error) {
	var presentationModel model.PresentationModel
	if err := r.db.Where("id = ?", id).First(&presentationModel).Error; err != nil {
		return nil, err
	}
	return ToPresentationEntity(&presentationModel), nil
}

func (r *presentationRepository) GetByIDs(ids []string) ([]*entity.Presentation, error) {
	var presentationModels []model.PresentationModel
	if err := r.db.Where("id IN ?", ids).Find(&presentationModels).Error; err != nil {
		return nil, err
	}

	presentations := make([]*entity.Presentation, len(presentationModels))
	for i := range presentationModels {
		presentations[i] = ToPresentationEntity(&presentationModels[i])
	}
	return presentations, nil
}

func (r *presentationRepository) Create(presentation *entity.Presentation) error {
	presentationModel := ToPresentationModel(presentation)
	if presentationModel.ID == "" {
		presentationModel.ID = uuid.New().String()
	}

	if err := r.db.Create(presentationModel).Error; err != nil {
		return err
	}

	*presentation = *ToPresentationEntity(presentationModel)
	return nil
}

func (r *presentationRepository) Update(id string, patch map[string]interface{}) (*entity.Presentation, error) {
	if err := r.db.Model(&model.PresentationModel{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *presentationRepository) Delete(id string) error {
	return r.db.Delete(&model.PresentationModel{}, "id = ?", id).Error
}

func (r *presentationRepository) DeleteByIDs(ids []string) (int64, error) {
	result := r.db.Delete(&model.PresentationModel{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}
