package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	List(filters entity.MaterialFilters) ([]*entity.Material, int64, error)
	GetByID(id string) (*entity.Material, error)
	GetByIDs(ids []string) ([]*entity.Material, error)
	Create(material *entity.Material) error
	Update(id string, patch map[string]interface{}) (*entity.Material, error)
	Delete(id string) error
	DeleteByIDs(ids []string) (int64, error)
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) List(filters entity.MaterialFilters) ([]*entity.Material, int64, error) {
	query := r.db.Model(&model.MaterialModel{})

	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("title ILIKE ? OR author ILIKE ?", pattern, pattern)
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

	var materialModels []model.MaterialModel
	if err := query.Find(&materialModels).Error; err != nil {
		return nil, 0, err
	}

	materials := make([]*entity.Material, len(materialModels))
	for i := range materialModels {
		materials[i] = ToMaterialEntity(&materialModels[i])
	}
	return materials, total, nil
}

func (r *materialRepository) GetByID(id string) (*entity.Material, error) {
	var materialModel model.MaterialModel
	if err := r.db.Where("id = ?", id).First(&materialModel).Error; err != nil {
		return nil, err
	}
	return ToMaterialEntity(&materialModel), nil
}

func (r *materialRepository) GetByIDs(ids []string) ([]*entity.Material, error) {
	var materialModels []model.MaterialModel
	if err := r.db.Where("id IN ?", ids).Find(&materialModels).Error; err != nil {
		return nil, err
	}

	materials := make([]*entity.Material, len(materialModels))
	for i := range materialModels {
		materials[i] = ToMaterialEntity(&materialModels[i])
	}
	return materials, nil
}

func (r *materialRepository) Create(material *entity.Material) error {
	materialModel := ToMaterialModel(material)
	if materialModel.ID == "" {
		materialModel.ID = uuid.New().String()
	}

	if err := r.db.Create(materialModel).Error; err != nil {
		return err
	}

	*material = *ToMaterialEntity(materialModel)
	return nil
}

func (r *materialRepository) Update(id string, patch map[string]interface{}) (*entity.Material, error) {
	if err := r.db.Model(&model.MaterialModel{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *materialRepository) Delete(id string) error {
	return r.db.Delete(&model.MaterialModel{}, "id = ?", id).Error
}

func (r *materialRepository) DeleteByIDs(ids []string) (int64, error) {
	result := r.db.Delete(&model.MaterialModel{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}
