package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentaryRepository interface {
	List(filters entity.DocumentaryFilters) ([]*entity.Documentary, int64, error)
	GetByID(id string) (*entity.Documentary, error)
	GetByIDs(ids []string) ([]*entity.Documentary, error)
	Create(documentary *entity.Documentary) error
	Update(id string, patch map[string]interface{}) (*entity.Documentary, error)
	Delete(id string) error
	DeleteByIDs(ids []string) (int64, error)
}

type documentaryRepository struct {
	db *gorm.DB
}

func NewDocumentaryRepository(db *gorm.DB) DocumentaryRepository {
	return &documentaryRepository{db: db}
}

func (r *documentaryRepository) List(filters entity.DocumentaryFilters) ([]*entity.Documentary, int64, error) {
	query := r.db.Model(&model.DocumentaryModel{})

	if filters.Search != "" {
		query = query.Where("title ILIKE ?", likePattern(filters.Search))
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

	var documentaryModels []model.DocumentaryModel
	if err := query.Find(&documentaryModels).Error; err != nil {
		return nil, 0, err
	}

	documentaries := make([]*entity.Documentary, len(documentaryModels))
	for i := range documentaryModels {
		documentaries[i] = ToDocumentaryEntity(&documentaryModels[i])
	}
	return documentaries, total, nil
}

func (r *documentaryRepository) GetByID(id string) (*entity.Documentary, error) {
	var documentaryModel model.DocumentaryModel
	if err := r.db.Where("id = ?", id).First(&documentaryModel).Error; err != nil {
		return nil, err
	}
	return ToDocumentaryEntity(&documentaryModel), nil
}

func (r *documentaryRepository) GetByIDs(ids []string) ([]*entity.Documentary, error) {
	var documentaryModels []model.DocumentaryModel
	if err := r.db.Where("id IN ?", ids).Find(&documentaryModels).Error; err != nil {
		return nil, err
	}

	documentaries := make([]*entity.Documentary, len(documentaryModels))
	for i := range documentaryModels {
		documentaries[i] = ToDocumentaryEntity(&documentaryModels[i])
	}
	return documentaries, nil
}

func (r *documentaryRepository) Create(documentary *entity.Documentary) error {
	documentaryModel := ToDocumentaryModel(documentary)
	if documentaryModel.ID == "" {
		documentaryModel.ID = uuid.New().String()
	}

	if err := r.db.Create(documentaryModel).Error; err != nil {
		return err
	}

	*documentary = *ToDocumentaryEntity(documentaryModel)
	return nil
}

func (r *documentaryRepository) Update(id string, patch map[string]interface{}) (*entity.Documentary, error) {
	if err := r.db.Model(&model.DocumentaryModel{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *documentaryRepository) Delete(id string) error {
	return r.db.Delete(&model.DocumentaryModel{}, "id = ?", id).Error
}

func (r *documentaryRepository) DeleteByIDs(ids []string) (int64, error) {
	result := r.db.Delete(&model.DocumentaryModel{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}
