package persistent

import (
	"openshelf/internal/entity"
	"openshelf/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(name, description string) (*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(name, description string) (*entity.Category, error) {
	categoryModel := &model.CategoryModel{
		Name:        name,
		Description: description,
	}
	if err := r.db.Create(categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(categoryModel), nil
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) List() ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.Order("name").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}
