package persistent

import (
	"openshelf/internal/entity"
	"openshelf/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkFilter narrows catalog queries. Zero values mean "no filter".
type WorkFilter struct {
	Type       entity.WorkType
	CategoryID string
	Search     string
}

type WorkRepository interface {
	Create(work *entity.Work, categoryIDs []string) error
	GetByID(id string) (*entity.Work, error)
	ListApproved(filter WorkFilter) ([]*entity.Work, error)
	ListPending() ([]*entity.Work, error)
	ListBySubmitter(userID string) ([]*entity.Work, error)
	Update(work *entity.Work) error
	ReplaceCategories(workID string, categoryIDs []string) error
	IncrementViews(id string) error
	IncrementDownloads(id string) error
	CountByStatus(status entity.WorkStatus) (int64, error)
}

type workRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) Create(work *entity.Work, categoryIDs []string) error {
	workModel := ToWorkModel(work)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workModel).Error; err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			join := &model.WorkCategoryModel{WorkID: workModel.ID, CategoryID: categoryID}
			if err := tx.Create(join).Error; err != nil {
				return err
			}
		}

		*work = *ToWorkEntity(workModel)
		return nil
	})
}

func (r *workRepository) GetByID(id string) (*entity.Work, error) {
	var workModel model.WorkModel
	if err := r.db.Where("id = ?", id).First(&workModel).Error; err != nil {
		return nil, err
	}

	work := ToWorkEntity(&workModel)
	categories, err := r.categoriesFor(id)
	if err != nil {
		return nil, err
	}
	work.Categories = categories

	return work, nil
}

func (r *workRepository) ListApproved(filter WorkFilter) ([]*entity.Work, error) {
	query := r.db.Model(&model.WorkModel{}).
		Where("works.status = ?", string(entity.StatusApproved)).
		Order("works.created_at DESC")

	if filter.Type != "" {
		query = query.Where("works.type = ?", string(filter.Type))
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("works.title ILIKE ? OR works.author ILIKE ?", pattern, pattern)
	}

	if filter.CategoryID != "" {
		query = query.
			Joins("INNER JOIN work_categories ON work_categories.work_id = works.id").
			Where("work_categories.category_id = ?", filter.CategoryID)
	}

	var workModels []model.WorkModel
	if err := query.Find(&workModels).Error; err != nil {
		return nil, err
	}

	return r.withCategories(workModels)
}

func (r *workRepository) ListPending() ([]*entity.Work, error) {
	// Oldest first: the moderation queue is FIFO.
	var workModels []model.WorkModel
	err := r.db.Where("status = ?", string(entity.StatusPending)).
		Order("created_at ASC").
		Find(&workModels).Error
	if err != nil {
		return nil, err
	}

	return r.withCategories(workModels)
}

func (r *workRepository) ListBySubmitter(userID string) ([]*entity.Work, error) {
	var workModels []model.WorkModel
	err := r.db.Where("submitted_by = ?", userID).
		Order("created_at DESC").
		Find(&workModels).Error
	if err != nil {
		return nil, err
	}

	return r.withCategories(workModels)
}

func (r *workRepository) Update(work *entity.Work) error {
	workModel := ToWorkModel(work)
	return r.db.Save(workModel).Error
}

// ReplaceCategories applies replace-all semantics: existing associations are
// deleted and the new set inserted, all in one transaction.
func (r *workRepository) ReplaceCategories(workID string, categoryIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_id = ?", workID).Delete(&model.WorkCategoryModel{}).Error; err != nil {
			return err
		}

		for _, categoryID := range categoryIDs {
			join := &model.WorkCategoryModel{WorkID: workID, CategoryID: categoryID}
			if err := tx.Create(join).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *workRepository) IncrementViews(id string) error {
	return r.db.Model(&model.WorkModel{}).Where("id = ?", id).
		UpdateColumn("views_count", clause.Expr{SQL: "views_count + ?", Vars: []interface{}{1}}).Error
}

func (r *workRepository) IncrementDownloads(id string) error {
	return r.db.Model(&model.WorkModel{}).Where("id = ?", id).
		UpdateColumn("downloads_count", clause.Expr{SQL: "downloads_count + ?", Vars: []interface{}{1}}).Error
}

func (r *workRepository) CountByStatus(status entity.WorkStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.WorkModel{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

func (r *workRepository) categoriesFor(workID string) ([]entity.Category, error) {
	var categoryModels []model.CategoryModel
	err := r.db.Model(&model.CategoryModel{}).
		Joins("INNER JOIN work_categories ON work_categories.category_id = categories.id").
		Where("work_categories.work_id = ?", workID).
		Order("categories.name").
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}

	categories := make([]entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = *ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *workRepository) withCategories(workModels []model.WorkModel) ([]*entity.Work, error) {
	works := make([]*entity.Work, len(workModels))
	for i := range workModels {
		works[i] = ToWorkEntity(&workModels[i])
		categories, err := r.categoriesFor(workModels[i].ID)
		if err != nil {
			return nil, err
		}
		works[i].Categories = categories
	}
	return works, nil
}
