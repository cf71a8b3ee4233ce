package persistent

import (
	"openshelf/internal/entity"
	"openshelf/internal/model"

	"gorm.io/gorm"
)

type BorrowRepository interface {
	Create(borrow *entity.Borrow) error
	GetByID(id string) (*entity.Borrow, error)
	GetActive(userID, workID string) (*entity.Borrow, error)
	ListByUser(userID string, activeOnly bool) ([]*entity.Borrow, error)
	Update(borrow *entity.Borrow) error
	CountActive() (int64, error)
}

type borrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) Create(borrow *entity.Borrow) error {
	borrowModel := ToBorrowModel(borrow)
	if err := r.db.Create(borrowModel).Error; err != nil {
		return err
	}
	*borrow = *ToBorrowEntity(borrowModel)
	return nil
}

func (r *borrowRepository) GetByID(id string) (*entity.Borrow, error) {
	var borrowModel model.BorrowModel
	if err := r.db.Where("id = ?", id).First(&borrowModel).Error; err != nil {
		return nil, err
	}
	return ToBorrowEntity(&borrowModel), nil
}

func (r *borrowRepository) GetActive(userID, workID string) (*entity.Borrow, error) {
	var borrowModel model.BorrowModel
	err := r.db.Where("user_id = ? AND work_id = ? AND is_active = ?", userID, workID, true).
		First(&borrowModel).Error
	if err != nil {
		return nil, err
	}
	return ToBorrowEntity(&borrowModel), nil
}

func (r *borrowRepository) ListByUser(userID string, activeOnly bool) ([]*entity.Borrow, error) {
	query := r.db.Where("user_id = ?", userID).Order("borrowed_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var borrowModels []model.BorrowModel
	if err := query.Find(&borrowModels).Error; err != nil {
		return nil, err
	}

	borrows := make([]*entity.Borrow, len(borrowModels))
	for i := range borrowModels {
		borrows[i] = ToBorrowEntity(&borrowModels[i])
	}
	return borrows, nil
}

func (r *borrowRepository) Update(borrow *entity.Borrow) error {
	borrowModel := ToBorrowModel(borrow)
	return r.db.Save(borrowModel).Error
}

func (r *borrowRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.BorrowModel{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
