package persistent

import (
	"errors"

	"openshelf/internal/entity"
	"openshelf/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(userID, workID string) (*entity.Favorite, error)
	Delete(userID, workID string) error
	Exists(userID, workID string) (bool, error)
	ListByUser(userID string) ([]*entity.Favorite, error)
	CountByUser(userID string) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(userID, workID string) (*entity.Favorite, error) {
	// The unique (user_id, work_id) index backstops concurrent adds; an
	// existing row is returned as-is instead of erroring.
	var existing model.FavoriteModel
	err := r.db.Where("user_id = ? AND work_id = ?", userID, workID).First(&existing).Error
	if err == nil {
		return ToFavoriteEntity(&existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favoriteModel := &model.FavoriteModel{
		UserID: userID,
		WorkID: workID,
	}
	if err := r.db.Create(favoriteModel).Error; err != nil {
		return nil, err
	}
	return ToFavoriteEntity(favoriteModel), nil
}

func (r *favoriteRepository) Delete(userID, workID string) error {
	return r.db.Where("user_id = ? AND work_id = ?", userID, workID).
		Delete(&model.FavoriteModel{}).Error
}

func (r *favoriteRepository) Exists(userID, workID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FavoriteModel{}).
		Where("user_id = ? AND work_id = ?", userID, workID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) ListByUser(userID string) ([]*entity.Favorite, error) {
	var favoriteModels []model.FavoriteModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]*entity.Favorite, len(favoriteModels))
	for i := range favoriteModels {
		favorites[i] = ToFavoriteEntity(&favoriteModels[i])
	}
	return favorites, nil
}

func (r *favoriteRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FavoriteModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
