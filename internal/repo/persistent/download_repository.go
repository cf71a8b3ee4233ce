package persistent

import (
	"time"

	"openshelf/internal/entity"
	"openshelf/internal/model"

	"gorm.io/gorm"
)

type DownloadRepository interface {
	Create(workID, userID string) (*entity.Download, error)
	ListByUser(userID string) ([]*entity.Download, error)
	Count() (int64, error)
}

type downloadRepository struct {
	db *gorm.DB
}

func NewDownloadRepository(db *gorm.DB) DownloadRepository {
	return &downloadRepository{db: db}
}

func (r *downloadRepository) Create(workID, userID string) (*entity.Download, error) {
	downloadModel := &model.DownloadModel{
		WorkID:       workID,
		DownloadedAt: time.Now(),
	}
	if userID != "" {
		downloadModel.UserID = &userID
	}

	if err := r.db.Create(downloadModel).Error; err != nil {
		return nil, err
	}
	return ToDownloadEntity(downloadModel), nil
}

func (r *downloadRepository) ListByUser(userID string) ([]*entity.Download, error) {
	var downloadModels []model.DownloadModel
	err := r.db.Where("user_id = ?", userID).
		Order("downloaded_at DESC").
		Find(&downloadModels).Error
	if err != nil {
		return nil, err
	}

	downloads := make([]*entity.Download, len(downloadModels))
	for i := range downloadModels {
		downloads[i] = ToDownloadEntity(&downloadModels[i])
	}
	return downloads, nil
}

func (r *downloadRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.DownloadModel{}).Count(&count).Error
	return count, err
}
