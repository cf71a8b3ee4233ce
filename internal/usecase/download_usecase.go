package usecase

import (
	"errors"
	"fmt"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"

	"gorm.io/gorm"
)

type DownloadResult struct {
	Success bool   `json:"success"`
	FileURL string `json:"file_url"`
	Message string `json:"message,omitempty"`
}

type DownloadUseCase interface {
	Record(workID, userID string) (*DownloadResult, error)
	ListForUser(userID string) ([]*entity.Download, error)
}

type downloadUseCase struct {
	downloadRepo persistent.DownloadRepository
	workRepo     persistent.WorkRepository
	logger       *logger.Logger
}

func NewDownloadUseCase(
	downloadRepo persistent.DownloadRepository,
	workRepo persistent.WorkRepository,
	logger *logger.Logger,
) DownloadUseCase {
	return &downloadUseCase{
		downloadRepo: downloadRepo,
		workRepo:     workRepo,
		logger:       logger,
	}
}

// Record logs a download and bumps the work's counter. userID may be empty;
// anonymous downloads are permitted.
func (uc *downloadUseCase) Record(workID, userID string) (*DownloadResult, error) {
	work, err := uc.workRepo.GetByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("work not found")
		}
		return nil, err
	}
	if !work.IsAvailable() {
		return nil, entity.NewInvalidState("work is not available for download")
	}

	if _, err := uc.downloadRepo.Create(workID, userID); err != nil {
		uc.logger.Error("Failed to record download of work %s: %v", workID, err)
		return nil, fmt.Errorf("failed to record download: %w", err)
	}

	if err := uc.workRepo.IncrementDownloads(workID); err != nil {
		uc.logger.Warn("Failed to increment download counter for work %s: %v", workID, err)
	}

	return &DownloadResult{
		Success: true,
		FileURL: work.FileURL,
	}, nil
}

func (uc *downloadUseCase) ListForUser(userID string) ([]*entity.Download, error) {
	return uc.downloadRepo.ListByUser(userID)
}
