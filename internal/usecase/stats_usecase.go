package usecase

import (
	"context"
	"encoding/json"
	"time"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "library_stats"
	statsCacheTTL = 5 * time.Minute
)

type LibraryStats struct {
	ApprovedWorks int64 `json:"approved_works"`
	PendingWorks  int64 `json:"pending_works"`
	Members       int64 `json:"members"`
	Librarians    int64 `json:"librarians"`
	ActiveBorrows int64 `json:"active_borrows"`
	Downloads     int64 `json:"downloads"`
}

type StatsUseCase interface {
	Get() (*LibraryStats, error)
}

type statsUseCase struct {
	workRepo     persistent.WorkRepository
	userRepo     persistent.UserRepository
	borrowRepo   persistent.BorrowRepository
	downloadRepo persistent.DownloadRepository
	redisClient  *redis.Client
	logger       *logger.Logger
}

func NewStatsUseCase(
	workRepo persistent.WorkRepository,
	userRepo persistent.UserRepository,
	borrowRepo persistent.BorrowRepository,
	downloadRepo persistent.DownloadRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) StatsUseCase {
	return &statsUseCase{
		workRepo:     workRepo,
		userRepo:     userRepo,
		borrowRepo:   borrowRepo,
		downloadRepo: downloadRepo,
		redisClient:  redisClient,
		logger:       logger,
	}
}

func (uc *statsUseCase) Get() (*LibraryStats, error) {
	ctx := context.Background()

	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats LibraryStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats := &LibraryStats{}

	var err error
	if stats.ApprovedWorks, err = uc.workRepo.CountByStatus(entity.StatusApproved); err != nil {
		return nil, err
	}
	if stats.PendingWorks, err = uc.workRepo.CountByStatus(entity.StatusPending); err != nil {
		return nil, err
	}
	if stats.Members, err = uc.userRepo.CountByRole(entity.RoleMember); err != nil {
		return nil, err
	}
	if stats.Librarians, err = uc.userRepo.CountByRole(entity.RoleLibrarian); err != nil {
		return nil, err
	}
	if stats.ActiveBorrows, err = uc.borrowRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.Downloads, err = uc.downloadRepo.Count(); err != nil {
		return nil, err
	}

	if uc.redisClient != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := uc.redisClient.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				uc.logger.Warn("Failed to cache library stats: %v", err)
			}
		}
	}

	return stats, nil
}
