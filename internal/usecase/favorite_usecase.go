package usecase

import (
	"errors"
	"fmt"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"

	"gorm.io/gorm"
)

type FavoriteResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	IsFavorite bool   `json:"is_favorite"`
}

type FavoriteUseCase interface {
	IsFavorite(userID, workID string) (bool, error)
	Add(userID, workID string) (*FavoriteResult, error)
	Remove(userID, workID string) (*FavoriteResult, error)
	Toggle(userID, workID string) (*FavoriteResult, error)
	ListForUser(userID string) ([]*entity.FavoriteWithWork, error)
}

type favoriteUseCase struct {
	favoriteRepo persistent.FavoriteRepository
	workRepo     persistent.WorkRepository
	logger       *logger.Logger
}

func NewFavoriteUseCase(
	favoriteRepo persistent.FavoriteRepository,
	workRepo persistent.WorkRepository,
	logger *logger.Logger,
) FavoriteUseCase {
	return &favoriteUseCase{
		favoriteRepo: favoriteRepo,
		workRepo:     workRepo,
		logger:       logger,
	}
}

func (uc *favoriteUseCase) IsFavorite(userID, workID string) (bool, error) {
	return uc.favoriteRepo.Exists(userID, workID)
}

// Add marks a work as a favorite. Only works visible in the catalog can be
// favorited; repeating the call is harmless.
func (uc *favoriteUseCase) Add(userID, workID string) (*FavoriteResult, error) {
	work, err := uc.workRepo.GetByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("work not found")
		}
		return nil, err
	}
	if !work.IsAvailable() {
		return nil, entity.NewInvalidState("work is not available")
	}

	if _, err := uc.favoriteRepo.Create(userID, workID); err != nil {
		uc.logger.Error("Failed to add favorite for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return &FavoriteResult{
		Success:    true,
		Message:    "Added to favorites",
		IsFavorite: true,
	}, nil
}

func (uc *favoriteUseCase) Remove(userID, workID string) (*FavoriteResult, error) {
	if err := uc.favoriteRepo.Delete(userID, workID); err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return &FavoriteResult{
		Success:    true,
		Message:    "Removed from favorites",
		IsFavorite: false,
	}, nil
}

func (uc *favoriteUseCase) Toggle(userID, workID string) (*FavoriteResult, error) {
	exists, err := uc.favoriteRepo.Exists(userID, workID)
	if err != nil {
		return nil, err
	}
	if exists {
		return uc.Remove(userID, workID)
	}
	return uc.Add(userID, workID)
}

// ListForUser resolves each favorite against the catalog. Favorites whose
// work has since disappeared are skipped, not surfaced as errors.
func (uc *favoriteUseCase) ListForUser(userID string) ([]*entity.FavoriteWithWork, error) {
	favorites, err := uc.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FavoriteWithWork, 0, len(favorites))
	for _, fav := range favorites {
		work, err := uc.workRepo.GetByID(fav.WorkID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, &entity.FavoriteWithWork{
			Favorite: *fav,
			Work:     work,
		})
	}
	return result, nil
}
