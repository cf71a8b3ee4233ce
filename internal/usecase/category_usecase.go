package usecase

import (
	"errors"
	"fmt"
	"strings"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"

	"gorm.io/gorm"
)

type CategoryUseCase interface {
	List() ([]*entity.Category, error)
	Get(categoryID string) (*entity.Category, error)
	Create(creatorID, name, description string) (*entity.Category, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	userRepo     persistent.UserRepository
}

func NewCategoryUseCase(
	categoryRepo persistent.CategoryRepository,
	userRepo persistent.UserRepository,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

func (uc *categoryUseCase) List() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

func (uc *categoryUseCase) Get(categoryID string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("category not found")
		}
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) Create(creatorID, name, description string) (*entity.Category, error) {
	creator, err := uc.userRepo.GetByID(creatorID)
	if err != nil {
		return nil, entity.NewNotFound("user not found")
	}
	if !creator.IsLibrarian() {
		return nil, entity.NewAuth("only librarians can create categories")
	}

	if strings.TrimSpace(name) == "" {
		return nil, entity.NewValidation("category name cannot be empty")
	}

	category, err := uc.categoryRepo.Create(name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
