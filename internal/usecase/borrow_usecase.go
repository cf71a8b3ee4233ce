package usecase

import (
	"errors"
	"fmt"
	"time"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"

	"gorm.io/gorm"
)

type BorrowUseCase interface {
	Borrow(userID, workID string) (*entity.Borrow, error)
	Extend(borrowID, userID string) (*entity.Borrow, error)
	Return(borrowID, userID string) (*entity.Borrow, error)
	ListForUser(userID string, activeOnly bool) ([]*entity.Borrow, error)
	GetBorrow(borrowID string) (*entity.Borrow, error)
}

type borrowUseCase struct {
	borrowRepo    persistent.BorrowRepository
	workRepo      persistent.WorkRepository
	userRepo      persistent.UserRepository
	borrowDays    int
	extensionDays int
	logger        *logger.Logger
}

func NewBorrowUseCase(
	borrowRepo persistent.BorrowRepository,
	workRepo persistent.WorkRepository,
	userRepo persistent.UserRepository,
	borrowDays int,
	extensionDays int,
	logger *logger.Logger,
) BorrowUseCase {
	if borrowDays <= 0 {
		borrowDays = entity.DefaultBorrowDays
	}
	if extensionDays <= 0 {
		extensionDays = entity.ExtensionDays
	}
	return &borrowUseCase{
		borrowRepo:    borrowRepo,
		workRepo:      workRepo,
		userRepo:      userRepo,
		borrowDays:    borrowDays,
		extensionDays: extensionDays,
		logger:        logger,
	}
}

// Borrow opens a loan for the user. One active loan per (user, work) pair;
// a second attempt while one is open is a conflict.
func (uc *borrowUseCase) Borrow(userID, workID string) (*entity.Borrow, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("user not found")
		}
		return nil, err
	}
	if !user.CanBorrow() {
		return nil, entity.NewAuth("only members and librarians can borrow works")
	}

	work, err := uc.workRepo.GetByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("work not found")
		}
		return nil, err
	}
	if !work.IsAvailable() {
		return nil, entity.NewInvalidState("work is not available for borrowing")
	}

	existing, err := uc.borrowRepo.GetActive(userID, workID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, entity.NewConflict("you already have an active borrow for this work")
	}

	now := time.Now()
	borrow := &entity.Borrow{
		UserID:     userID,
		WorkID:     workID,
		BorrowedAt: now,
		DueDate:    now.AddDate(0, 0, uc.borrowDays),
		IsActive:   true,
	}

	if err := uc.borrowRepo.Create(borrow); err != nil {
		uc.logger.Error("Failed to create borrow for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create borrow: %w", err)
	}

	return borrow, nil
}

func (uc *borrowUseCase) getOwned(borrowID, userID string) (*entity.Borrow, error) {
	borrow, err := uc.borrowRepo.GetByID(borrowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("borrow not found")
		}
		return nil, err
	}
	if borrow.UserID != userID {
		return nil, entity.NewAuth("borrow belongs to another user")
	}
	return borrow, nil
}

func (uc *borrowUseCase) Extend(borrowID, userID string) (*entity.Borrow, error) {
	borrow, err := uc.getOwned(borrowID, userID)
	if err != nil {
		return nil, err
	}

	if err := borrow.ExtendBy(uc.extensionDays); err != nil {
		return nil, err
	}

	if err := uc.borrowRepo.Update(borrow); err != nil {
		return nil, fmt.Errorf("failed to persist extension: %w", err)
	}
	return borrow, nil
}

func (uc *borrowUseCase) Return(borrowID, userID string) (*entity.Borrow, error) {
	borrow, err := uc.getOwned(borrowID, userID)
	if err != nil {
		return nil, err
	}

	if err := borrow.Return(); err != nil {
		return nil, err
	}

	if err := uc.borrowRepo.Update(borrow); err != nil {
		return nil, fmt.Errorf("failed to persist return: %w", err)
	}
	return borrow, nil
}

func (uc *borrowUseCase) ListForUser(userID string, activeOnly bool) ([]*entity.Borrow, error) {
	return uc.borrowRepo.ListByUser(userID, activeOnly)
}

func (uc *borrowUseCase) GetBorrow(borrowID string) (*entity.Borrow, error) {
	borrow, err := uc.borrowRepo.GetByID(borrowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("borrow not found")
		}
		return nil, err
	}
	return borrow, nil
}
