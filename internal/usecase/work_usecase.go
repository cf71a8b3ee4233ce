package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SubmitWorkInput struct {
	Title       string
	Author      string
	Description string
	Type        entity.WorkType
	FileURL     string
	Metadata    entity.WorkMetadata
	CategoryIDs []string
}

type UpdateWorkInput struct {
	Title       *string
	Description *string
	CategoryIDs []string
}

type WorkUseCase interface {
	Submit(userID string, input SubmitWorkInput) (*entity.Work, error)
	GetWork(workID string) (*entity.Work, error)
	ListApproved(filter persistent.WorkFilter) ([]*entity.Work, error)
	ListPending() ([]*entity.Work, error)
	ListByUser(userID string) ([]*entity.Work, error)
	Update(workID, userID string, input UpdateWorkInput) (*entity.Work, error)
	Approve(workID, librarianID string) (*entity.Work, error)
	Reject(workID, reason string) (*entity.Work, error)
	IncrementViews(workID, userID string) (bool, error)
	IncrementDownloads(workID string) error
}

type workUseCase struct {
	workRepo    persistent.WorkRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewWorkUseCase(
	workRepo persistent.WorkRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) WorkUseCase {
	return &workUseCase{
		workRepo:    workRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func validWorkType(t entity.WorkType) bool {
	switch t {
	case entity.WorkTypeBook, entity.WorkTypeArticle, entity.WorkTypeThesis,
		entity.WorkTypeVideo, entity.WorkTypeAudio, entity.WorkTypeDocument:
		return true
	}
	return false
}

// Submit creates a new work. Whatever the caller supplies, the work enters
// the catalog in moderation.
func (uc *workUseCase) Submit(userID string, input SubmitWorkInput) (*entity.Work, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.CanSubmit() {
		return nil, entity.NewAuth("only members can submit works")
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, entity.NewValidation("title cannot be empty")
	}
	if strings.TrimSpace(input.Author) == "" {
		return nil, entity.NewValidation("author cannot be empty")
	}
	if !validWorkType(input.Type) {
		return nil, entity.NewValidation("unknown work type")
	}

	now := time.Now()
	work := &entity.Work{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Type:        input.Type,
		FileURL:     input.FileURL,
		Metadata:    input.Metadata,
		Status:      entity.StatusPending,
		SubmittedBy: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.workRepo.Create(work, input.CategoryIDs); err != nil {
		uc.logger.Error("Failed to create work: %v", err)
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	return work, nil
}

func (uc *workUseCase) GetWork(workID string) (*entity.Work, error) {
	work, err := uc.workRepo.GetByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("work not found")
		}
		return nil, err
	}
	return work, nil
}

func (uc *workUseCase) ListApproved(filter persistent.WorkFilter) ([]*entity.Work, error) {
	return uc.workRepo.ListApproved(filter)
}

func (uc *workUseCase) ListPending() ([]*entity.Work, error) {
	return uc.workRepo.ListPending()
}

func (uc *workUseCase) ListByUser(userID string) ([]*entity.Work, error) {
	return uc.workRepo.ListBySubmitter(userID)
}

func (uc *workUseCase) Update(workID, userID string, input UpdateWorkInput) (*entity.Work, error) {
	work, err := uc.GetWork(workID)
	if err != nil {
		return nil, err
	}

	if work.SubmittedBy != userID {
		return nil, entity.NewAuth("you can only update your own works")
	}

	if input.Title != nil {
		if err := work.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		work.SetDescription(*input.Description)
	}

	if err := uc.workRepo.Update(work); err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}

	if input.CategoryIDs != nil {
		if err := uc.workRepo.ReplaceCategories(workID, input.CategoryIDs); err != nil {
			return nil, fmt.Errorf("failed to update categories: %w", err)
		}
	}

	return work, nil
}

// Approve loads the work, runs the entity transition and persists the result.
func (uc *workUseCase) Approve(workID, librarianID string) (*entity.Work, error) {
	work, err := uc.GetWork(workID)
	if err != nil {
		return nil, err
	}

	if err := work.Approve(librarianID); err != nil {
		return nil, err
	}

	if err := uc.workRepo.Update(work); err != nil {
		uc.logger.Error("Failed to persist approval of work %s: %v", workID, err)
		return nil, fmt.Errorf("failed to persist approval: %w", err)
	}

	return work, nil
}

func (uc *workUseCase) Reject(workID, reason string) (*entity.Work, error) {
	work, err := uc.GetWork(workID)
	if err != nil {
		return nil, err
	}

	if err := work.Reject(reason); err != nil {
		return nil, err
	}

	if err := uc.workRepo.Update(work); err != nil {
		uc.logger.Error("Failed to persist rejection of work %s: %v", workID, err)
		return nil, fmt.Errorf("failed to persist rejection: %w", err)
	}

	return work, nil
}

// IncrementViews counts a view once per (work, user). Views never move for
// works outside the catalog; that case reports false without error.
func (uc *workUseCase) IncrementViews(workID, userID string) (bool, error) {
	work, err := uc.GetWork(workID)
	if err != nil {
		return false, err
	}

	if !work.IsAvailable() {
		return false, nil
	}

	if uc.redisClient != nil && userID != "" {
		ctx := context.Background()
		viewKey := fmt.Sprintf("work_viewed:%s:%s", workID, userID)

		set, err := uc.redisClient.SetNX(ctx, viewKey, "1", 365*24*time.Hour).Result()
		if err != nil {
			uc.logger.Warn("Failed to track view in redis: %v", err)
		} else if !set {
			return false, nil
		}
	}

	if err := uc.workRepo.IncrementViews(workID); err != nil {
		return false, fmt.Errorf("failed to increment views: %w", err)
	}
	return true, nil
}

func (uc *workUseCase) IncrementDownloads(workID string) error {
	work, err := uc.GetWork(workID)
	if err != nil {
		return err
	}

	if !work.IsAvailable() {
		return nil
	}

	return uc.workRepo.IncrementDownloads(workID)
}
