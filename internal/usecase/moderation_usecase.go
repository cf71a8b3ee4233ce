package usecase

import (
	"strings"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"
	"openshelf/pkg/queue"
)

// MinRejectionReasonLength applies to reasons accepted through moderation.
// The entity only requires a non-blank reason; reviewers owe submitters more
// than that.
const MinRejectionReasonLength = 10

type ModerationResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Work    *entity.Work `json:"work,omitempty"`
}

type ModerationUseCase interface {
	ApproveWork(workID, reviewerID string) (*ModerationResult, error)
	RejectWork(workID, reviewerID, reason string) (*ModerationResult, error)
	PendingQueue(reviewerID string) ([]*entity.Work, error)
}

type moderationUseCase struct {
	workUC      WorkUseCase
	userRepo    persistent.UserRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewModerationUseCase(
	workUC WorkUseCase,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		workUC:      workUC,
		userRepo:    userRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *moderationUseCase) reviewer(reviewerID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(reviewerID)
	if err != nil {
		return nil, entity.NewNotFound("reviewer not found")
	}
	return user, nil
}

func (uc *moderationUseCase) ApproveWork(workID, reviewerID string) (*ModerationResult, error) {
	reviewer, err := uc.reviewer(reviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.CanApproveWork() {
		return nil, entity.NewAuth("only librarians can approve works")
	}

	work, err := uc.workUC.Approve(workID, reviewerID)
	if err != nil {
		return nil, err
	}

	uc.publishModerationEvent(work, "work_approved", "")

	return &ModerationResult{
		Success: true,
		Message: "Work approved and published to the catalog",
		Work:    work,
	}, nil
}

func (uc *moderationUseCase) RejectWork(workID, reviewerID, reason string) (*ModerationResult, error) {
	reviewer, err := uc.reviewer(reviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.CanRejectWork() {
		return nil, entity.NewAuth("only librarians can reject works")
	}

	if len(strings.TrimSpace(reason)) < MinRejectionReasonLength {
		return nil, entity.NewValidation("rejection reason must be at least 10 characters")
	}

	work, err := uc.workUC.Reject(workID, reason)
	if err != nil {
		return nil, err
	}

	uc.publishModerationEvent(work, "work_rejected", reason)

	return &ModerationResult{
		Success: true,
		Message: "Work rejected",
		Work:    work,
	}, nil
}

func (uc *moderationUseCase) PendingQueue(reviewerID string) ([]*entity.Work, error) {
	reviewer, err := uc.reviewer(reviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.CanModerate() {
		return nil, entity.NewAuth("only librarians can view the moderation queue")
	}
	return uc.workUC.ListPending()
}

func (uc *moderationUseCase) publishModerationEvent(work *entity.Work, event, reason string) {
	if uc.queueClient == nil {
		return
	}

	task := map[string]interface{}{
		"event":      event,
		"user_id":    work.SubmittedBy,
		"work_id":    work.ID,
		"work_title": work.Title,
	}
	if reason != "" {
		task["reason"] = reason
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Warn("Failed to publish %s notification: %v", event, err)
	}
}
