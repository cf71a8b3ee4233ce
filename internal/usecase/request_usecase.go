package usecase

import (
	"errors"
	"fmt"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"
	"openshelf/pkg/queue"

	"gorm.io/gorm"
)

type RequestUseCase interface {
	Create(userID, motivation string) (*entity.LibrarianRequest, error)
	Approve(requestID, reviewerID string) (*entity.LibrarianRequest, error)
	Reject(requestID, reviewerID, reason string) (*entity.LibrarianRequest, error)
	Cancel(requestID, userID string) error
	UserRequest(userID string) (*entity.LibrarianRequest, error)
	Pending(reviewerID string) ([]*entity.LibrarianRequest, error)
	All(reviewerID string, status entity.RequestStatus) ([]*entity.LibrarianRequest, error)
}

type requestUseCase struct {
	requestRepo persistent.LibrarianRequestRepository
	userRepo    persistent.UserRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewRequestUseCase(
	requestRepo persistent.LibrarianRequestRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) RequestUseCase {
	return &requestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Create opens a promotion request for the user. A second pending request is
// a conflict; the partial unique index on (user_id) WHERE pending backstops
// concurrent submissions.
func (uc *requestUseCase) Create(userID, motivation string) (*entity.LibrarianRequest, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("user not found")
		}
		return nil, err
	}

	if err := user.RequestLibrarianRole(motivation); err != nil {
		return nil, err
	}

	pending, err := uc.requestRepo.HasPending(userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, entity.NewConflict("you already have a pending librarian request")
	}

	request := &entity.LibrarianRequest{
		UserID:     userID,
		Motivation: motivation,
		Status:     entity.RequestPending,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		uc.logger.Error("Failed to create librarian request for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}

func (uc *requestUseCase) reviewer(reviewerID string) (*entity.User, error) {
	reviewer, err := uc.userRepo.GetByID(reviewerID)
	if err != nil {
		return nil, entity.NewNotFound("reviewer not found")
	}
	if !reviewer.CanManageUsers() {
		return nil, entity.NewAuth("only librarians can review requests")
	}
	return reviewer, nil
}

// Approve grants the request and promotes the requester in one transaction.
func (uc *requestUseCase) Approve(requestID, reviewerID string) (*entity.LibrarianRequest, error) {
	if _, err := uc.reviewer(reviewerID); err != nil {
		return nil, err
	}

	request, err := uc.getRequest(requestID)
	if err != nil {
		return nil, err
	}

	requester, err := uc.userRepo.GetByID(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester: %w", err)
	}

	if err := request.Approve(reviewerID); err != nil {
		return nil, err
	}
	requester.PromoteToLibrarian()

	if err := uc.requestRepo.ApproveAndPromote(request, requester); err != nil {
		uc.logger.Error("Failed to approve request %s: %v", requestID, err)
		return nil, fmt.Errorf("failed to approve request: %w", err)
	}

	uc.publishRequestEvent(request, "request_approved", "")
	return request, nil
}

func (uc *requestUseCase) Reject(requestID, reviewerID, reason string) (*entity.LibrarianRequest, error) {
	if _, err := uc.reviewer(reviewerID); err != nil {
		return nil, err
	}

	request, err := uc.getRequest(requestID)
	if err != nil {
		return nil, err
	}

	if err := request.Reject(reviewerID, reason); err != nil {
		return nil, err
	}

	if err := uc.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to reject request: %w", err)
	}

	uc.publishRequestEvent(request, "request_rejected", reason)
	return request, nil
}

// Cancel withdraws the caller's own pending request.
func (uc *requestUseCase) Cancel(requestID, userID string) error {
	affected, err := uc.requestRepo.DeletePending(requestID, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel request: %w", err)
	}
	if affected == 0 {
		return entity.NewNotFound("no pending request to cancel")
	}
	return nil
}

func (uc *requestUseCase) UserRequest(userID string) (*entity.LibrarianRequest, error) {
	request, err := uc.requestRepo.GetLatestByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("no librarian request found")
		}
		return nil, err
	}
	return request, nil
}

func (uc *requestUseCase) Pending(reviewerID string) ([]*entity.LibrarianRequest, error) {
	if _, err := uc.reviewer(reviewerID); err != nil {
		return nil, err
	}
	return uc.requestRepo.ListPending()
}

func (uc *requestUseCase) All(reviewerID string, status entity.RequestStatus) ([]*entity.LibrarianRequest, error) {
	if _, err := uc.reviewer(reviewerID); err != nil {
		return nil, err
	}
	return uc.requestRepo.ListAll(status)
}

func (uc *requestUseCase) getRequest(requestID string) (*entity.LibrarianRequest, error) {
	request, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("request not found")
		}
		return nil, err
	}
	return request, nil
}

func (uc *requestUseCase) publishRequestEvent(request *entity.LibrarianRequest, event, reason string) {
	if uc.queueClient == nil {
		return
	}

	task := map[string]interface{}{
		"event":   event,
		"user_id": request.UserID,
	}
	if reason != "" {
		task["reason"] = reason
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Warn("Failed to publish %s notification: %v", event, err)
	}
}
