package usecase

import (
	"fmt"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/logger"
)

type NotificationUseCase interface {
	// HandleTask consumes one queued notification task and persists the
	// resulting notification.
	HandleTask(task map[string]interface{}) error
	List(userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(notificationID, userID string) error
	UnreadCount(userID string) (int64, error)
	// QueueDepth reports how many notification tasks still wait on the broker.
	QueueDepth() (int, error)
}

// TaskQueue is the broker surface the notification usecase reads from.
type TaskQueue interface {
	GetQueueLength() (int, error)
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	taskQueue        TaskQueue
	logger           *logger.Logger
}

func NewNotificationUseCase(
	notificationRepo persistent.NotificationRepository,
	taskQueue TaskQueue,
	logger *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		taskQueue:        taskQueue,
		logger:           logger,
	}
}

func taskString(task map[string]interface{}, key string) string {
	if v, ok := task[key].(string); ok {
		return v
	}
	return ""
}

func (uc *notificationUseCase) HandleTask(task map[string]interface{}) error {
	event := taskString(task, "event")
	userID := taskString(task, "user_id")
	if event == "" || userID == "" {
		return fmt.Errorf("notification task missing event or user_id")
	}

	workTitle := taskString(task, "work_title")
	reason := taskString(task, "reason")

	notification := &entity.Notification{
		UserID:        userID,
		Type:          event,
		RelatedWorkID: taskString(task, "work_id"),
	}

	switch event {
	case "work_approved":
		notification.Title = "Work approved"
		notification.Message = fmt.Sprintf("Your work %q was approved and is now in the catalog.", workTitle)
	case "work_rejected":
		notification.Title = "Work rejected"
		notification.Message = fmt.Sprintf("Your work %q was rejected: %s", workTitle, reason)
	case "request_approved":
		notification.Title = "Librarian request approved"
		notification.Message = "Congratulations, you are now a librarian."
	case "request_rejected":
		notification.Title = "Librarian request rejected"
		notification.Message = fmt.Sprintf("Your librarian request was rejected: %s", reason)
	default:
		uc.logger.Warn("Skipping notification task with unknown event %q", event)
		return nil
	}

	if err := uc.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

func (uc *notificationUseCase) List(userID string, limit, offset int) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByUser(userID, limit, offset)
}

func (uc *notificationUseCase) MarkRead(notificationID, userID string) error {
	affected, err := uc.notificationRepo.MarkRead(notificationID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.NewNotFound("notification not found")
	}
	return nil
}

func (uc *notificationUseCase) UnreadCount(userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(userID)
}

func (uc *notificationUseCase) QueueDepth() (int, error) {
	if uc.taskQueue == nil {
		return 0, nil
	}
	return uc.taskQueue.GetQueueLength()
}
