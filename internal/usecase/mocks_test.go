package usecase

import (
	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockWorkRepository is a mock implementation of persistent.WorkRepository
type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) Create(work *entity.Work, categoryIDs []string) error {
	args := m.Called(work, categoryIDs)
	return args.Error(0)
}

func (m *MockWorkRepository) GetByID(id string) (*entity.Work, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkRepository) ListApproved(filter persistent.WorkFilter) ([]*entity.Work, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkRepository) ListPending() ([]*entity.Work, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkRepository) ListBySubmitter(userID string) ([]*entity.Work, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkRepository) Update(work *entity.Work) error {
	args := m.Called(work)
	return args.Error(0)
}

func (m *MockWorkRepository) ReplaceCategories(workID string, categoryIDs []string) error {
	args := m.Called(workID, categoryIDs)
	return args.Error(0)
}

func (m *MockWorkRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWorkRepository) IncrementDownloads(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWorkRepository) CountByStatus(status entity.WorkStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.WorkRepository = (*MockWorkRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(role entity.UserRole) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockBorrowRepository is a mock implementation of persistent.BorrowRepository
type MockBorrowRepository struct {
	mock.Mock
}

func (m *MockBorrowRepository) Create(borrow *entity.Borrow) error {
	args := m.Called(borrow)
	return args.Error(0)
}

func (m *MockBorrowRepository) GetByID(id string) (*entity.Borrow, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Borrow), args.Error(1)
}

func (m *MockBorrowRepository) GetActive(userID, workID string) (*entity.Borrow, error) {
	args := m.Called(userID, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Borrow), args.Error(1)
}

func (m *MockBorrowRepository) ListByUser(userID string, activeOnly bool) ([]*entity.Borrow, error) {
	args := m.Called(userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Borrow), args.Error(1)
}

func (m *MockBorrowRepository) Update(borrow *entity.Borrow) error {
	args := m.Called(borrow)
	return args.Error(0)
}

func (m *MockBorrowRepository) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.BorrowRepository = (*MockBorrowRepository)(nil)

// MockFavoriteRepository is a mock implementation of persistent.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(userID, workID string) (*entity.Favorite, error) {
	args := m.Called(userID, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(userID, workID string) error {
	args := m.Called(userID, workID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(userID, workID string) (bool, error) {
	args := m.Called(userID, workID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(userID string) ([]*entity.Favorite, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.FavoriteRepository = (*MockFavoriteRepository)(nil)

// MockLibrarianRequestRepository is a mock implementation of persistent.LibrarianRequestRepository
type MockLibrarianRequestRepository struct {
	mock.Mock
}

func (m *MockLibrarianRequestRepository) Create(request *entity.LibrarianRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockLibrarianRequestRepository) GetByID(id string) (*entity.LibrarianRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LibrarianRequest), args.Error(1)
}

func (m *MockLibrarianRequestRepository) GetLatestByUser(userID string) (*entity.LibrarianRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LibrarianRequest), args.Error(1)
}

func (m *MockLibrarianRequestRepository) HasPending(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibrarianRequestRepository) ListPending() ([]*entity.LibrarianRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LibrarianRequest), args.Error(1)
}

func (m *MockLibrarianRequestRepository) ListAll(status entity.RequestStatus) ([]*entity.LibrarianRequest, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LibrarianRequest), args.Error(1)
}

func (m *MockLibrarianRequestRepository) ApproveAndPromote(request *entity.LibrarianRequest, requester *entity.User) error {
	args := m.Called(request, requester)
	return args.Error(0)
}

func (m *MockLibrarianRequestRepository) Update(request *entity.LibrarianRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockLibrarianRequestRepository) DeletePending(requestID, userID string) (int64, error) {
	args := m.Called(requestID, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.LibrarianRequestRepository = (*MockLibrarianRequestRepository)(nil)

// MockCategoryRepository is a mock implementation of persistent.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(name, description string) (*entity.Category, error) {
	args := m.Called(name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

var _ persistent.CategoryRepository = (*MockCategoryRepository)(nil)

// MockDownloadRepository is a mock implementation of persistent.DownloadRepository
type MockDownloadRepository struct {
	mock.Mock
}

func (m *MockDownloadRepository) Create(workID, userID string) (*entity.Download, error) {
	args := m.Called(workID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Download), args.Error(1)
}

func (m *MockDownloadRepository) ListByUser(userID string) ([]*entity.Download, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Download), args.Error(1)
}

func (m *MockDownloadRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.DownloadRepository = (*MockDownloadRepository)(nil)

// MockNotificationRepository is a mock implementation of persistent.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *entity.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(userID string, limit, offset int) ([]*entity.Notification, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(notificationID, userID string) (int64, error) {
	args := m.Called(notificationID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.NotificationRepository = (*MockNotificationRepository)(nil)

// MockWorkUseCase is a mock implementation of WorkUseCase
type MockWorkUseCase struct {
	mock.Mock
}

func (m *MockWorkUseCase) Submit(userID string, input SubmitWorkInput) (*entity.Work, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) GetWork(workID string) (*entity.Work, error) {
	args := m.Called(workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) ListApproved(filter persistent.WorkFilter) ([]*entity.Work, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) ListPending() ([]*entity.Work, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) ListByUser(userID string) ([]*entity.Work, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) Update(workID, userID string, input UpdateWorkInput) (*entity.Work, error) {
	args := m.Called(workID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) Approve(workID, librarianID string) (*entity.Work, error) {
	args := m.Called(workID, librarianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) Reject(workID, reason string) (*entity.Work, error) {
	args := m.Called(workID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkUseCase) IncrementViews(workID, userID string) (bool, error) {
	args := m.Called(workID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkUseCase) IncrementDownloads(workID string) error {
	args := m.Called(workID)
	return args.Error(0)
}

var _ WorkUseCase = (*MockWorkUseCase)(nil)

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) GetQueueLength() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

var _ TaskQueue = (*MockTaskQueue)(nil)
