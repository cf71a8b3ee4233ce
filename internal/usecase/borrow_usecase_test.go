package usecase

import (
	"testing"
	"time"

	"openshelf/internal/entity"
	"openshelf/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newBorrowTestUseCase(borrowRepo *MockBorrowRepository, workRepo *MockWorkRepository, userRepo *MockUserRepository) BorrowUseCase {
	return NewBorrowUseCase(borrowRepo, workRepo, userRepo, 14, 7, logger.New())
}

func TestBorrow_OpensLoanWithFourteenDayDue(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(memberUser("user-1"), nil)
	workRepo.On("GetByID", "work-1").Return(&entity.Work{ID: "work-1", Status: entity.StatusApproved}, nil)
	borrowRepo.On("GetActive", "user-1", "work-1").Return(nil, gorm.ErrRecordNotFound)
	borrowRepo.On("Create", mock.AnythingOfType("*entity.Borrow")).Return(nil)

	borrow, err := uc.Borrow("user-1", "work-1")

	assert.NoError(t, err)
	assert.True(t, borrow.IsActive)
	expectedDue := borrow.BorrowedAt.AddDate(0, 0, 14)
	assert.WithinDuration(t, expectedDue, borrow.DueDate, time.Second)
	borrowRepo.AssertExpectations(t)
}

func TestBorrow_LibrarianOpensLoan(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	userRepo.On("GetByID", "lib-1").Return(librarianUser("lib-1"), nil)
	workRepo.On("GetByID", "work-1").Return(&entity.Work{ID: "work-1", Status: entity.StatusApproved}, nil)
	borrowRepo.On("GetActive", "lib-1", "work-1").Return(nil, gorm.ErrRecordNotFound)
	borrowRepo.On("Create", mock.AnythingOfType("*entity.Borrow")).Return(nil)

	borrow, err := uc.Borrow("lib-1", "work-1")

	assert.NoError(t, err)
	assert.True(t, borrow.IsActive)
	borrowRepo.AssertExpectations(t)
}

func TestBorrow_PlainUserRejected(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Role: entity.RoleUser}, nil)

	_, err := uc.Borrow("user-1", "work-1")

	assert.True(t, entity.IsAuth(err))
	borrowRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBorrow_ConflictOnExistingActiveLoan(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(memberUser("user-1"), nil)
	workRepo.On("GetByID", "work-1").Return(&entity.Work{ID: "work-1", Status: entity.StatusApproved}, nil)
	borrowRepo.On("GetActive", "user-1", "work-1").Return(&entity.Borrow{ID: "borrow-1", IsActive: true}, nil)

	_, err := uc.Borrow("user-1", "work-1")

	assert.True(t, entity.IsConflict(err))
	borrowRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestBorrow_RejectsPendingWork(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	userRepo.On("GetByID", "user-1").Return(memberUser("user-1"), nil)
	workRepo.On("GetByID", "work-1").Return(&entity.Work{ID: "work-1", Status: entity.StatusPending}, nil)

	_, err := uc.Borrow("user-1", "work-1")
	assert.True(t, entity.IsInvalidState(err))
}

func TestExtend_AddsSevenDays(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	due := time.Now().AddDate(0, 0, 5)
	borrowRepo.On("GetByID", "borrow-1").Return(&entity.Borrow{
		ID: "borrow-1", UserID: "user-1", DueDate: due, IsActive: true,
	}, nil)
	borrowRepo.On("Update", mock.AnythingOfType("*entity.Borrow")).Return(nil)

	borrow, err := uc.Extend("borrow-1", "user-1")

	assert.NoError(t, err)
	assert.WithinDuration(t, due.AddDate(0, 0, 7), borrow.DueDate, time.Second)
}

func TestExtend_UsesConfiguredDays(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := NewBorrowUseCase(borrowRepo, workRepo, userRepo, 14, 3, logger.New())

	due := time.Now().AddDate(0, 0, 5)
	borrowRepo.On("GetByID", "borrow-1").Return(&entity.Borrow{
		ID: "borrow-1", UserID: "user-1", DueDate: due, IsActive: true,
	}, nil)
	borrowRepo.On("Update", mock.AnythingOfType("*entity.Borrow")).Return(nil)

	borrow, err := uc.Extend("borrow-1", "user-1")

	assert.NoError(t, err)
	assert.WithinDuration(t, due.AddDate(0, 0, 3), borrow.DueDate, time.Second)
}

func TestExtend_OtherUsersLoan(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	borrowRepo.On("GetByID", "borrow-1").Return(&entity.Borrow{ID: "borrow-1", UserID: "owner", IsActive: true}, nil)

	_, err := uc.Extend("borrow-1", "intruder")
	assert.True(t, entity.IsAuth(err))
}

func TestReturn_ClosesLoanOnce(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	borrowRepo.On("GetByID", "borrow-1").Return(&entity.Borrow{ID: "borrow-1", UserID: "user-1", IsActive: true}, nil)
	borrowRepo.On("Update", mock.AnythingOfType("*entity.Borrow")).Return(nil)

	borrow, err := uc.Return("borrow-1", "user-1")

	assert.NoError(t, err)
	assert.False(t, borrow.IsActive)
	assert.NotNil(t, borrow.ReturnedAt)
}

func TestReturn_AlreadyReturnedConflicts(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	workRepo := new(MockWorkRepository)
	userRepo := new(MockUserRepository)
	uc := newBorrowTestUseCase(borrowRepo, workRepo, userRepo)

	returned := time.Now()
	borrowRepo.On("GetByID", "borrow-1").Return(&entity.Borrow{
		ID: "borrow-1", UserID: "user-1", IsActive: false, ReturnedAt: &returned,
	}, nil)

	_, err := uc.Return("borrow-1", "user-1")

	assert.True(t, entity.IsConflict(err))
	borrowRepo.AssertNotCalled(t, "Update", mock.Anything)
}
