package usecase

import (
	"strings"
	"testing"

	"openshelf/internal/entity"
	"openshelf/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var validMotivation = strings.Repeat("I read a lot. ", 5)

func TestCreateRequest_Member(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(memberUser("user-1"), nil)
	requestRepo.On("HasPending", "user-1").Return(false, nil)
	requestRepo.On("Create", mock.AnythingOfType("*entity.LibrarianRequest")).Return(nil)

	request, err := uc.Create("user-1", validMotivation)

	assert.NoError(t, err)
	assert.Equal(t, entity.RequestPending, request.Status)
	requestRepo.AssertExpectations(t)
}

func TestCreateRequest_ShortMotivation(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(memberUser("user-1"), nil)

	_, err := uc.Create("user-1", "books are nice")

	assert.True(t, entity.IsValidation(err))
	requestRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateRequest_AlreadyPending(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-1").Return(memberUser("user-1"), nil)
	requestRepo.On("HasPending", "user-1").Return(true, nil)

	_, err := uc.Create("user-1", validMotivation)

	assert.True(t, entity.IsConflict(err))
}

func TestCreateRequest_LibrarianCannotPetition(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "lib-1").Return(librarianUser("lib-1"), nil)

	_, err := uc.Create("lib-1", validMotivation)

	assert.True(t, entity.IsValidation(err))
}

func TestApproveRequest_PromotesRequester(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	requester := memberUser("user-1")
	userRepo.On("GetByID", "lib-1").Return(librarianUser("lib-1"), nil)
	userRepo.On("GetByID", "user-1").Return(requester, nil)
	requestRepo.On("GetByID", "req-1").Return(&entity.LibrarianRequest{
		ID: "req-1", UserID: "user-1", Status: entity.RequestPending,
	}, nil)
	requestRepo.On("ApproveAndPromote", mock.AnythingOfType("*entity.LibrarianRequest"), requester).Return(nil)

	request, err := uc.Approve("req-1", "lib-1")

	assert.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, request.Status)
	assert.Equal(t, entity.RoleLibrarian, requester.Role)
	assert.NotNil(t, requester.AppointedAt)
	requestRepo.AssertExpectations(t)
}

func TestApproveRequest_NonLibrarianReviewer(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "user-2").Return(memberUser("user-2"), nil)

	_, err := uc.Approve("req-1", "user-2")

	assert.True(t, entity.IsAuth(err))
	requestRepo.AssertNotCalled(t, "ApproveAndPromote", mock.Anything, mock.Anything)
}

func TestRejectRequest_RequiresReason(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	userRepo.On("GetByID", "lib-1").Return(librarianUser("lib-1"), nil)
	requestRepo.On("GetByID", "req-1").Return(&entity.LibrarianRequest{
		ID: "req-1", UserID: "user-1", Status: entity.RequestPending,
	}, nil)

	_, err := uc.Reject("req-1", "lib-1", "   ")

	assert.True(t, entity.IsValidation(err))
	requestRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCancelRequest_NothingPending(t *testing.T) {
	requestRepo := new(MockLibrarianRequestRepository)
	userRepo := new(MockUserRepository)
	uc := NewRequestUseCase(requestRepo, userRepo, nil, logger.New())

	requestRepo.On("DeletePending", "req-1", "user-1").Return(int64(0), nil)

	err := uc.Cancel("req-1", "user-1")
	assert.True(t, entity.IsNotFound(err))
}
