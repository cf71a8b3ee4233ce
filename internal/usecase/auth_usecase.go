package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"openshelf/internal/entity"
	"openshelf/internal/repo/persistent"
	"openshelf/pkg/jwt"
	"openshelf/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string
	FullName string
	Password string
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type AuthUseCase interface {
	Register(input RegisterInput) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID, fullName string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account with the member role and returns a signed
// session token.
func (uc *authUseCase) Register(input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, entity.NewValidation("a valid email is required")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, entity.NewValidation("full name cannot be empty")
	}
	if len(input.Password) < 8 {
		return nil, entity.NewValidation("password must be at least 8 characters")
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, entity.NewConflict("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Email:       email,
		FullName:    input.FullName,
		Password:    string(hashed),
		Role:        entity.RoleMember,
		MemberSince: &now,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user %s: %v", email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *authUseCase) Login(email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewAuth("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, entity.NewAuth("invalid email or password")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.NewNotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID, fullName string) (*entity.User, error) {
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeName(fullName); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
