package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginTaken           = errors.New("login already exists")
	ErrLoginRequired        = errors.New("login is required")
	ErrInvalidRole          = errors.New("role must be one of contractor, supervisor, manager")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user registration business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// RegisterUserInput represents the required information to create a new user.
type RegisterUserInput struct {
	Login    string
	Password string
	Name     string
	Role     models.Role
}

// RegisterUser creates a new user after checking that the login is free.
// The check and the insert are separate units of work; the unique index on
// login catches the losing side of a registration race.
func (s *UserService) RegisterUser(ctx context.Context, input RegisterUserInput) (*models.User, error) {
	login := strings.TrimSpace(input.Login)
	if login == "" {
		return nil, ErrLoginRequired
	}
	if !input.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByLogin(ctx, login); err == nil {
		return nil, ErrLoginTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check login: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Login:        login,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
