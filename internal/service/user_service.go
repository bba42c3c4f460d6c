package service

import (
	"context"
	"errors"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// --- Service Interface ---
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// --- Service Implementation ---

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser persists a new user. A user created without a schedule gets the
// fixed seven-day starter template.
func (s *userService) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.Name == "" {
		return nil, ErrValidationFailed
	}
	if len(user.WorkoutDays) == 0 {
		user.WorkoutDays = domain.DefaultWorkoutDays()
	}

	id, err := s.userRepo.Create(ctx, &user)
	if err != nil {
		return nil, err
	}
	// Fetch again so timestamps set by the repository come back populated.
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser replaces the stored document with the given one. Whole-document
// semantics: the caller must send the full current representation.
func (s *userService) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, ErrValidationFailed
	}

	if err := s.userRepo.Replace(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrValidationFailed
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
