package repository

import (
	"context"

	"fitness-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user documents.
// Replace is a whole-document overwrite: the stored user, including nested
// days and items, is swapped for the given one.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Replace(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// MediaRepository defines the interface for interacting with media documents.
type MediaRepository interface {
	List(ctx context.Context) ([]domain.Media, error)
	Create(ctx context.Context, media *domain.Media) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Media, error)
	Delete(ctx context.Context, id string) error
}
