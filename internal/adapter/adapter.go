package adapter

import (
	"context"

	"fitness-planner/internal/domain"
)

// Error constants shared by both adapter variants.
var (
	ErrNotFound = AdapterError("not found")
	ErrInvalid  = AdapterError("invalid request")
)

// AdapterError helps distinguish adapter-level failures from transport ones.
type AdapterError string

func (e AdapterError) Error() string {
	return string(e)
}

// Store is the persistence contract both variants satisfy: the local
// key-indexed record store and the remote HTTP API client. Reads are
// idempotent. UpdateUser is a whole-document replace, never a patch: callers
// must always send the full current representation of the user, or edits from
// elsewhere are silently lost. Deleting an already-deleted id is either a
// no-op or ErrNotFound depending on the variant; callers handle both.
type Store interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListMedia(ctx context.Context) ([]domain.Media, error)
	CreateMedia(ctx context.Context, media domain.Media) (domain.Media, error)
	DeleteMedia(ctx context.Context, id string) error
}
