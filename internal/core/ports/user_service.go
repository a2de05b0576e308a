package ports

import (
	"context"

	"github.com/adboard/listings-api/internal/core/domain"
)

// CreateUserInput is the payload for account creation. Group defaults to
// "user" when empty.
type CreateUserInput struct {
	Username string
	Password string
	Group    string
}

// UpdateUserInput is the sparse payload for a user patch. A nil field is
// left unchanged; Password is re-hashed before storage.
type UpdateUserInput struct {
	Username *string
	Password *string
	Group    *string
}

// UserService exposes account operations with authorization applied.
// The caller argument is the authenticated actor; nil means anonymous.
type UserService interface {
	Create(ctx context.Context, caller *domain.User, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, caller *domain.User, limit, offset int) ([]domain.User, error)
	Patch(ctx context.Context, caller *domain.User, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.User, id int64) error
}
