package ports

import (
	"context"

	"github.com/adboard/listings-api/internal/core/domain"
)

// AuthService verifies credentials and issues signed session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
