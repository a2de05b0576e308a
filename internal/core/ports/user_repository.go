package ports

import (
	"context"

	"github.com/adboard/listings-api/internal/core/domain"
)

// UserPatch carries the sparse-merge field set for a user update.
// Nil pointers leave the column untouched.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Group        *string
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Group == nil
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)

	// Update applies the patch atomically and returns the updated row, or
	// domain.ErrUserNotFound if the row vanished before the write.
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)

	// Delete removes the row; domain.ErrUserNotFound when id does not resolve.
	Delete(ctx context.Context, id int64) error
}
