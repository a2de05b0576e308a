package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// UserService implements account CRUD with the access rules applied before
// any mutating repository call.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers an account. Anonymous callers and regular users may only
// request the "user" group; privileged callers may also create admins. No
// caller may create a root account.
func (s *UserService) Create(ctx context.Context, caller *domain.User, input ports.CreateUserInput) (*domain.User, error) {
	group := input.Group
	if group == "" {
		group = domain.GroupUser
	}
	if !domain.CanCreateUser(caller, group) {
		return nil, domain.ErrForbidden
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Group:        group,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("group", created.Group).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// List returns accounts page by page. Privileged callers only.
func (s *UserService) List(ctx context.Context, caller *domain.User, limit, offset int) ([]domain.User, error) {
	if caller == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if !domain.IsPrivileged(caller) {
		return nil, domain.ErrForbidden
	}
	limit, offset = clampPage(limit, offset)
	return s.users.List(ctx, limit, offset)
}

// Patch applies a sparse merge to the target account. Fields left nil are
// untouched; an entirely empty patch returns the current row unchanged.
func (s *UserService) Patch(ctx context.Context, caller *domain.User, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if caller == nil {
		return nil, domain.ErrNotAuthenticated
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyUser(caller, target) {
		return nil, domain.ErrForbidden
	}
	if input.Group != nil && !domain.CanChangeGroup(caller, *input.Group) {
		return nil, domain.ErrForbidden
	}

	patch := ports.UserPatch{Username: input.Username, Group: input.Group}
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	if patch.Empty() {
		return target, nil
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Int64("caller_id", caller.ID).Msg("user updated")
	return updated, nil
}

// Delete removes the target account. Root accounts are never deletable;
// otherwise self or privilege decides. Owned listings survive with their
// owner reference cleared by the schema's SET NULL action.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, id int64) error {
	if caller == nil {
		return domain.ErrNotAuthenticated
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDeleteUser(caller, target) {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("caller_id", caller.ID).Msg("user deleted")
	return nil
}

// clampPage normalises pagination: limit into [1,200] with a default of 50,
// offset to a minimum of 0.
func clampPage(limit, offset int) (int, int) {
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
