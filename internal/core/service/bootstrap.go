package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

// EnsureRootUser provisions the root account from configuration before the
// API accepts traffic. It is the only path that may create a root-group
// user.
//
// Idempotent across restarts: when the configured username already exists
// the row is left untouched, whatever its password or group. When either
// value is empty nothing happens and no error is raised; root simply stays
// unreachable until configured.
func EnsureRootUser(ctx context.Context, users ports.UserRepository, username, password string, logger zerolog.Logger) error {
	if username == "" || password == "" {
		logger.Info().Msg("root bootstrap skipped: credentials not configured")
		return nil
	}

	if len(password) > maxPasswordBytes {
		return fmt.Errorf("bootstrap root password exceeds %d bytes (bcrypt limit)", maxPasswordBytes)
	}

	existing, err := users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap root lookup: %w", err)
	}
	if existing != nil {
		logger.Info().Str("username", username).Msg("root bootstrap skipped: user already exists")
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("bootstrap root hash: %w", err)
	}

	created, err := users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Group:        domain.GroupRoot,
	})
	if err != nil {
		return fmt.Errorf("bootstrap root create: %w", err)
	}

	logger.Info().Int64("user_id", created.ID).Str("username", username).Msg("root user provisioned")
	return nil
}
