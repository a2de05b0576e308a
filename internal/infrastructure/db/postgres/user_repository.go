package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

// UserRepository persists user accounts in Postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the account and returns the stored row, with the
// database-assigned id and creation timestamp.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := userModel{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Group:        user.Group,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	return r.FindByID(ctx, row.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var rows []userModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].toEntity())
	}
	return users, nil
}

// Update applies the sparse patch in a single conditional UPDATE. When the
// row vanished between the caller's read and this write the statement
// affects nothing and ErrUserNotFound is returned; there is no in-process
// locking across that gap.
func (r *UserRepository) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	values := map[string]any{}
	if patch.Username != nil {
		values["username"] = *patch.Username
	}
	if patch.PasswordHash != nil {
		values["password_hash"] = *patch.PasswordHash
	}
	if patch.Group != nil {
		values["group"] = *patch.Group
	}
	if len(values) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, domain.ErrUserExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
