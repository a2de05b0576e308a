package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adboard/listings-api/internal/core/domain"
)

// Row models mirror the migrated schema; column defaults (ids, created_at)
// are assigned by the database, not by gorm.

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username"`
	PasswordHash string    `gorm:"column:password_hash"`
	Group        string    `gorm:"column:group"`
	CreatedAt    time.Time `gorm:"column:created_at;->"`
}

func (userModel) TableName() string { return "users" }

func (m *userModel) toEntity() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Group:        m.Group,
		CreatedAt:    m.CreatedAt,
	}
}

type advertisementModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Title       string          `gorm:"column:title"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Author      string          `gorm:"column:author"`
	OwnerID     *int64          `gorm:"column:owner_id"`
	CreatedAt   time.Time       `gorm:"column:created_at;->"`
}

func (advertisementModel) TableName() string { return "advertisements" }

func (m *advertisementModel) toEntity() *domain.Advertisement {
	return &domain.Advertisement{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Author:      m.Author,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
	}
}
