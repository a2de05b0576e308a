package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/adboard/listings-api/internal/core/domain"
)

// CreateAdvertisementInput is the payload for listing creation. The caller
// always becomes the owner.
type CreateAdvertisementInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Author      string
}

// AdvertisementService exposes listing operations with ownership checks
// applied. The caller argument is the authenticated actor; nil means
// anonymous.
type AdvertisementService interface {
	Create(ctx context.Context, caller *domain.User, input CreateAdvertisementInput) (*domain.Advertisement, error)
	Get(ctx context.Context, id int64) (*domain.Advertisement, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Advertisement, error)
	Patch(ctx context.Context, caller *domain.User, id int64, patch AdvertisementPatch) (*domain.Advertisement, error)
	Delete(ctx context.Context, caller *domain.User, id int64) error
}
