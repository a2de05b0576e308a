package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adboard/listings-api/internal/core/domain"
)

// SearchFilter is the combined filter set for listing search. All provided
// filters are ANDed; Query is an OR-match across title, description and
// author. Limit and Offset are expected to be clamped by the caller.
type SearchFilter struct {
	Title       string
	Description string
	Author      string
	Query       string
	PriceFrom   *decimal.Decimal
	PriceTo     *decimal.Decimal
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// AdvertisementPatch carries the sparse-merge field set for a listing update.
type AdvertisementPatch struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Author      *string
}

// Empty reports whether the patch would change nothing.
func (p AdvertisementPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.Author == nil
}

// AdvertisementRepository defines persistence for listings.
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *domain.Advertisement) (*domain.Advertisement, error)
	FindByID(ctx context.Context, id int64) (*domain.Advertisement, error)

	// Search returns listings matching the filter, newest first.
	Search(ctx context.Context, filter SearchFilter) ([]domain.Advertisement, error)

	// Update applies the patch atomically and returns the updated row, or
	// domain.ErrAdvertisementNotFound if the row vanished before the write.
	Update(ctx context.Context, id int64, patch AdvertisementPatch) (*domain.Advertisement, error)

	// Delete removes the row; domain.ErrAdvertisementNotFound when id does
	// not resolve.
	Delete(ctx context.Context, id int64) error
}
