package ports

import (
	"context"

	"github.com/adboard/listings-api/internal/core/domain"
)

// ListingCache is a read-through cache for single-listing lookups.
// A cache failure must never fail the request; implementations return
// (nil, nil) on miss.
type ListingCache interface {
	Get(ctx context.Context, id int64) (*domain.Advertisement, error)
	Set(ctx context.Context, ad *domain.Advertisement) error
	Invalidate(ctx context.Context, id int64) error
}
