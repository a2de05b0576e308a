package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adboard/listings-api/internal/api/metrics"
	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

const listingTTL = 5 * time.Minute

// ListingCache stores advertisement snapshots in Redis keyed by ID.
// Entries expire after a short TTL, so a stale read is bounded even
// when an invalidation is lost.
type ListingCache struct {
	client *redis.Client
}

var _ ports.ListingCache = (*ListingCache)(nil)

func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

func (c *ListingCache) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	raw, err := c.client.Get(ctx, listingKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var ad domain.Advertisement
	if err := json.Unmarshal(raw, &ad); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return &ad, nil
}

func (c *ListingCache) Set(ctx context.Context, ad *domain.Advertisement) error {
	raw, err := json.Marshal(ad)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err := c.client.Set(ctx, listingKey(ad.ID), raw, listingTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *ListingCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, listingKey(id)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}

func listingKey(id int64) string {
	return fmt.Sprintf("listing:%d", id)
}
