package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

// AdvertisementService implements listing CRUD and search with ownership
// checks applied before any mutating repository call. Reads of single
// listings go through an optional cache; cache failures are logged and the
// request falls back to the repository.
type AdvertisementService struct {
	ads    ports.AdvertisementRepository
	cache  ports.ListingCache
	logger zerolog.Logger
}

// NewAdvertisementService wires the service. cache may be nil to disable
// read caching entirely.
func NewAdvertisementService(ads ports.AdvertisementRepository, cache ports.ListingCache, logger zerolog.Logger) *AdvertisementService {
	return &AdvertisementService{ads: ads, cache: cache, logger: logger}
}

// Create stores a new listing owned by the caller. Authentication is
// mandatory; ownership is fixed at creation time and never directly mutable.
func (s *AdvertisementService) Create(ctx context.Context, caller *domain.User, input ports.CreateAdvertisementInput) (*domain.Advertisement, error) {
	if caller == nil {
		return nil, domain.ErrNotAuthenticated
	}

	ownerID := caller.ID
	created, err := s.ads.Create(ctx, &domain.Advertisement{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price.Round(2),
		Author:      input.Author,
		OwnerID:     &ownerID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("advertisement_id", created.ID).Int64("owner_id", caller.ID).Msg("advertisement created")
	return created, nil
}

// Get returns a single listing, serving from cache when possible.
func (s *AdvertisementService) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Debug().Err(err).Int64("advertisement_id", id).Msg("listing cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ad); err != nil {
			s.logger.Debug().Err(err).Int64("advertisement_id", id).Msg("listing cache write failed")
		}
	}
	return ad, nil
}

// Search returns listings matching the filter, newest first, with
// pagination clamped to the same bounds as user listing.
func (s *AdvertisementService) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.Advertisement, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)
	return s.ads.Search(ctx, filter)
}

// Patch applies a sparse merge to the listing. Owner or privileged callers
// only; an orphaned listing is reachable only by privilege.
func (s *AdvertisementService) Patch(ctx context.Context, caller *domain.User, id int64, patch ports.AdvertisementPatch) (*domain.Advertisement, error) {
	if caller == nil {
		return nil, domain.ErrNotAuthenticated
	}

	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyListing(caller, ad) {
		return nil, domain.ErrForbidden
	}

	if patch.Empty() {
		return ad, nil
	}
	if patch.Price != nil {
		rounded := patch.Price.Round(2)
		patch.Price = &rounded
	}

	updated, err := s.ads.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Int64("advertisement_id", id).Int64("caller_id", caller.ID).Msg("advertisement updated")
	return updated, nil
}

// Delete removes the listing. Owner or privileged callers only.
func (s *AdvertisementService) Delete(ctx context.Context, caller *domain.User, id int64) error {
	if caller == nil {
		return domain.ErrNotAuthenticated
	}

	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDeleteListing(caller, ad) {
		return domain.ErrForbidden
	}

	if err := s.ads.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Int64("advertisement_id", id).Int64("caller_id", caller.ID).Msg("advertisement deleted")
	return nil
}

func (s *AdvertisementService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Debug().Err(err).Int64("advertisement_id", id).Msg("listing cache invalidation failed")
	}
}
