package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adboard/listings-api/internal/core/domain"
	"github.com/adboard/listings-api/internal/core/ports"
)

// AdvertisementRepository persists listings in Postgres.
type AdvertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

func (r *AdvertisementRepository) Create(ctx context.Context, ad *domain.Advertisement) (*domain.Advertisement, error) {
	row := advertisementModel{
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		Author:      ad.Author,
		OwnerID:     ad.OwnerID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, row.ID)
}

func (r *AdvertisementRepository) FindByID(ctx context.Context, id int64) (*domain.Advertisement, error) {
	var row advertisementModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdvertisementNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

// Search combines all provided filters with AND; the q term expands to an
// OR across title, description and author. Matching is case-insensitive
// substring (ILIKE), ordering is newest first.
func (r *AdvertisementRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.Advertisement, error) {
	tx := r.db.WithContext(ctx).Model(&advertisementModel{})

	if filter.Title != "" {
		tx = tx.Where("title ILIKE ?", pattern(filter.Title))
	}
	if filter.Description != "" {
		tx = tx.Where("description ILIKE ?", pattern(filter.Description))
	}
	if filter.Author != "" {
		tx = tx.Where("author ILIKE ?", pattern(filter.Author))
	}
	if filter.Query != "" {
		p := pattern(filter.Query)
		tx = tx.Where(
			r.db.Where("title ILIKE ?", p).
				Or("description ILIKE ?", p).
				Or("author ILIKE ?", p),
		)
	}
	if filter.PriceFrom != nil {
		tx = tx.Where("price >= ?", *filter.PriceFrom)
	}
	if filter.PriceTo != nil {
		tx = tx.Where("price <= ?", *filter.PriceTo)
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *filter.CreatedTo)
	}

	var rows []advertisementModel
	err := tx.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	ads := make([]domain.Advertisement, 0, len(rows))
	for i := range rows {
		ads = append(ads, *rows[i].toEntity())
	}
	return ads, nil
}

// Update applies the sparse patch in a single conditional UPDATE; a row
// that vanished before the write surfaces as ErrAdvertisementNotFound.
// owner_id is deliberately not patchable.
func (r *AdvertisementRepository) Update(ctx context.Context, id int64, patch ports.AdvertisementPatch) (*domain.Advertisement, error) {
	values := map[string]any{}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.Price != nil {
		values["price"] = *patch.Price
	}
	if patch.Author != nil {
		values["author"] = *patch.Author
	}
	if len(values) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.db.WithContext(ctx).
		Model(&advertisementModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrAdvertisementNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *AdvertisementRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&advertisementModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAdvertisementNotFound
	}
	return nil
}

func pattern(term string) string {
	return "%" + term + "%"
}
