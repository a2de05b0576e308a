package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrAdvertisementNotFound = errors.New("advertisement not found")

// Advertisement is a marketplace listing.
//
// Author is a free-text display name and carries no access semantics;
// ownership is tracked separately through OwnerID. OwnerID becomes nil only
// when the owning user is deleted (SET NULL referential action), never by
// direct mutation.
type Advertisement struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Author      string          `json:"author"`
	OwnerID     *int64          `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
}
