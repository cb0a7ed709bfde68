package entity

import (
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/money"
)

// Listing is an immutable snapshot of a marketplace listing, fetched fresh
// from the backend for every pricing request. Its price is the only
// authoritative price source; client-submitted prices are never used.
type Listing struct {
	ID       string        `json:"id"`
	Price    *money.Money  `json:"price,omitempty"`
	UnitType enum.UnitType `json:"unitType"`
	AuthorID string        `json:"authorId,omitempty"`
	Deleted  bool          `json:"deleted"`
}

// HasPrice checks whether the listing carries a usable price
func (l *Listing) HasPrice() bool {
	return l.Price != nil && l.Price.Currency != "" && l.Price.IsPositive()
}
