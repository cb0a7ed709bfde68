package entity

import (
	"github.com/shopspring/decimal"

	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/money"
)

// LineItem is one priced component of a booking: the base unit price times
// quantity, or a commission derived from it. Amounts serialize as decimal
// strings so totals survive the wire without float rounding.
type LineItem struct {
	Code       enum.LineItemCode `json:"code"`
	UnitPrice  money.Money       `json:"unitPrice"`
	Quantity   decimal.Decimal   `json:"quantity"`
	LineTotal  money.Money       `json:"lineTotal"`
	Reversal   bool              `json:"reversal"`
	IncludeFor []enum.Party      `json:"includeFor"`
}

// VisibleTo checks whether the line item belongs to the given party's view
func (li *LineItem) VisibleTo(party enum.Party) bool {
	for _, p := range li.IncludeFor {
		if p == party {
			return true
		}
	}
	return false
}
