package request

import (
	"encoding/json"

	"github.com/sangkips/marketplace-api/internal/domain/entity"
)

// LineItemsRequest represents a booking price preview request from the
// storefront
type LineItemsRequest struct {
	IsOwnListing bool           `json:"isOwnListing"`
	ListingID    string         `json:"listingId" binding:"required"`
	BookingData  entity.Booking `json:"bookingData"`
}

// InitiateRequest represents a privileged transaction initiation request.
// BodyParams is kept as raw JSON so client fields that pass through reach
// the backend byte-for-byte; decimal amounts inside are never coerced
// through float64.
type InitiateRequest struct {
	IsSpeculative bool                       `json:"isSpeculative"`
	BookingData   entity.Booking             `json:"bookingData"`
	BodyParams    map[string]json.RawMessage `json:"bodyParams" binding:"required"`
	QueryParams   QueryParams                `json:"queryParams"`
}

// QueryParams holds the query string forwarded to the backend. Storefront
// clients send either the list form `{"expand":["true"]}` or the scalar form
// `{"expand":true}`; both decode to the same value list.
type QueryParams map[string][]string

func (q *QueryParams) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	params := make(QueryParams, len(raw))
	for key, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			params[key] = list
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			params[key] = []string{s}
			continue
		}

		// Booleans and numbers keep their literal form.
		params[key] = []string{string(value)}
	}

	*q = params
	return nil
}
