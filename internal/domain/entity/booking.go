package entity

import "time"

// Booking holds the client-submitted booking parameters. It is untrusted
// input: it carries dates and quantities only, never prices. Field names
// follow the storefront wire format.
type Booking struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Units     int64      `json:"units,omitempty"`
}

// HasDates checks whether both booking dates are present
func (b *Booking) HasDates() bool {
	return b.StartDate != nil && b.EndDate != nil
}
