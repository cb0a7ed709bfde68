package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/money"
)

// PricingService computes the line-item breakdown of a booking. It is a pure
// computation over the listing snapshot and booking parameters: no I/O, no
// clock reads, so identical inputs always produce identical output.
type PricingService struct {
	providerCommissionPct decimal.Decimal
	customerCommissionPct decimal.Decimal
}

// NewPricingService creates a new pricing service from the configured
// commission percentages
func NewPricingService(cfg *config.CommissionConfig) *PricingService {
	return &PricingService{
		providerCommissionPct: decimal.NewFromFloat(cfg.ProviderPercent),
		customerCommissionPct: decimal.NewFromFloat(cfg.CustomerPercent),
	}
}

// ComputeLineItems derives the ordered line items for a forward (non-refund)
// booking: the base unit item first, then provider and customer commissions.
// The listing price is the only price source; the booking contributes dates
// and quantities only.
func (s *PricingService) ComputeLineItems(listing *entity.Listing, booking *entity.Booking) ([]entity.LineItem, error) {
	if listing == nil || !listing.HasPrice() {
		return nil, apperror.ErrMissingPrice
	}
	if !listing.UnitType.IsValid() {
		return nil, apperror.NewUnsupportedUnitTypeError(string(listing.UnitType))
	}

	quantity, err := bookingQuantity(listing.UnitType, booking)
	if err != nil {
		return nil, err
	}

	unitPrice := *listing.Price
	baseTotal := unitPrice.Mul(quantity)

	items := []entity.LineItem{
		{
			Code:       listing.UnitType.LineItemCode(),
			UnitPrice:  unitPrice,
			Quantity:   quantity,
			LineTotal:  baseTotal,
			IncludeFor: []enum.Party{enum.PartyCustomer, enum.PartyProvider},
		},
	}

	// Provider commission reduces the payout, so its total is negative.
	if s.providerCommissionPct.IsPositive() {
		commission := baseTotal.Pct(s.providerCommissionPct).Negate()
		items = append(items, entity.LineItem{
			Code:       enum.LineItemProviderCommission,
			UnitPrice:  commission,
			Quantity:   decimal.NewFromInt(1),
			LineTotal:  commission,
			IncludeFor: []enum.Party{enum.PartyProvider},
		})
	}

	// Customer commission is charged on top of the base total.
	if s.customerCommissionPct.IsPositive() {
		commission := baseTotal.Pct(s.customerCommissionPct)
		items = append(items, entity.LineItem{
			Code:       enum.LineItemCustomerCommission,
			UnitPrice:  commission,
			Quantity:   decimal.NewFromInt(1),
			LineTotal:  commission,
			IncludeFor: []enum.Party{enum.PartyCustomer},
		})
	}

	return items, nil
}

// ComputeReversal negates a forward computation for cancellations. Quantities
// and totals are negated as-is, never re-rounded, so the reversal offsets the
// forward charge exactly.
func (s *PricingService) ComputeReversal(items []entity.LineItem) []entity.LineItem {
	reversed := make([]entity.LineItem, len(items))
	for i, item := range items {
		reversed[i] = entity.LineItem{
			Code:       item.Code,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity.Neg(),
			LineTotal:  item.LineTotal.Negate(),
			Reversal:   true,
			IncludeFor: item.IncludeFor,
		}
	}
	return reversed
}

// Totals sums the customer-visible and provider-visible line totals. The
// first is what the customer pays, the second the provider payout.
func Totals(items []entity.LineItem) (payin, payout money.Money, err error) {
	if len(items) == 0 {
		return money.Money{}, money.Money{}, apperror.NewBadRequestError("No line items to total")
	}

	currency := items[0].LineTotal.Currency
	payin = money.New(0, currency)
	payout = money.New(0, currency)

	for i := range items {
		if items[i].VisibleTo(enum.PartyCustomer) {
			if payin, err = payin.Add(items[i].LineTotal); err != nil {
				return money.Money{}, money.Money{}, err
			}
		}
		if items[i].VisibleTo(enum.PartyProvider) {
			if payout, err = payout.Add(items[i].LineTotal); err != nil {
				return money.Money{}, money.Money{}, err
			}
		}
	}
	return payin, payout, nil
}

// bookingQuantity resolves the booking parameters into a positive quantity of
// booking units consistent with the listing's unit type
func bookingQuantity(unitType enum.UnitType, booking *entity.Booking) (decimal.Decimal, error) {
	if booking == nil {
		return decimal.Zero, apperror.NewInvalidBookingRangeError("Booking data is required")
	}

	switch unitType {
	case enum.UnitTypeNight, enum.UnitTypeDay:
		if !booking.HasDates() {
			return decimal.Zero, apperror.NewInvalidBookingRangeError("Booking requires startDate and endDate")
		}
		days := daysBetween(*booking.StartDate, *booking.EndDate)
		if days < 1 {
			return decimal.Zero, apperror.ErrInvalidBookingRange
		}
		return decimal.NewFromInt(days), nil

	case enum.UnitTypeHour:
		if !booking.HasDates() {
			return decimal.Zero, apperror.NewInvalidBookingRangeError("Booking requires startDate and endDate")
		}
		duration := booking.EndDate.Sub(*booking.StartDate)
		if duration <= 0 {
			return decimal.Zero, apperror.ErrInvalidBookingRange
		}
		// Fractional hours at full nanosecond precision; truncating first
		// would let a sub-second range slip through as quantity zero.
		quantity := decimal.NewFromInt(int64(duration)).Div(decimal.NewFromInt(int64(time.Hour)))
		if !quantity.IsPositive() {
			return decimal.Zero, apperror.ErrInvalidBookingRange
		}
		return quantity, nil

	case enum.UnitTypeUnit:
		if booking.Units < 1 {
			return decimal.Zero, apperror.NewInvalidBookingRangeError("Booking requires a positive unit count")
		}
		return decimal.NewFromInt(booking.Units), nil
	}

	return decimal.Zero, apperror.NewUnsupportedUnitTypeError(string(unitType))
}

// daysBetween counts calendar days from start (inclusive) to end (exclusive),
// ignoring the time-of-day component
func daysBetween(start, end time.Time) int64 {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int64(endDay.Sub(startDay) / (24 * time.Hour))
}
