package enum

// UnitType represents how a listing is booked and priced
type UnitType string

const (
	UnitTypeNight UnitType = "night"
	UnitTypeDay   UnitType = "day"
	UnitTypeHour  UnitType = "hour"
	UnitTypeUnit  UnitType = "unit"
)

// IsValid checks whether the unit type is one the pricing engine supports
func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeNight, UnitTypeDay, UnitTypeHour, UnitTypeUnit:
		return true
	}
	return false
}

// LineItemCode returns the wire code of the base line item for this unit type
func (u UnitType) LineItemCode() LineItemCode {
	switch u {
	case UnitTypeNight:
		return LineItemNight
	case UnitTypeDay:
		return LineItemDay
	case UnitTypeHour:
		return LineItemHour
	default:
		return LineItemUnits
	}
}
