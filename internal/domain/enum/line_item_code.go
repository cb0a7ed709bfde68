package enum

// LineItemCode identifies one priced component of a booking on the wire
type LineItemCode string

const (
	LineItemNight              LineItemCode = "line-item/night"
	LineItemDay                LineItemCode = "line-item/day"
	LineItemHour               LineItemCode = "line-item/hour"
	LineItemUnits              LineItemCode = "line-item/units"
	LineItemProviderCommission LineItemCode = "line-item/provider-commission"
	LineItemCustomerCommission LineItemCode = "line-item/customer-commission"
)
