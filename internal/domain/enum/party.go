package enum

// Party represents a side of the transaction a line item is visible to
type Party string

const (
	PartyCustomer Party = "customer"
	PartyProvider Party = "provider"
)
