package enums

type PriceType string

const (
	PriceTypeFixed      PriceType = "Fixed"
	PriceTypeNegotiable PriceType = "Negotiable"
	PriceTypeDayRate    PriceType = "Day Rate"
)
