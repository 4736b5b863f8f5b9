package entities

// PriceCostEntry is a row of the price/cost reference table. Either figure may be missing.
type PriceCostEntry struct {
	Crop              string
	PriceRsPerQuintal *float64
	CostRsPerHectare  *float64
}
