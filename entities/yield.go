package entities

// YieldRecord is one cleaned row of the district crop-yield dataset.
// State and District are title-cased, Crop is lowercase.
type YieldRecord struct {
	State       string
	District    string
	Year        *int
	Season      string
	Crop        string
	AreaHa      float64
	ProductionQ *float64
	// nil only before derivation; cleaned records always carry a value
	YieldQPerHa *float64
}

// Yield returns the per-hectare yield, 0 when not yet derived.
func (r YieldRecord) Yield() float64 {
	if r.YieldQPerHa == nil {
		return 0
	}
	return *r.YieldQPerHa
}
