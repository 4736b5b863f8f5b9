package service

import "context"

type Input struct {
	State         string
	District      string
	Crop          string
	Season        string
	AreaHa        float64
	PriceOverride *float64
	CostOverride  *float64
}

// Estimate carries the normalized inputs and the computed economics.
// Money fields are whole rupees; yields are rounded to two decimals.
type Estimate struct {
	State       string
	District    string
	CropInput   string
	CropDataset string
	Season      string
	AreaHa      float64

	YieldPerHa float64
	TotalYield float64

	PriceUsed int64
	CostUsed  int64
	Revenue   int64
	TotalCost int64
	Profit    int64
	Decision  string
	PriceNote string
	CostNote  string
}

type ProfitService interface {
	Estimate(ctx context.Context, in Input) (*Estimate, error)
}
