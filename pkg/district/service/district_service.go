package service

import "context"

type RecoRequest struct {
	State    string
	District string
	Season   string
	TopN     int
}

type Recommendation struct {
	Crop             string   `json:"crop"`
	AvgYield         float64  `json:"avg_yield"`
	SeasonWindow     string   `json:"season_window"`
	PreferredSeasons []string `json:"preferred_seasons"`
	Tips             []string `json:"tips"`
}

type ChartPoint struct {
	Name  string  `json:"name"`
	Yield float64 `json:"yield"`
}

type RecoResult struct {
	State    string
	District string
	Season   string
	Top      []Recommendation
	Chart    []ChartPoint
	Sources  []string
}

type DistrictService interface {
	States(ctx context.Context) ([]string, error)
	// Districts returns the canonical state it matched on alongside its districts.
	Districts(ctx context.Context, state string) (string, []string, error)
	Crops(ctx context.Context, state, district string) (string, string, []string, error)
	Recommend(ctx context.Context, in RecoRequest) (*RecoResult, error)
}
