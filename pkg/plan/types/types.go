package types

import "agrosense/pkg/agronomy"

// WeekTask is one row of the 12-week action plan.
type WeekTask struct {
	Week int    `json:"week"`
	Task string `json:"task"`
}

type CycleRequest struct {
	CurrentCrop string
	SoilType    string
	Region      string
}

type YieldCompare struct {
	Current int    `json:"current"`
	Next    int    `json:"next"`
	Unit    string `json:"unit"`
}

type CyclePlan struct {
	CurrentCrop  string          `json:"current_crop"`
	NextCrop     string          `json:"next_crop"`
	Region       string          `json:"region"`
	Alternatives []string        `json:"alternatives"`
	Guide        agronomy.Guide  `json:"guide"`
	YieldCompare YieldCompare    `json:"yield_compare"`
	NPKBalance   agronomy.NPK    `json:"npk_balance"`
	Season       agronomy.Season `json:"season"`
	Tips         []string        `json:"tips"`
	Plan12W      []WeekTask      `json:"plan12w"`
	Rationale    string          `json:"rationale"`
}
