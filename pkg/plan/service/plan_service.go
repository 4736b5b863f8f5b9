package service

import "agrosense/pkg/plan/types"

type PlanService interface {
	// CyclePlan picks the next rotation crop and assembles its agronomy guidance.
	CyclePlan(in types.CycleRequest) (*types.CyclePlan, error)
	// Weeks returns exactly 12 entries, weeks 1..12 ascending.
	Weeks(nextCrop string) []types.WeekTask
}
