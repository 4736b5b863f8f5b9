package serviceImp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"agrosense/pkg/agronomy"
	"agrosense/pkg/apperr"
	"agrosense/pkg/plan/service"
	"agrosense/pkg/plan/types"
	"agrosense/pkg/region"
	"agrosense/pkg/rotation"
)

type PlanSvc struct {
	rotation  *rotation.Resolver
	agronomy  agronomy.Tables
	templates Templates
	log       *zap.Logger
}

func NewPlanService(r *rotation.Resolver, a agronomy.Tables, t Templates, log *zap.Logger) service.PlanService {
	return &PlanSvc{rotation: r, agronomy: a, templates: t, log: log}
}

func (s *PlanSvc) Weeks(nextCrop string) []types.WeekTask { return s.templates.Build(nextCrop) }

func (s *PlanSvc) CyclePlan(in types.CycleRequest) (*types.CyclePlan, error) {
	curr := strings.ToLower(strings.TrimSpace(in.CurrentCrop))
	if curr == "" {
		return nil, apperr.Validation("current_crop is required")
	}
	state := region.Normalize(in.Region)

	next := s.rotation.NextCrop(curr, state)
	season := s.agronomy.Season(state, next)
	s.log.Debug("cycle plan resolved",
		zap.String("current", curr), zap.String("region_raw", in.Region),
		zap.String("region", state), zap.String("soil", in.SoilType), zap.String("next", next))

	return &types.CyclePlan{
		CurrentCrop:  curr,
		NextCrop:     next,
		Region:       state,
		Alternatives: s.rotation.Alternatives(curr, next),
		Guide:        s.agronomy.GuideFor(next, curr),
		YieldCompare: types.YieldCompare{
			Current: s.agronomy.AvgYield(curr),
			Next:    s.agronomy.AvgYield(next),
			Unit:    "quintal/ha",
		},
		NPKBalance: s.agronomy.NPK(next),
		Season:     season,
		Tips:       s.agronomy.Tips(next),
		Plan12W:    s.templates.Build(next),
		Rationale:  rationale(curr, next, season.Preferred),
	}, nil
}

func rationale(curr, next string, seasons []string) string {
	return fmt.Sprintf(
		"Rotating from %s to %s improves soil health and breaks pest/disease cycles. "+
			"Adopt the recommended nutrient & water schedule. "+
			"Recommended seasons: %s.",
		capitalize(curr), capitalize(next), strings.Join(seasons, ", "))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}
