package controllerImp

import (
	"github.com/labstack/echo/v4"

	"agrosense/pkg/httpx"
	"agrosense/pkg/plan/controller"
	"agrosense/pkg/plan/service"
	"agrosense/pkg/plan/types"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) controller.PlanController { return &PlanCtrl{svc: svc} }

// CyclePlan handles POST /cycle-plan.
func (h *PlanCtrl) CyclePlan(c echo.Context) error {
	body, err := httpx.DecodeBody(c)
	if err != nil {
		return httpx.Fail(c, err)
	}
	p, err := h.svc.CyclePlan(types.CycleRequest{
		CurrentCrop: body.Str("current_crop"),
		SoilType:    body.Str("soil_type"),
		Region:      body.Str("region"),
	})
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, echo.Map{
		"current_crop":  p.CurrentCrop,
		"next_crop":     p.NextCrop,
		"region":        p.Region,
		"alternatives":  p.Alternatives,
		"guide":         p.Guide,
		"yield_compare": p.YieldCompare,
		"npk_balance":   p.NPKBalance,
		"season":        p.Season,
		"tips":          p.Tips,
		"plan12w":       p.Plan12W,
		"rationale":     p.Rationale,
	})
}
