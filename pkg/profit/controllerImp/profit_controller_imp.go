package controllerImp

import (
	"github.com/labstack/echo/v4"

	"agrosense/pkg/httpx"
	"agrosense/pkg/profit/controller"
	"agrosense/pkg/profit/service"
)

type profitCtrl struct{ s service.ProfitService }

func New(s service.ProfitService) controller.ProfitController { return &profitCtrl{s: s} }

// Estimate handles POST /profit-estimate.
func (h *profitCtrl) Estimate(c echo.Context) error {
	body, err := httpx.DecodeBody(c)
	if err != nil {
		return httpx.Fail(c, err)
	}
	in := service.Input{
		State:    body.Str("state"),
		District: body.Str("district"),
		Crop:     body.Str("crop"),
		Season:   body.Str("season"),
	}
	area, err := body.Override("area_ha")
	if err != nil {
		return httpx.Fail(c, err)
	}
	if area != nil {
		in.AreaHa = *area
	}
	if in.PriceOverride, err = body.Override("price_override"); err != nil {
		return httpx.Fail(c, err)
	}
	if in.CostOverride, err = body.Override("cost_override"); err != nil {
		return httpx.Fail(c, err)
	}

	est, err := h.s.Estimate(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(c, err)
	}

	var season any
	if est.Season != "" {
		season = est.Season
	}
	return httpx.OK(c, echo.Map{
		"inputs": echo.Map{
			"state":        est.State,
			"district":     est.District,
			"crop_input":   est.CropInput,
			"crop_dataset": est.CropDataset,
			"season":       season,
			"area_ha":      est.AreaHa,
		},
		"yield": echo.Map{
			"yield_q_per_ha":      est.YieldPerHa,
			"total_yield_quintal": est.TotalYield,
		},
		"economics": echo.Map{
			"price_rs_per_quintal_used": est.PriceUsed,
			"cost_rs_per_hectare_used":  est.CostUsed,
			"revenue_rs":                est.Revenue,
			"total_cost_rs":             est.TotalCost,
			"profit_rs":                 est.Profit,
			"decision":                  est.Decision,
			"price_note":                est.PriceNote,
			"cost_note":                 est.CostNote,
		},
	})
}
