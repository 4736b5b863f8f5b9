package controllerImp

import (
	"github.com/labstack/echo/v4"

	"agrosense/pkg/district/controller"
	"agrosense/pkg/district/service"
	"agrosense/pkg/district/serviceImp"
	"agrosense/pkg/httpx"
)

type districtCtrl struct{ s service.DistrictService }

func New(s service.DistrictService) controller.DistrictController { return &districtCtrl{s: s} }

// States handles GET /regions/states.
func (h *districtCtrl) States(c echo.Context) error {
	states, err := h.s.States(c.Request().Context())
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, echo.Map{"states": states})
}

// Districts handles GET /regions/districts?state=.
func (h *districtCtrl) Districts(c echo.Context) error {
	state, districts, err := h.s.Districts(c.Request().Context(), c.QueryParam("state"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, echo.Map{"state": state, "districts": districts})
}

// Crops handles GET /regions/crops?state=&district=.
func (h *districtCtrl) Crops(c echo.Context) error {
	state, district, crops, err := h.s.Crops(c.Request().Context(), c.QueryParam("state"), c.QueryParam("district"))
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, echo.Map{"state": state, "district": district, "crops": crops})
}

// topN clamps top_n before the int conversion; values below 1 defer to the service default.
func topN(body httpx.Body) int {
	n := body.Float("top_n", serviceImp.DefaultTopN)
	switch {
	case n < 1:
		return 0
	case n > serviceImp.MaxTopN:
		return serviceImp.MaxTopN
	}
	return int(n)
}

// Recommend handles POST /district-reco.
func (h *districtCtrl) Recommend(c echo.Context) error {
	body, err := httpx.DecodeBody(c)
	if err != nil {
		return httpx.Fail(c, err)
	}
	res, err := h.s.Recommend(c.Request().Context(), service.RecoRequest{
		State:    body.Str("state"),
		District: body.Str("district"),
		Season:   body.Str("season"),
		TopN:     topN(body),
	})
	if err != nil {
		return httpx.Fail(c, err)
	}

	var season any
	if res.Season != "" {
		season = res.Season
	}
	return httpx.OK(c, echo.Map{
		"state":    res.State,
		"district": res.District,
		"season":   season,
		"unit":     "quintal/ha",
		"top":      res.Top,
		"chart":    res.Chart,
		"sources":  res.Sources,
	})
}
