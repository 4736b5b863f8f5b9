package controllerImp

import (
	"github.com/labstack/echo/v4"

	"agrosense/pkg/apperr"
	"agrosense/pkg/httpx"
	"agrosense/pkg/predict/controller"
	"agrosense/pkg/predict/service"
)

type PredictCtrl struct{ svc service.PredictService }

func New(svc service.PredictService) controller.PredictController { return &PredictCtrl{svc: svc} }

// PredictCrop handles POST /predict-crop. Soil readings that are missing or
// unparseable take their defaults rather than failing the request.
func (h *PredictCtrl) PredictCrop(c echo.Context) error {
	body, err := httpx.DecodeBody(c)
	if err != nil {
		return httpx.Fail(c, apperr.Validation("Prediction failed: %s", apperr.Message(err)))
	}
	r := h.svc.Predict(c.Request().Context(), service.Features{
		N:           body.Float("N", 0),
		P:           body.Float("P", 0),
		K:           body.Float("K", 0),
		PH:          body.Float("ph", 7.0),
		Rainfall:    body.Float("rainfall", 0),
		Temperature: body.OptFloat("temperature"),
		Humidity:    body.OptFloat("humidity"),
		City:        body.Str("city"),
	})
	return httpx.OK(c, echo.Map{
		"recommendation": r.Crop,
		"source":         r.Source,
		"inputs": echo.Map{
			"N":                r.N,
			"P":                r.P,
			"K":                r.K,
			"ph":               r.PH,
			"rainfall":         r.Rainfall,
			"temperature":      r.Temperature,
			"humidity":         r.Humidity,
			"city":             r.City,
			"used_weather_api": r.UsedWeather,
		},
	})
}
