package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authCtrl "agrosense/pkg/auth/controller"
	districtCtrl "agrosense/pkg/district/controller"
	healthCtrl "agrosense/pkg/health/controller"
	planCtrl "agrosense/pkg/plan/controller"
	predictCtrl "agrosense/pkg/predict/controller"
	profitCtrl "agrosense/pkg/profit/controller"
)

// New mounts the JSON API twice: under /api, where the frontend calls it, and at the root.
func New(
	e *echo.Echo,
	predict predictCtrl.PredictController,
	plan planCtrl.PlanController,
	district districtCtrl.DistrictController,
	profit profitCtrl.ProfitController,
	auth authCtrl.AuthController,
	health healthCtrl.HealthController,
) *echo.Echo {
	for _, g := range []*echo.Group{e.Group("/api"), e.Group("")} {
		g.POST("/predict-crop", predict.PredictCrop)
		g.POST("/cycle-plan", plan.CyclePlan)

		g.GET("/regions/states", district.States)
		g.GET("/regions/districts", district.Districts)
		g.GET("/regions/crops", district.Crops)
		g.POST("/district-reco", district.Recommend)

		g.POST("/profit-estimate", profit.Estimate)

		g.POST("/register", auth.Register)
		g.POST("/login", auth.Login)

		g.GET("/ping", health.Ping)
		g.GET("/routes", health.Routes)
	}

	e.GET("/health", health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return e
}
