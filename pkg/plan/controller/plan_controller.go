package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	CyclePlan(c echo.Context) error
}
