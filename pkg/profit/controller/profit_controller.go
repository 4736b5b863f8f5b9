package controller

import "github.com/labstack/echo/v4"

type ProfitController interface {
	Estimate(c echo.Context) error
}
