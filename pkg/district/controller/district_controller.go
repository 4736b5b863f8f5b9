package controller

import "github.com/labstack/echo/v4"

type DistrictController interface {
	States(c echo.Context) error
	Districts(c echo.Context) error
	Crops(c echo.Context) error
	Recommend(c echo.Context) error
}
