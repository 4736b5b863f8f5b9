package controller

import "github.com/labstack/echo/v4"

type PredictController interface {
	PredictCrop(c echo.Context) error
}
