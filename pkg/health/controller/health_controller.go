package controller

import "github.com/labstack/echo/v4"

type HealthController interface {
	Health(c echo.Context) error
	Ping(c echo.Context) error
	Routes(c echo.Context) error
}
