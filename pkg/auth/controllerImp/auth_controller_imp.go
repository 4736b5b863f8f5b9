package controllerImp

import (
	"strings"

	"github.com/labstack/echo/v4"

	"agrosense/entities"
	"agrosense/pkg/apperr"
	"agrosense/pkg/auth/controller"
	"agrosense/pkg/auth/service"
	"agrosense/pkg/httpx"
)

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authCtrl struct{ svc service.AuthService }

func NewAuthController(svc service.AuthService) controller.AuthController { return &authCtrl{svc: svc} }

func (h *authCtrl) Register(c echo.Context) error {
	const msg = "name, email, password required"
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return httpx.Fail(c, apperr.Validation(msg))
	}
	req.Name, req.Email = strings.TrimSpace(req.Name), strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return httpx.Fail(c, apperr.Validation(msg))
	}
	u, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, echo.Map{"user": publicUser(u)})
}

func (h *authCtrl) Login(c echo.Context) error {
	const msg = "email and password required"
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return httpx.Fail(c, apperr.Validation(msg))
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return httpx.Fail(c, apperr.Validation(msg))
	}
	u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpx.Fail(c, err)
	}
	return httpx.OK(c, echo.Map{"user": publicUser(u)})
}

func publicUser(u *entities.User) echo.Map {
	return echo.Map{"name": u.Name, "email": u.Email}
}
