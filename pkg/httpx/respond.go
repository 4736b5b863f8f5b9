package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrosense/pkg/apperr"
)

// OK writes 200 with payload merged under ok:true.
func OK(c echo.Context, payload echo.Map) error {
	out := echo.Map{"ok": true}
	for k, v := range payload {
		out[k] = v
	}
	return c.JSON(http.StatusOK, out)
}

// Fail writes the {ok:false,error} envelope with the status mapped from err's kind.
func Fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"ok": false, "error": apperr.Message(err)})
}
