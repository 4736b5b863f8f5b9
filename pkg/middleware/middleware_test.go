package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"agrosense/pkg/apperr"
	"agrosense/pkg/metrics"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())
	e.Use(RequestID(), RequestLog(zap.NewNop()), Metrics(), echoMiddleware.Recover())
	e.GET("/boom", func(echo.Context) error { panic("boom") })
	e.GET("/gone", func(echo.Context) error { return apperr.NotFound("nothing here") })
	e.GET("/fine", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/counted", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestErrorHandler_Envelope(t *testing.T) {
	t.Parallel()
	e := newEcho()

	rec := serve(e, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Not Found"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/gone")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"nothing here"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"internal server error"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	rec := serve(newEcho(), http.MethodGet, "/fine")
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestMetrics_CountsByRoute(t *testing.T) {
	t.Parallel()
	e := newEcho()
	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/counted", "200"))
	serve(e, http.MethodGet, "/counted")
	serve(e, http.MethodGet, "/counted")
	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/counted", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestCORS(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.Use(CORS([]string{"http://localhost:5173"}))
	e.GET("/fine", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/fine", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/fine", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
