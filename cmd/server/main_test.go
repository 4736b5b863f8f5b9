package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agrosense/config"
)

const dataset = `State,District,Year,Season,Crop,Area,Production
punjab,ludhiana,2020,kharif,Rice,100,4000
Punjab,Ludhiana,2021,Rabi,wheat,100,4500
Punjab,Amritsar,2021,Rabi,wheat,50,2000
Kerala,Idukki,2021,Kharif,tea,10,120
`

func newTestServer(t *testing.T, withData bool) *echo.Echo {
	t.Helper()
	dir := t.TempDir()
	cfg := config.AppConfig{
		Port:             "0",
		DBPath:           filepath.Join(dir, "users.db"),
		DistrictDataPath: filepath.Join(dir, "district_crop_yield.csv"),
		PriceCostPath:    filepath.Join(dir, "price_cost_reference.csv"),
		FeatureOrderPath: filepath.Join(dir, "feature_order.json"),
		WeatherTimeout:   time.Second,
		BreakerFailures:  3,
		BreakerOpenFor:   time.Minute,
		CORSOrigins:      []string{"http://localhost:5173"},
	}
	if withData {
		require.NoError(t, os.WriteFile(cfg.DistrictDataPath, []byte(dataset), 0o644))
	}
	e, closeDB, err := buildServer(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(closeDB)
	return e
}

func call(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_BothPrefixes(t *testing.T) {
	t.Parallel()
	e := newTestServer(t, true)
	for _, prefix := range []string{"", "/api"} {
		rec := call(e, http.MethodGet, prefix+"/regions/states", "")
		assert.Equal(t, http.StatusOK, rec.Code, prefix)
		assert.JSONEq(t, `{"ok":true,"states":["Kerala","Punjab"]}`, rec.Body.String(), prefix)
	}
}

func TestServer_Scenarios(t *testing.T) {
	t.Parallel()
	e := newTestServer(t, true)

	rec := call(e, http.MethodPost, "/api/cycle-plan", `{"current_crop":"chickpea","region":"Nowhere"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"next_crop":"maize"`)

	rec = call(e, http.MethodPost, "/api/predict-crop", `{"rainfall":250,"ph":6.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"recommendation":"rice"`)
	assert.Contains(t, rec.Body.String(), `"source":"fallback"`)

	rec = call(e, http.MethodPost, "/api/district-reco", `{"state":"punjab","district":"ludhiana"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var reco struct {
		Top []struct {
			Crop string `json:"crop"`
		} `json:"top"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reco))
	require.Len(t, reco.Top, 2)
	assert.Equal(t, "wheat", reco.Top[0].Crop)

	rec = call(e, http.MethodPost, "/api/profit-estimate", `{"state":"Punjab","district":"Ludhiana","crop":"cotton"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(e, http.MethodGet, "/api/regions/districts", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_MissingDataset(t *testing.T) {
	t.Parallel()
	e := newTestServer(t, false)

	rec := call(e, http.MethodGet, "/api/regions/states", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)

	// endpoints without the dataset keep working
	rec = call(e, http.MethodGet, "/api/ping", "")
	assert.JSONEq(t, `{"ok":true,"message":"pong"}`, rec.Body.String())
}

func TestServer_Introspection(t *testing.T) {
	t.Parallel()
	e := newTestServer(t, true)

	rec := call(e, http.MethodGet, "/routes", "")
	var routes struct {
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	assert.Contains(t, routes.Routes, "/api/predict-crop")
	assert.Contains(t, routes.Routes, "/profit-estimate")
	assert.IsIncreasing(t, routes.Routes)

	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/health", "").Code)

	rec = call(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agrosense_dataset_rows")

	rec = call(e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Not Found"}`, rec.Body.String())
}
