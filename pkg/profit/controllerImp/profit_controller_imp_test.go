package controllerImp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"agrosense/entities"
	"agrosense/pkg/district"
	"agrosense/pkg/httpx"
	"agrosense/pkg/profit/serviceImp"
)

type yields struct{}

func (yields) Load(context.Context) (*district.Table, error) {
	y := 40.0
	return district.NewTable([]entities.YieldRecord{
		{State: "Punjab", District: "Ludhiana", Season: "Kharif", Crop: "rice", AreaHa: 1, YieldQPerHa: &y},
	}), nil
}

type noPrices struct{}

func (noPrices) Find(context.Context, string) (*entities.PriceCostEntry, error) { return nil, nil }

func post(body string) *httptest.ResponseRecorder {
	h := New(serviceImp.NewProfitService(yields{}, noPrices{}, zap.NewNop()))
	e := echo.New()
	e.JSONSerializer = httpx.JSONSerializer{}
	req := httptest.NewRequest(http.MethodPost, "/profit-estimate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.Estimate(e.NewContext(req, rec))
	return rec
}

func TestEstimate_OK(t *testing.T) {
	t.Parallel()
	rec := post(`{"state":"punjab","district":"ludhiana","crop":"Rice","season":"","area_ha":"2.5","price_override":"","cost_override":60000}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"ok": true,
		"inputs": {"state":"Punjab","district":"Ludhiana","crop_input":"Rice","crop_dataset":"rice","season":null,"area_ha":2.5},
		"yield": {"yield_q_per_ha":40,"total_yield_quintal":100},
		"economics": {
			"price_rs_per_quintal_used": 2200,
			"cost_rs_per_hectare_used": 60000,
			"revenue_rs": 220000,
			"total_cost_rs": 150000,
			"profit_rs": 70000,
			"decision": "Grow",
			"price_note": "Fallback internal reference (demo)",
			"cost_note": "User override"
		}
	}`, rec.Body.String())
}

func TestEstimate_DefaultArea(t *testing.T) {
	t.Parallel()
	rec := post(`{"state":"Punjab","district":"Ludhiana","crop":"rice","area_ha":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"area_ha":1`)
}

func TestEstimate_BadInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, http.StatusBadRequest, post(`{"state":"Punjab","district":"Ludhiana"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"state":"Punjab","district":"Ludhiana","crop":"rice","area_ha":"big"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"state":"Punjab","district":"Ludhiana","crop":"rice","price_override":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{bad`).Code)
}

func TestEstimate_NotFound(t *testing.T) {
	t.Parallel()
	rec := post(`{"state":"Kerala","district":"Kochi","crop":"tea"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"No records for tea in Kochi, Kerala"}`, rec.Body.String())
}

func TestEstimate_RejectsNonFiniteFigures(t *testing.T) {
	t.Parallel()
	for name, body := range map[string]string{
		"nan price":     `{"state":"Punjab","district":"Ludhiana","crop":"rice","price_override":"NaN"}`,
		"-inf cost":     `{"state":"Punjab","district":"Ludhiana","crop":"rice","cost_override":"-Inf"}`,
		"inf area":      `{"state":"Punjab","district":"Ludhiana","crop":"rice","area_ha":"+Inf"}`,
		"overflow":      `{"state":"Punjab","district":"Ludhiana","crop":"rice","area_ha":"1e300","price_override":1e300}`,
		"beyond rupees": `{"state":"Punjab","district":"Ludhiana","crop":"rice","price_override":1e19}`,
	} {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec := post(body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"ok":false`)
			assert.NotContains(t, rec.Body.String(), "Grow")
		})
	}
}
