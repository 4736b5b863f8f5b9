package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosense/pkg/apperr"
)

func newCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDecodeBody_Lenient(t *testing.T) {
	t.Parallel()
	c, _ := newCtx(`{"N":"12.5","P":7,"ph":"","rainfall":"abc","city":"  Pune ","price_override":"","cost_override":"40000"}`)
	b, err := DecodeBody(c)
	require.NoError(t, err)

	assert.Equal(t, 12.5, b.Float("N", 0))
	assert.Equal(t, 7.0, b.Float("P", 0))
	assert.Equal(t, 7.0, b.Float("ph", 7.0))
	assert.Equal(t, 0.0, b.Float("rainfall", 0))
	assert.Equal(t, 3.0, b.Float("missing", 3))
	assert.Equal(t, "Pune", b.Str("city"))
	assert.Nil(t, b.OptFloat("temperature"))

	p, err := b.Override("price_override")
	require.NoError(t, err)
	assert.Nil(t, p)
	cst, err := b.Override("cost_override")
	require.NoError(t, err)
	require.NotNil(t, cst)
	assert.Equal(t, 40000.0, *cst)
}

func TestDecodeBody_EmptyAndInvalid(t *testing.T) {
	t.Parallel()
	c, _ := newCtx("")
	b, err := DecodeBody(c)
	require.NoError(t, err)
	assert.Empty(t, b)

	c, _ = newCtx("null")
	b, err = DecodeBody(c)
	require.NoError(t, err)
	assert.Empty(t, b)

	c, _ = newCtx("{not json")
	_, err = DecodeBody(c)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestOverride_RejectsGarbage(t *testing.T) {
	t.Parallel()
	b := Body{"price_override": "cheap"}
	_, err := b.Override("price_override")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestFail_UsesKindStatus(t *testing.T) {
	t.Parallel()
	c, rec := newCtx("")
	require.NoError(t, Fail(c, apperr.NotFound("No records for %s", "X")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"No records for X"}`, rec.Body.String())

	c, rec = newCtx("")
	require.NoError(t, Fail(c, errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOK_MergesPayload(t *testing.T) {
	t.Parallel()
	c, rec := newCtx("")
	require.NoError(t, OK(c, echo.Map{"message": "pong"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"message":"pong"}`, rec.Body.String())
}

func TestFloat_RejectsNonFinite(t *testing.T) {
	t.Parallel()
	b := Body{"a": "NaN", "b": "-Inf", "c": "infinity", "d": "1e400"}
	for _, k := range []string{"a", "b", "c", "d"} {
		assert.Equal(t, 1.5, b.Float(k, 1.5), k)
		assert.Nil(t, b.OptFloat(k), k)
		_, err := b.Override(k)
		assert.True(t, apperr.Is(err, apperr.KindValidation), k)
	}
}
