// Package httpx holds the request/response plumbing shared by every controller.
package httpx

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"agrosense/pkg/apperr"
)

// Body is a decoded JSON object read leniently: absent keys, nulls and
// unparseable values fall back to caller defaults instead of failing the request.
type Body map[string]any

// DecodeBody reads the request body as a JSON object. An empty body is an empty Body.
func DecodeBody(c echo.Context) (Body, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindValidation, "read body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Body{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, apperr.Validation("invalid json body")
	}
	if out == nil {
		return Body{}, nil
	}
	return Body(out), nil
}

// Str returns the trimmed string form of key, "" when absent or null.
func (b Body) Str(key string) string {
	switch v := b[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Float returns key as a number, or def when it is absent, blank or not numeric.
func (b Body) Float(key string, def float64) float64 {
	if f, ok := toFloat(b[key]); ok {
		return f
	}
	return def
}

// OptFloat is Float without a default: nil when key does not hold a number.
func (b Body) OptFloat(key string) *float64 {
	if f, ok := toFloat(b[key]); ok {
		return &f
	}
	return nil
}

// Override reads an optional caller-supplied number. Absent, null and "" mean no
// override; anything else must parse or the request is rejected.
func (b Body) Override(key string) (*float64, error) {
	v, present := b[key]
	if !present || v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, apperr.Validation("%s must be numeric", key)
	}
	return &f, nil
}

// toFloat accepts finite numbers only; NaN and the infinities count as not numeric.
func toFloat(v any) (float64, bool) {
	f, ok := parseFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
