// Package weather resolves current temperature and humidity for a city.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"agrosense/pkg/breaker"
	"agrosense/pkg/metrics"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Observation is a tagged lookup outcome. Temp and Humidity are meaningful only when OK.
type Observation struct {
	Temp     float64
	Humidity float64
	OK       bool
}

// Provider never fails: every problem is reported as an Observation with OK false.
type Provider interface {
	Current(ctx context.Context, city string) Observation
}

type owmClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	log     *zap.Logger
}

// NewOWMClient queries OpenWeather current conditions in metric units.
// An empty apiKey yields a provider that is always unavailable.
func NewOWMClient(apiKey, baseURL string, timeout time.Duration, cb *gobreaker.CircuitBreaker, log *zap.Logger) Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &owmClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cb:      cb,
		log:     log,
	}
}

type owmResp struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
}

func (c *owmClient) Current(ctx context.Context, city string) Observation {
	city = strings.TrimSpace(city)
	if city == "" || c.apiKey == "" {
		return Observation{}
	}
	v, err := c.cb.Execute(func() (interface{}, error) { return c.fetch(ctx, city) })
	if err != nil {
		metrics.WeatherLookupsTotal.WithLabelValues("unavailable").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Debug("weather lookup skipped", zap.String("city", city), zap.Error(err))
		} else {
			c.log.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		}
		return Observation{}
	}
	metrics.WeatherLookupsTotal.WithLabelValues("ok").Inc()
	return v.(Observation)
}

func (c *owmClient) fetch(ctx context.Context, city string) (Observation, error) {
	q := url.Values{"q": {city}, "appid": {c.apiKey}, "units": {"metric"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Observation{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Observation{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		err := fmt.Errorf("owm status %d: %s", resp.StatusCode, string(b))
		// 4xx means a bad city or key, not an unhealthy upstream.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			err = fmt.Errorf("%w: %w", breaker.ErrRejected, err)
		}
		return Observation{}, err
	}
	var out owmResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Observation{}, err
	}
	if out.Main.Temp == nil || out.Main.Humidity == nil {
		return Observation{}, errors.New("owm response missing temp or humidity")
	}
	return Observation{Temp: *out.Main.Temp, Humidity: *out.Main.Humidity, OK: true}, nil
}
