package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	DBPath           string
	DistrictDataPath string
	PriceCostPath    string

	ClassifierEndpoint string
	FeatureOrderPath   string
	ClassifierTimeout  time.Duration

	OpenWeatherAPIKey string
	WeatherTimeout    time.Duration

	BreakerFailures int
	BreakerOpenFor  time.Duration

	CORSOrigins []string
	LogLevel    string
	LogFormat   string
}

// Load reads .env (when present) and then the process environment.
// The returned warning is non-nil only when a .env file exists but could not be parsed.
func Load() (AppConfig, error) {
	var envErr error
	if _, err := os.Stat(".env"); err == nil {
		envErr = godotenv.Load()
	}

	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "users.db"),
		DistrictDataPath: get("DISTRICT_DATA_PATH", "data/district_crop_yield.csv"),
		PriceCostPath:    get("PRICE_COST_PATH", "data/price_cost_reference.csv"),

		ClassifierEndpoint: get("CLASSIFIER_ENDPOINT", ""),
		FeatureOrderPath:   get("CLASSIFIER_FEATURES_PATH", "models/feature_order.json"),
		ClassifierTimeout:  time.Duration(getInt("CLASSIFIER_TIMEOUT_MS", 5000)) * time.Millisecond,

		OpenWeatherAPIKey: get("OPENWEATHER_API_KEY", ""),
		WeatherTimeout:    time.Duration(getInt("WEATHER_TIMEOUT_MS", 8000)) * time.Millisecond,

		BreakerFailures: getInt("BREAKER_FAILURES", 3),
		BreakerOpenFor:  time.Duration(getInt("BREAKER_OPEN_MS", 30000)) * time.Millisecond,

		CORSOrigins: splitList(get("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		LogLevel:    get("LOG_LEVEL", "info"),
		LogFormat:   get("LOG_FORMAT", "json"),
	}
	return cfg, envErr
}

func get(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
