// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrosense_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrosense_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 10},
		},
		[]string{"method", "route"},
	)

	// PredictionsTotal counts crop predictions by source (ml|fallback).
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrosense_predictions_total",
			Help: "Crop predictions by source",
		},
		[]string{"source"},
	)

	// WeatherLookupsTotal counts weather collaborator calls by outcome (ok|unavailable).
	WeatherLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrosense_weather_lookups_total",
			Help: "Weather lookups by outcome",
		},
		[]string{"outcome"},
	)

	PriceLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrosense_price_lookups_total",
			Help: "Price/cost lookups by resolved source",
		},
		[]string{"source"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agrosense_dataset_rows",
			Help: "Rows held by each loaded reference dataset",
		},
		[]string{"dataset"},
	)
)
