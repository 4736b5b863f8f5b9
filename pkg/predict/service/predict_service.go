package service

import "context"

const (
	SourceML       = "ml"
	SourceFallback = "fallback"
)

// Features are the soil readings plus optional climate values supplied by the caller.
type Features struct {
	N, P, K     float64
	PH          float64
	Rainfall    float64
	Temperature *float64
	Humidity    *float64
	City        string
}

// Result echoes the inputs actually used, with temperature/humidity resolved.
type Result struct {
	Crop        string
	Source      string
	N, P, K     float64
	PH          float64
	Rainfall    float64
	Temperature float64
	Humidity    float64
	City        string
	UsedWeather bool
}

type PredictService interface {
	Predict(ctx context.Context, in Features) Result
}
