package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"agrosense/pkg/metrics"
	"agrosense/pkg/predict/classifier"
	"agrosense/pkg/predict/service"
	"agrosense/pkg/weather"
)

const (
	DefaultTemperature = 25.0
	DefaultHumidity    = 60.0
)

type predictSvc struct {
	clf     classifier.Classifier
	weather weather.Provider
	log     *zap.Logger
}

// NewPredictService accepts a nil classifier; every prediction then comes from the rules.
func NewPredictService(clf classifier.Classifier, wp weather.Provider, log *zap.Logger) service.PredictService {
	return &predictSvc{clf: clf, weather: wp, log: log}
}

func (s *predictSvc) Predict(ctx context.Context, in service.Features) service.Result {
	out := service.Result{
		N: in.N, P: in.P, K: in.K, PH: in.PH, Rainfall: in.Rainfall,
		City: strings.TrimSpace(in.City),
	}

	temp, hum := in.Temperature, in.Humidity
	if (temp == nil || hum == nil) && out.City != "" && s.weather != nil {
		if obs := s.weather.Current(ctx, out.City); obs.OK {
			temp, hum = &obs.Temp, &obs.Humidity
			out.UsedWeather = true
		}
	}
	out.Temperature, out.Humidity = DefaultTemperature, DefaultHumidity
	if temp != nil {
		out.Temperature = *temp
	}
	if hum != nil {
		out.Humidity = *hum
	}

	out.Crop, out.Source = s.classify(ctx, out)
	metrics.PredictionsTotal.WithLabelValues(out.Source).Inc()
	return out
}

func (s *predictSvc) classify(ctx context.Context, r service.Result) (string, string) {
	if s.clf != nil {
		row, err := featureRow(s.clf.Features(), r)
		if err == nil {
			var crop string
			if crop, err = s.clf.Predict(ctx, row); err == nil {
				return crop, service.SourceML
			}
		}
		s.log.Warn("classifier unavailable, using rules", zap.Error(err))
	}
	return ruleCrop(r.N, r.PH, r.Rainfall), service.SourceFallback
}

// featureRow lays the resolved values out in the model's declared column order.
func featureRow(order []string, r service.Result) ([]float64, error) {
	values := map[string]float64{
		"N": r.N, "P": r.P, "K": r.K,
		"temperature": r.Temperature,
		"humidity":    r.Humidity,
		"ph":          r.PH,
		"rainfall":    r.Rainfall,
	}
	row := make([]float64, 0, len(order))
	for _, f := range order {
		v, ok := values[f]
		if !ok {
			return nil, fmt.Errorf("unknown model feature %q", f)
		}
		row = append(row, v)
	}
	return row, nil
}
