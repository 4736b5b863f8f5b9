package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agrosense/pkg/agronomy"
	"agrosense/pkg/apperr"
	"agrosense/pkg/district"
	"agrosense/pkg/district/repository"
	"agrosense/pkg/district/service"
	"agrosense/pkg/region"
)

const (
	DefaultTopN = 5
	MaxTopN     = 100
	maxTips     = 3
)

type districtSvc struct {
	repo     repository.DatasetRepository
	agronomy agronomy.Tables
	source   string
	log      *zap.Logger
}

// NewDistrictService wires the dataset to agronomy lookups. source names the dataset in responses.
func NewDistrictService(r repository.DatasetRepository, a agronomy.Tables, source string, log *zap.Logger) service.DistrictService {
	return &districtSvc{repo: r, agronomy: a, source: source, log: log}
}

func (s *districtSvc) States(ctx context.Context) ([]string, error) {
	t, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return t.States(), nil
}

func (s *districtSvc) Districts(ctx context.Context, state string) (string, []string, error) {
	state = region.Title(state)
	if state == "" {
		return "", nil, apperr.Validation("state query parameter is required")
	}
	t, err := s.repo.Load(ctx)
	if err != nil {
		return "", nil, err
	}
	return state, t.Districts(state), nil
}

func (s *districtSvc) Crops(ctx context.Context, state, dist string) (string, string, []string, error) {
	state, dist = region.Title(state), region.Title(dist)
	if state == "" || dist == "" {
		return "", "", nil, apperr.Validation("state and district are required")
	}
	t, err := s.repo.Load(ctx)
	if err != nil {
		return "", "", nil, err
	}
	crops, err := t.Crops(state, dist)
	if err != nil {
		return "", "", nil, err
	}
	return state, dist, crops, nil
}

func (s *districtSvc) Recommend(ctx context.Context, in service.RecoRequest) (*service.RecoResult, error) {
	state, dist := region.Canonical(in.State), region.Canonical(in.District)
	if state == "" || dist == "" {
		return nil, apperr.Validation("state and district are required")
	}
	season := region.Title(in.Season)
	topN := in.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	t, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	ranked, err := t.RankCrops(state, dist, season, topN)
	if err != nil {
		return nil, err
	}

	res := &service.RecoResult{
		State:    state,
		District: dist,
		Season:   season,
		Top:      make([]service.Recommendation, 0, len(ranked)),
		Chart:    make([]service.ChartPoint, 0, len(ranked)),
		Sources:  []string{s.source},
	}
	for _, cy := range ranked {
		info := s.agronomy.Season(state, cy.Crop)
		tips := s.agronomy.Tips(cy.Crop)
		if len(tips) > maxTips {
			tips = tips[:maxTips]
		}
		avg := district.Round2(cy.AvgYield)
		res.Top = append(res.Top, service.Recommendation{
			Crop:             cy.Crop,
			AvgYield:         avg,
			SeasonWindow:     info.WindowText,
			PreferredSeasons: info.Preferred,
			Tips:             tips,
		})
		res.Chart = append(res.Chart, service.ChartPoint{Name: strings.ToUpper(cy.Crop), Yield: avg})
	}
	s.log.Debug("district recommendation",
		zap.String("state", state), zap.String("district", dist),
		zap.String("season", season), zap.Int("results", len(res.Top)))
	return res, nil
}
