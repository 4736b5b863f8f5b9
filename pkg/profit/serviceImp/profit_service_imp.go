package serviceImp

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"agrosense/pkg/apperr"
	"agrosense/pkg/district"
	districtrepo "agrosense/pkg/district/repository"
	"agrosense/pkg/metrics"
	pricerepo "agrosense/pkg/profit/repository"
	"agrosense/pkg/profit/service"
	"agrosense/pkg/region"
)

const (
	NoteOverride  = "User override"
	NoteReference = "From price/cost reference"
	NoteFallback  = "Fallback internal reference (demo)"
	NoteGeneric   = "Generic defaults (demo)"

	DecisionGrow  = "Grow"
	DecisionAvoid = "Avoid"

	genericPrice = 2500.0
	genericCost  = 50000.0
)

type priceCost struct{ price, cost float64 }

// fallbackPrices is used when the reference file is absent or lacks the crop.
var fallbackPrices = map[string]priceCost{
	"rice":        {2200, 65000},
	"wheat":       {2200, 55000},
	"maize":       {1900, 48000},
	"sugarcane":   {310, 140000},
	"cotton":      {6500, 80000},
	"chickpea":    {4800, 45000},
	"mustard":     {5400, 42000},
	"kidneybeans": {8500, 70000},
	"pigeonpeas":  {6000, 50000},
	"tea":         {15000, 120000},
	"millets":     {2500, 38000},
	"groundnut":   {5500, 60000},
}

type profitSvc struct {
	yields districtrepo.DatasetRepository
	prices pricerepo.PriceRepository
	log    *zap.Logger
}

func NewProfitService(y districtrepo.DatasetRepository, p pricerepo.PriceRepository, log *zap.Logger) service.ProfitService {
	return &profitSvc{yields: y, prices: p, log: log}
}

func (s *profitSvc) Estimate(ctx context.Context, in service.Input) (*service.Estimate, error) {
	state, dist := region.Canonical(in.State), region.Canonical(in.District)
	cropInput := strings.TrimSpace(in.Crop)
	crop := strings.ToLower(cropInput)
	if state == "" || dist == "" || crop == "" {
		return nil, apperr.Validation("state, district, crop are required")
	}
	season := region.Title(in.Season)
	area := in.AreaHa
	if area == 0 {
		area = 1.0
	}
	if area < 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return nil, apperr.Validation("area_ha must be a positive number")
	}

	t, err := s.yields.Load(ctx)
	if err != nil {
		return nil, err
	}
	yph, err := t.MeanYield(state, dist, crop, season)
	if err != nil {
		return nil, err
	}
	totalYield := yph * area

	price, priceNote := s.resolve(ctx, crop, in.PriceOverride, func(pc priceCost) float64 { return pc.price })
	cost, costNote := s.resolve(ctx, crop, in.CostOverride, func(pc priceCost) float64 { return pc.cost })

	revenue := totalYield * price
	totalCost := area * cost
	profit := revenue - totalCost
	for _, x := range []float64{price, cost, revenue, totalCost, profit} {
		if !fitsMoney(x) {
			return nil, apperr.Validation("area_ha, price_override or cost_override out of range")
		}
	}
	decision := DecisionGrow
	if profit < 0 {
		decision = DecisionAvoid
	}

	return &service.Estimate{
		State:       state,
		District:    dist,
		CropInput:   cropInput,
		CropDataset: crop,
		Season:      season,
		AreaHa:      area,
		YieldPerHa:  district.Round2(yph),
		TotalYield:  district.Round2(totalYield),
		PriceUsed:   money(price),
		CostUsed:    money(cost),
		Revenue:     money(revenue),
		TotalCost:   money(totalCost),
		Profit:      money(profit),
		Decision:    decision,
		PriceNote:   priceNote,
		CostNote:    costNote,
	}, nil
}

// resolve picks one figure: caller override, then reference row, then built-in table, then generic default.
func (s *profitSvc) resolve(ctx context.Context, crop string, override *float64, pick func(priceCost) float64) (float64, string) {
	if override != nil {
		metrics.PriceLookupsTotal.WithLabelValues("override").Inc()
		return *override, NoteOverride
	}
	pc, note := s.lookup(ctx, crop)
	return pick(pc), note
}

func (s *profitSvc) lookup(ctx context.Context, crop string) (priceCost, string) {
	e, err := s.prices.Find(ctx, crop)
	if err != nil {
		s.log.Warn("price/cost lookup failed", zap.String("crop", crop), zap.Error(err))
	}
	if e != nil && e.PriceRsPerQuintal != nil && e.CostRsPerHectare != nil {
		metrics.PriceLookupsTotal.WithLabelValues("reference").Inc()
		return priceCost{*e.PriceRsPerQuintal, *e.CostRsPerHectare}, NoteReference
	}
	if pc, ok := fallbackPrices[crop]; ok {
		metrics.PriceLookupsTotal.WithLabelValues("fallback").Inc()
		return pc, NoteFallback
	}
	metrics.PriceLookupsTotal.WithLabelValues("generic").Inc()
	return priceCost{genericPrice, genericCost}, NoteGeneric
}

// fitsMoney reports whether x is finite and representable as whole rupees.
func fitsMoney(x float64) bool {
	return !math.IsNaN(x) && math.Abs(x) < math.MaxInt64
}

// money rounds half to even, so 0.5 becomes 0 and 1.5 becomes 2.
func money(x float64) int64 { return int64(math.RoundToEven(x)) }
