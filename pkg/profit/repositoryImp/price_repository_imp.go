package repositoryImp

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"agrosense/entities"
	"agrosense/pkg/metrics"
	"agrosense/pkg/profit/repository"
	"agrosense/pkg/tabular"
)

type priceIndex map[string]entities.PriceCostEntry

type priceRepo struct {
	path  string
	log   *zap.Logger
	index atomic.Pointer[priceIndex]
	group singleflight.Group
}

// New reads the reference from a .csv, .xlsx or .html file. A missing file is not an
// error: lookups fall through to the caller's fallbacks until the file appears.
func New(path string, log *zap.Logger) repository.PriceRepository {
	return &priceRepo{path: path, log: log}
}

func (r *priceRepo) Find(ctx context.Context, crop string) (*entities.PriceCostEntry, error) {
	idx, err := r.load(ctx)
	if err != nil || idx == nil {
		return nil, err
	}
	if e, ok := (*idx)[crop]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *priceRepo) load(ctx context.Context) (*priceIndex, error) {
	if idx := r.index.Load(); idx != nil {
		return idx, nil
	}
	ch := r.group.DoChan("load", func() (any, error) {
		if idx := r.index.Load(); idx != nil {
			return idx, nil
		}
		idx, err := r.read()
		if err != nil || idx == nil {
			return idx, err
		}
		r.index.Store(idx)
		return idx, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		idx, _ := res.Val.(*priceIndex)
		return idx, nil
	}
}

func (r *priceRepo) read() (*priceIndex, error) {
	raw, err := tabular.ReadFile(r.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.log.Debug("price/cost reference not found; using internal fallbacks", zap.String("path", r.path))
		return nil, nil
	case err != nil:
		// an unreadable reference degrades to the fallbacks instead of failing estimates
		r.log.Warn("price/cost reference unreadable", zap.String("path", r.path), zap.Error(err))
		return nil, nil
	}

	cCrop := raw.FindAny("Crop", "commodity")
	cPrice := raw.FindAny("price_rs_per_quintal", "modal_price", "price")
	cCost := raw.FindAny("cost_rs_per_hectare", "cost")

	idx := priceIndex{}
	if cCrop < 0 || cPrice < 0 || cCost < 0 {
		r.log.Warn("price/cost reference lacks expected columns",
			zap.String("path", r.path), zap.Strings("header", raw.Header))
	} else {
		for _, row := range raw.Rows {
			crop := strings.ToLower(strings.TrimSpace(tabular.Cell(row, cCrop)))
			if _, dup := idx[crop]; dup || crop == "" {
				continue
			}
			idx[crop] = entities.PriceCostEntry{
				Crop:              crop,
				PriceRsPerQuintal: num(tabular.Cell(row, cPrice)),
				CostRsPerHectare:  num(tabular.Cell(row, cCost)),
			}
		}
	}
	metrics.DatasetRows.WithLabelValues("price_cost").Set(float64(len(idx)))
	r.log.Info("price/cost reference loaded", zap.String("path", r.path), zap.Int("crops", len(idx)))
	return &idx, nil
}

func num(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}
