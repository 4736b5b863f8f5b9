package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"agrosense/entities"
	"agrosense/pkg/apperr"
	"agrosense/pkg/district"
	"agrosense/pkg/district/repository"
	"agrosense/pkg/metrics"
	"agrosense/pkg/region"
	"agrosense/pkg/tabular"
)

const (
	colState    = "State"
	colDistrict = "District"
	colYear     = "Year"
	colSeason   = "Season"
	colCrop     = "Crop"
	colArea     = "Area_ha"
	colProd     = "Production_q"
	colYield    = "Yield_q_per_ha"
)

// renames applied only when the canonical column is not already present
var renames = [][2]string{
	{"Area", colArea},
	{"Production", colProd},
	{"Yield", colYield},
	{"state", colState},
	{"district", colDistrict},
	{"year", colYear},
	{"season", colSeason},
	{"crop", colCrop},
}

type datasetRepo struct {
	path  string
	log   *zap.Logger
	table atomic.Pointer[district.Table]
	group singleflight.Group
}

// New returns a file-backed repository. The file is read lazily or by an explicit
// Load at startup; concurrent first callers share one read.
func New(path string, log *zap.Logger) repository.DatasetRepository {
	return &datasetRepo{path: path, log: log}
}

func (r *datasetRepo) Load(ctx context.Context) (*district.Table, error) {
	if t := r.table.Load(); t != nil {
		return t, nil
	}
	ch := r.group.DoChan("load", func() (any, error) {
		if t := r.table.Load(); t != nil {
			return t, nil
		}
		t, err := r.read()
		if err != nil {
			return nil, err
		}
		r.table.Store(t)
		return t, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*district.Table), nil
	}
}

func (r *datasetRepo) read() (*district.Table, error) {
	raw, err := tabular.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("district dataset not found", zap.String("path", r.path))
			return nil, apperr.Unavailable("%s missing", filepath.Base(r.path))
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "read district dataset")
	}
	rows, err := clean(raw)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindInternal, "clean district dataset")
	}
	t := district.NewTable(rows)
	metrics.DatasetRows.WithLabelValues("district").Set(float64(t.Len()))
	r.log.Info("district dataset loaded",
		zap.String("path", r.path), zap.Int("rows", t.Len()),
		zap.Int("raw_rows", len(raw.Rows)), zap.Int("states", len(t.States())))
	return t, nil
}

// clean canonicalises headers and values, derives yield when the column is absent,
// and drops rows without positive area or without a yield.
func clean(raw *tabular.Table) ([]entities.YieldRecord, error) {
	for _, rn := range renames {
		raw.RenameIfAbsent(rn[0], rn[1])
	}
	cState, cDistrict, cCrop := raw.Index(colState), raw.Index(colDistrict), raw.Index(colCrop)
	if cState < 0 || cDistrict < 0 || cCrop < 0 {
		return nil, fmt.Errorf("missing required columns (need %s, %s, %s); found %v",
			colState, colDistrict, colCrop, raw.Header)
	}
	cYear, cSeason := raw.Index(colYear), raw.Index(colSeason)
	cArea, cProd, cYield := raw.Index(colArea), raw.Index(colProd), raw.Index(colYield)
	derive := cYield < 0 && cArea >= 0 && cProd >= 0

	out := make([]entities.YieldRecord, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		area := parseNum(tabular.Cell(row, cArea))
		if area == nil || *area <= 0 {
			continue
		}
		prod := parseNum(tabular.Cell(row, cProd))
		yield := parseNum(tabular.Cell(row, cYield))
		if derive && prod != nil {
			y := *prod / *area
			yield = &y
		}
		if yield == nil {
			continue
		}
		out = append(out, entities.YieldRecord{
			State:       region.Title(tabular.Cell(row, cState)),
			District:    region.Title(tabular.Cell(row, cDistrict)),
			Year:        parseYear(tabular.Cell(row, cYear)),
			Season:      region.Title(tabular.Cell(row, cSeason)),
			Crop:        strings.ToLower(strings.TrimSpace(tabular.Cell(row, cCrop))),
			AreaHa:      *area,
			ProductionQ: prod,
			YieldQPerHa: yield,
		})
	}
	return out, nil
}

// parseNum coerces a cell to a number; blanks and garbage are missing.
func parseNum(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

func parseYear(s string) *int {
	f := parseNum(s)
	if f == nil {
		return nil
	}
	y := int(*f)
	return &y
}
