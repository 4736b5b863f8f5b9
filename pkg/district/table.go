// Package district answers location queries over the cleaned district crop-yield dataset.
package district

import (
	"math"
	"sort"

	"agrosense/entities"
	"agrosense/pkg/apperr"
	"agrosense/pkg/region"
)

// Table is the immutable in-memory dataset. Build it once with NewTable and share it.
type Table struct {
	rows []entities.YieldRecord
}

func NewTable(rows []entities.YieldRecord) *Table { return &Table{rows: rows} }

func (t *Table) Len() int { return len(t.rows) }

// CropYield is a crop with its mean yield in quintal/ha.
type CropYield struct {
	Crop     string
	AvgYield float64
}

func (t *Table) States() []string {
	return uniqueSorted(t.rows, func(r entities.YieldRecord) (string, bool) { return r.State, true })
}

func (t *Table) Districts(state string) []string {
	return uniqueSorted(t.rows, func(r entities.YieldRecord) (string, bool) {
		return r.District, r.State == state
	})
}

// Crops lists crop names title-cased for display.
func (t *Table) Crops(state, district string) ([]string, error) {
	out := uniqueSorted(t.rows, func(r entities.YieldRecord) (string, bool) {
		return region.Title(r.Crop), r.State == state && r.District == district
	})
	if len(out) == 0 {
		return nil, apperr.NotFound("No records for %s, %s", district, state)
	}
	return out, nil
}

// RankCrops returns up to topN crops by descending mean yield. A season filter that
// would leave nothing is ignored. Ties keep alphabetical crop order.
func (t *Table) RankCrops(state, district, season string, topN int) ([]CropYield, error) {
	sub := t.filter(func(r entities.YieldRecord) bool { return r.State == state && r.District == district })
	if len(sub) == 0 {
		return nil, apperr.NotFound("No records for %s, %s", district, state)
	}
	sub = narrowBySeason(sub, season)

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range sub {
		sums[r.Crop] += r.Yield()
		counts[r.Crop]++
	}
	crops := make([]string, 0, len(sums))
	for c := range sums {
		crops = append(crops, c)
	}
	sort.Strings(crops)

	ranked := make([]CropYield, len(crops))
	for i, c := range crops {
		ranked[i] = CropYield{Crop: c, AvgYield: sums[c] / float64(counts[c])}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].AvgYield > ranked[j].AvgYield })

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// MeanYield averages yield for one crop at a location, narrowing to season when that leaves rows.
func (t *Table) MeanYield(state, district, crop, season string) (float64, error) {
	sub := t.filter(func(r entities.YieldRecord) bool {
		return r.State == state && r.District == district && r.Crop == crop
	})
	if len(sub) == 0 {
		return 0, apperr.NotFound("No records for %s in %s, %s", crop, district, state)
	}
	sub = narrowBySeason(sub, season)

	var sum float64
	for _, r := range sub {
		sum += r.Yield()
	}
	return sum / float64(len(sub)), nil
}

func (t *Table) filter(keep func(entities.YieldRecord) bool) []entities.YieldRecord {
	var out []entities.YieldRecord
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func narrowBySeason(rows []entities.YieldRecord, season string) []entities.YieldRecord {
	if season == "" {
		return rows
	}
	var out []entities.YieldRecord
	for _, r := range rows {
		if r.Season == season {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return rows
	}
	return out
}

func uniqueSorted(rows []entities.YieldRecord, pick func(entities.YieldRecord) (string, bool)) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range rows {
		v, ok := pick(r)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Round2 rounds to two decimals for display.
func Round2(x float64) float64 { return math.Round(x*100) / 100 }
