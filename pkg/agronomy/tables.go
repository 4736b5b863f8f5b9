// Package agronomy holds the static per-crop reference data shown alongside recommendations.
// Every lookup is total: unknown crops get a default.
package agronomy

import "strings"

type Guide struct {
	Soil       string `json:"soil"`
	Fertilizer string `json:"fertilizer"`
	Water      string `json:"water"`
}

// NPK is a relative nutrient split in percent.
type NPK struct {
	N int `json:"N"`
	P int `json:"P"`
	K int `json:"K"`
}

type Season struct {
	Preferred  []string `json:"preferred"`
	WindowText string   `json:"window_text"`
}

const DefaultYield = 15

var (
	placeholderGuide = Guide{Soil: "—", Fertilizer: "—", Water: "—"}
	defaultNPK       = NPK{N: 33, P: 33, K: 34}
	defaultTips      = []string{
		"Follow local package of practices for the variety.",
		"Soil test–based nutrient management increases efficiency.",
		"Adopt integrated weed and pest management.",
	}
)

// Tables is injected into controllers; tests may build their own.
type Tables struct {
	Guides   map[string]Guide
	Yields   map[string]int
	Balances map[string]NPK
	TipSets  map[string][]string
	Families map[string]Family
	Windows  []WindowOverride
}

func key(crop string) string { return strings.ToLower(strings.TrimSpace(crop)) }

func (t Tables) Guide(crop string) Guide {
	if g, ok := t.Guides[key(crop)]; ok {
		return g
	}
	return placeholderGuide
}

// GuideFor prefers the next crop's guide, then the current crop's, then the placeholder.
func (t Tables) GuideFor(next, current string) Guide {
	if g, ok := t.Guides[key(next)]; ok {
		return g
	}
	return t.Guide(current)
}

// AvgYield is an indicative yield in quintal/ha.
func (t Tables) AvgYield(crop string) int {
	if y, ok := t.Yields[key(crop)]; ok {
		return y
	}
	return DefaultYield
}

func (t Tables) NPK(crop string) NPK {
	if b, ok := t.Balances[key(crop)]; ok {
		return b
	}
	return defaultNPK
}

// Tips returns a copy so callers may truncate or append freely.
func (t Tables) Tips(crop string) []string {
	src, ok := t.TipSets[key(crop)]
	if !ok {
		src = defaultTips
	}
	return append([]string(nil), src...)
}

func DefaultTables() Tables {
	return Tables{
		Guides: map[string]Guide{
			"rice":       {"Clayey/alluvial", "NPK with split N", "High; puddled fields"},
			"wheat":      {"Loam/alluvial", "NPK + micronutrients", "Moderate; CRI critical"},
			"maize":      {"Well-drained loam", "N-rich basal + split", "Moderate"},
			"millets":    {"Light/sandy", "Low–moderate NPK", "Low"},
			"pulses":     {"Sandy loam", "Low; Rhizobium seed treatment", "Low–moderate"},
			"legumes":    {"Sandy loam", "Organic + Rhizobium", "Low"},
			"vegetables": {"Fertile loam", "Compost + NPK", "Moderate"},
			"cotton":     {"Black soil", "Balanced NPK + Zn", "Moderate"},
			"sugarcane":  {"Deep loam", "High NPK in splits", "High; frequent"},
			"groundnut":  {"Sandy loam", "Gypsum + balanced NPK", "Low–moderate"},
			"sorghum":    {"Light to medium", "Moderate NPK", "Low–moderate"},
			"mustard":    {"Loam", "S-rich + NPK", "Low"},
			"potato":     {"Loose loam", "High K + balanced NPK", "Moderate"},
			"chickpea":   {"Sandy loam", "Low input; Rhizobium", "Low"},
			"mungbean":   {"Light loam", "Low; inoculation", "Low"},
			"jute":       {"Alluvial", "Balanced NPK", "High in Kharif"},
			"gram":       {"Sandy loam", "Low input", "Low"},
			"soybean":    {"Well-drained", "Balanced NPK", "Moderate"},
		},
		Yields: map[string]int{
			"rice": 35, "wheat": 45, "maize": 40, "millets": 18, "pulses": 12, "legumes": 12,
			"vegetables": 120, "cotton": 20, "sugarcane": 700, "groundnut": 20, "sorghum": 20,
			"mustard": 12, "potato": 200, "chickpea": 13, "mungbean": 10,
			"jute": 25, "gram": 14, "soybean": 20,
		},
		Balances: map[string]NPK{
			"rice":       {45, 25, 30},
			"wheat":      {40, 30, 30},
			"maize":      {45, 25, 30},
			"millets":    {35, 25, 40},
			"pulses":     {20, 40, 40},
			"legumes":    {20, 40, 40},
			"vegetables": {40, 30, 30},
			"cotton":     {35, 25, 40},
			"sugarcane":  {50, 20, 30},
			"groundnut":  {25, 35, 40},
			"sorghum":    {30, 30, 40},
			"mustard":    {35, 35, 30},
			"potato":     {30, 25, 45},
			"chickpea":   {20, 40, 40},
			"mungbean":   {20, 40, 40},
			"jute":       {40, 30, 30},
			"gram":       {20, 40, 40},
			"soybean":    {25, 35, 40},
		},
		TipSets: map[string][]string{
			"rice": {
				"Maintain 2–5 cm water depth during active tillering.",
				"Split nitrogen; avoid lodging by not over-applying.",
				"Use recommended-aged seedlings for transplanting.",
			},
			"wheat": {
				"Irrigate at CRI stage; avoid stress at heading/flowering.",
				"Apply N in splits; consider Zn in deficient soils.",
				"Use herbicide timely for Phalaris minor where prevalent.",
			},
			"groundnut": {
				"Use gypsum at pegging; ensure calcium availability.",
				"Avoid standing water; good drainage is critical.",
				"Early sowing with recommended spacing improves yields.",
			},
			"potato": {
				"Maintain loose, friable soil for tuber bulking.",
				"Potassium is critical; avoid waterlogging.",
				"Use healthy, disease-free seed tubers.",
			},
			"millets": {
				"Prefer light soils; low input and drought hardy.",
				"Manage weeds early; timely interculture.",
				"Conserve soil moisture; rainfed suited.",
			},
			"maize": {
				"Ensure adequate N; side-dress around knee-high stage.",
				"Avoid water stress during tasseling/silking.",
				"Use recommended plant population and spacing.",
			},
			"pulses": {
				"Treat seed with Rhizobium; avoid excess nitrogen.",
				"Irrigate sparingly; sensitive to waterlogging.",
				"Timely weeding critical for early vigor.",
			},
			"mustard": {
				"Sulphur application boosts yield & oil content.",
				"Avoid water stress at flowering/pod filling.",
				"Manage aphids early with IPM practices.",
			},
			"sorghum": {
				"Drought-hardy; ensure early weed control.",
				"Moderate N; avoid excessive vegetative growth.",
				"Harvest at physiological maturity.",
			},
			"vegetables": {
				"Incorporate compost; maintain steady moisture.",
				"Follow crop-specific spacing and staking where needed.",
				"IPM scouting for sucking pests weekly.",
			},
		},
		Families: map[string]Family{
			"rice": SingleKharif, "jute": SingleKharif,

			"wheat": SingleRabi, "mustard": SingleRabi, "chickpea": SingleRabi,
			"gram": SingleRabi, "potato": SingleRabi,

			"maize": Dual, "millets": Dual, "sorghum": Dual,
			"groundnut": Dual, "soybean": Dual, "cotton": Dual,

			"vegetables": Triple, "pulses": Triple, "legumes": Triple, "mungbean": Triple,
		},
		Windows: []WindowOverride{
			{
				Crop:   "groundnut",
				States: []string{"Tamil Nadu", "Karnataka", "Andhra Pradesh"},
				Text:   "Kharif (Jun–Sep) — best in Peninsula",
			},
			{
				Crop:   "potato",
				States: []string{"West Bengal", "Uttar Pradesh", "Punjab", "Bihar"},
				Text:   "Rabi (Nov–Feb) — cooler plains favorable",
			},
		},
	}
}
