package serviceImp

import (
	"strings"

	"agrosense/pkg/plan/types"
)

// Templates holds the baseline 12-week plan and per-crop replacements keyed by week number.
type Templates struct {
	Baseline  [12]string
	Overrides map[string]map[int]string
}

func DefaultTemplates() Templates {
	return Templates{
		Baseline: [12]string{
			"Field prep; seed treatment; basal NPK",
			"Sowing at recommended depth/spacing",
			"Germination check; first irrigation",
			"Weed management (pre/post-emergence)",
			"Top-dress Nitrogen; micronutrient spray if needed",
			"Irrigation as per crop stage; scout for pests",
			"Interculture/earthing-up; address deficiencies",
			"Second top-dress; prophylactic plant protection",
			"Irrigate at critical stage; remove off-types",
			"Final N/K application if recommended",
			"Prepare for harvest: drain fields if required",
			"Harvest & post-harvest handling/storage",
		},
		Overrides: map[string]map[int]string{
			"rice": {
				1:  "Puddling, nursery prep/transplanting setup",
				3:  "Maintain water depth 2–5 cm",
				6:  "Weed control/SRI where adopted",
				11: "Drain water before harvest; field drying",
			},
			"wheat": {
				2: "Seed drill sowing at proper depth",
				4: "Herbicide at CRI stage if needed",
				6: "Irrigate at CRI; later at jointing/flowering",
			},
			"groundnut": {
				4: "Weeding + gypsum application near pegging",
				6: "Irrigate lightly during pegging",
			},
			"potato": {
				3:  "Earthing-up; maintain loose soil",
				5:  "Apply potash; maintain moisture",
				10: "Haulm killing if practiced",
			},
			"maize": {
				5: "Side-dress N at knee-high stage",
				7: "Tasseling/silking — no water stress",
			},
			"pulses": {
				1: "Rhizobium/PSB inoculation during seed treatment",
				6: "Irrigate sparingly; avoid waterlogging",
			},
			"millets": {
				2: "Sow on moisture; maintain wider spacing",
				6: "Interculture; moisture conservation",
			},
		},
	}
}

// Build merges crop overrides onto the baseline. Override weeks outside 1..12 are ignored.
func (t Templates) Build(crop string) []types.WeekTask {
	over := t.Overrides[strings.ToLower(strings.TrimSpace(crop))]
	out := make([]types.WeekTask, len(t.Baseline))
	for i, task := range t.Baseline {
		week := i + 1
		if v, ok := over[week]; ok {
			task = v
		}
		out[i] = types.WeekTask{Week: week, Task: task}
	}
	return out
}
