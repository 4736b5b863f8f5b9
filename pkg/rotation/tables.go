package rotation

// Key identifies a state-specific override: lowercase crop plus canonical state name.
type Key struct {
	Crop  string
	State string
}

// Tables is the rotation rule set. Built once and never mutated.
type Tables struct {
	Overrides    map[Key]string
	Defaults     map[string]string
	Alternatives map[string][]string
}

// DefaultTables returns the built-in national rotation rules with per-state overrides.
func DefaultTables() Tables {
	return Tables{
		Overrides: map[Key]string{
			{"rice", "Tamil Nadu"}:     "groundnut",
			{"rice", "West Bengal"}:    "potato",
			{"rice", "Punjab"}:         "wheat",
			{"rice", "Haryana"}:        "wheat",
			{"rice", "Uttar Pradesh"}:  "wheat",
			{"rice", "Bihar"}:          "wheat",
			{"rice", "Odisha"}:         "pulses",
			{"rice", "Andhra Pradesh"}: "maize",
			{"rice", "Telangana"}:      "maize",
			{"rice", "Karnataka"}:      "millets",
			{"rice", "Kerala"}:         "vegetables",
			{"rice", "Maharashtra"}:    "pulses",
			{"rice", "Gujarat"}:        "cotton",
			{"rice", "Madhya Pradesh"}: "gram",
			{"rice", "Rajasthan"}:      "mustard",
			{"rice", "Delhi"}:          "wheat",
			{"rice", "Chhattisgarh"}:   "pulses",
			{"rice", "Jharkhand"}:      "pulses",
			{"rice", "Assam"}:          "pulses",

			{"wheat", "Tamil Nadu"}:     "maize",
			{"wheat", "West Bengal"}:    "jute",
			{"wheat", "Punjab"}:         "rice",
			{"wheat", "Haryana"}:        "rice",
			{"wheat", "Uttar Pradesh"}:  "rice",
			{"wheat", "Rajasthan"}:      "millets",
			{"wheat", "Madhya Pradesh"}: "soybean",
			{"wheat", "Gujarat"}:        "groundnut",
			{"wheat", "Bihar"}:          "maize",
			{"wheat", "Delhi"}:          "mungbean",

			{"groundnut", "Tamil Nadu"}:     "sorghum",
			{"groundnut", "Andhra Pradesh"}: "pulses",
			{"groundnut", "Gujarat"}:        "cotton",
			{"groundnut", "Karnataka"}:      "millets",

			{"maize", "Bihar"}:         "potato",
			{"maize", "Uttar Pradesh"}: "potato",
			{"maize", "Maharashtra"}:   "chickpea",
			{"maize", "Karnataka"}:     "pulses",

			{"potato", "West Bengal"}:   "jute",
			{"potato", "Uttar Pradesh"}: "maize",
			{"potato", "Punjab"}:        "maize",
		},
		Defaults: map[string]string{
			"rice":       "wheat",
			"wheat":      "chickpea",
			"maize":      "legumes",
			"millets":    "pulses",
			"pulses":     "maize",
			"legumes":    "maize",
			"vegetables": "millets",
			"cotton":     "pulses",
			"sugarcane":  "pulses",
			"groundnut":  "sorghum",
			"sorghum":    "pulses",
			"mustard":    "maize",
			"potato":     "maize",
			"chickpea":   "maize",
			"mungbean":   "sorghum",
		},
		Alternatives: map[string][]string{
			"rice":       {"pulses", "potato", "mustard"},
			"wheat":      {"mungbean", "maize", "mustard"},
			"maize":      {"pulses", "groundnut", "vegetables"},
			"millets":    {"pulses", "groundnut"},
			"pulses":     {"maize", "sorghum", "vegetables"},
			"legumes":    {"maize", "sorghum"},
			"vegetables": {"millets", "pulses"},
			"cotton":     {"pulses", "wheat"},
			"sugarcane":  {"pulses", "vegetables"},
			"groundnut":  {"sorghum", "pulses"},
			"sorghum":    {"pulses", "chickpea"},
			"mustard":    {"maize", "pulses"},
			"potato":     {"maize", "mustard"},
			"chickpea":   {"maize", "sorghum"},
			"mungbean":   {"sorghum", "maize"},
		},
	}
}
