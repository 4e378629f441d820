package constants

// baselineEfficiency holds reference efficiencies by category and sub-type.
// Lookup order: exact sub-type, category default, global default.
var baselineEfficiency = map[string]map[string]float64{
	"HVAC": {
		"Chiller":   0.90,
		"Boiler":    0.85,
		"Heat Pump": 0.88,
		"default":   0.80,
	},
	"Lighting": {
		"LED":         0.95,
		"Fluorescent": 0.85,
		"default":     0.80,
	},
	"default": {
		"default": 0.75,
	},
}

// BaselineEfficiency returns the reference efficiency for (category, subType).
func BaselineEfficiency(category, subType string) float64 {
	if byType, ok := baselineEfficiency[category]; ok {
		if v, ok := byType[subType]; ok {
			return v
		}
		if v, ok := byType["default"]; ok {
			return v
		}
	}
	return baselineEfficiency["default"]["default"]
}

// EfficiencyThresholds holds the fair/good cutoffs used by the quick survey
// estimate to grade declared equipment efficiency.
type EfficiencyThresholds struct {
	Fair float64
	Good float64
}

var efficiencyThresholds = map[string]EfficiencyThresholds{
	"HVAC":     {Fair: 0.70, Good: 0.85},
	"Lighting": {Fair: 0.75, Good: 0.90},
}

var defaultThresholds = EfficiencyThresholds{Fair: 0.65, Good: 0.80}

// ThresholdsFor returns the survey efficiency thresholds for a category.
func ThresholdsFor(category string) EfficiencyThresholds {
	if t, ok := efficiencyThresholds[category]; ok {
		return t
	}
	return defaultThresholds
}
