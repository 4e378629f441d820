package constants

import "strings"

// LoadFactor is the declared utilization band for a piece of equipment.
type LoadFactor string

const (
	LoadLow    LoadFactor = "Low"
	LoadMedium LoadFactor = "Medium"
	LoadHigh   LoadFactor = "High"
)

// DetailedMultiplier maps a load factor to the numeric multiplier used by the
// detailed-audit energy calculation. Unknown bands fall back to 0.5.
//
// Note: the survey estimate uses a different band table (SurveyMultiplier).
// The two sets are intentionally kept separate pending product clarification.
func DetailedMultiplier(lf LoadFactor) float64 {
	switch normalizeLoad(lf) {
	case LoadLow:
		return 0.33
	case LoadMedium:
		return 0.66
	case LoadHigh:
		return 1.0
	default:
		return 0.5
	}
}

// SurveyMultiplier maps a load factor to the multiplier used by the quick
// equipment-survey savings estimate.
func SurveyMultiplier(lf LoadFactor) float64 {
	switch normalizeLoad(lf) {
	case LoadLow:
		return 0.3
	case LoadMedium:
		return 0.6
	case LoadHigh:
		return 0.9
	default:
		return 0.6
	}
}

// normalizeLoad tolerates the long UI labels ("Low (0-33%)") and casing noise.
func normalizeLoad(lf LoadFactor) LoadFactor {
	s := strings.ToLower(strings.TrimSpace(string(lf)))
	switch {
	case strings.HasPrefix(s, "low"):
		return LoadLow
	case strings.HasPrefix(s, "medium"):
		return LoadMedium
	case strings.HasPrefix(s, "high"):
		return LoadHigh
	default:
		return LoadFactor("")
	}
}
