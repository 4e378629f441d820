package llm

import "strings"

// NormalizeAnalysis reconciles the two savings shapes the model is known to
// produce, a flat number (USD) or a nested {cost, energy, carbon} object,
// into the canonical savings_usd / savings_kwh / savings_tCO2 fields. It is
// total: missing or malformed fields default to 0, and every other key of
// the payload passes through untouched.
func NormalizeAnalysis(ai map[string]any) map[string]any {
	if ai == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(ai))
	for k, v := range ai {
		out[k] = v
	}

	recs, ok := ai["recommendations"].([]any)
	if !ok {
		return out
	}

	flat := make([]any, 0, len(recs))
	for _, raw := range recs {
		rec, ok := raw.(map[string]any)
		if !ok {
			flat = append(flat, raw)
			continue
		}

		nr := make(map[string]any, len(rec)+3)
		for k, v := range rec {
			nr[k] = v
		}

		switch sv := rec["savings"].(type) {
		case map[string]any:
			nr["savings_usd"] = asNumber(sv["cost"])
			nr["savings_kwh"] = asNumber(sv["energy"])
			nr["savings_tCO2"] = asNumber(sv["carbon"])
		default:
			nr["savings_usd"] = asNumber(rec["savings"])
			nr["savings_kwh"] = 0.0
			nr["savings_tCO2"] = 0.0
		}

		if p, ok := rec["priority"].(string); ok {
			nr["priority"] = NormalizePriority(p)
		}

		flat = append(flat, nr)
	}

	out["recommendations"] = flat
	return out
}

// NormalizePriority maps free-form priority labels onto High/Medium/Low.
// Unknown labels become Medium.
func NormalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "high":
		return "High"
	case "medium", "med":
		return "Medium"
	case "low":
		return "Low"
	default:
		return "Medium"
	}
}

// asNumber coerces the JSON number types to float64, defaulting to 0 for
// anything else.
func asNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}
