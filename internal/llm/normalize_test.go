package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnalysisFlatSavings(t *testing.T) {
	in := map[string]any{
		"recommendations": []any{
			map[string]any{"title": "LED retrofit", "savings": 1200.0},
		},
	}
	out := NormalizeAnalysis(in)

	recs := out["recommendations"].([]any)
	rec := recs[0].(map[string]any)
	assert.Equal(t, 1200.0, rec["savings_usd"])
	assert.Equal(t, 0.0, rec["savings_kwh"])
	assert.Equal(t, 0.0, rec["savings_tCO2"])
}

func TestNormalizeAnalysisNestedSavings(t *testing.T) {
	in := map[string]any{
		"recommendations": []any{
			map[string]any{
				"title": "Chiller upgrade",
				"savings": map[string]any{
					"cost":   5000.0,
					"energy": 32000.0,
					"carbon": 12.4,
				},
			},
		},
	}
	out := NormalizeAnalysis(in)

	rec := out["recommendations"].([]any)[0].(map[string]any)
	assert.Equal(t, 5000.0, rec["savings_usd"])
	assert.Equal(t, 32000.0, rec["savings_kwh"])
	assert.Equal(t, 12.4, rec["savings_tCO2"])
}

func TestNormalizeAnalysisMissingSavings(t *testing.T) {
	in := map[string]any{
		"recommendations": []any{
			map[string]any{"title": "Seal windows"},
		},
	}
	out := NormalizeAnalysis(in)

	rec := out["recommendations"].([]any)[0].(map[string]any)
	assert.Equal(t, 0.0, rec["savings_usd"])
	assert.Equal(t, 0.0, rec["savings_kwh"])
	assert.Equal(t, 0.0, rec["savings_tCO2"])
}

func TestNormalizeAnalysisPartialNestedSavings(t *testing.T) {
	in := map[string]any{
		"recommendations": []any{
			map[string]any{
				"title":   "Insulation",
				"savings": map[string]any{"cost": "not a number"},
			},
		},
	}
	out := NormalizeAnalysis(in)

	rec := out["recommendations"].([]any)[0].(map[string]any)
	assert.Equal(t, 0.0, rec["savings_usd"])
	assert.Equal(t, 0.0, rec["savings_kwh"])
	assert.Equal(t, 0.0, rec["savings_tCO2"])
}

func TestNormalizeAnalysisPreservesOtherKeys(t *testing.T) {
	in := map[string]any{
		"findings":          []any{"high HVAC load"},
		"executive_summary": "summary",
		"recommendations": []any{
			map[string]any{"title": "x", "savings": 10.0, "roi": 2.5},
		},
	}
	out := NormalizeAnalysis(in)

	assert.Equal(t, in["findings"], out["findings"])
	assert.Equal(t, "summary", out["executive_summary"])
	rec := out["recommendations"].([]any)[0].(map[string]any)
	assert.Equal(t, 2.5, rec["roi"])
}

func TestNormalizeAnalysisTotalOnNil(t *testing.T) {
	assert.NotNil(t, NormalizeAnalysis(nil))
	out := NormalizeAnalysis(map[string]any{"recommendations": "not an array"})
	assert.Equal(t, "not an array", out["recommendations"])
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, "High", NormalizePriority("HIGH"))
	assert.Equal(t, "Medium", NormalizePriority("med"))
	assert.Equal(t, "Low", NormalizePriority(" low "))
	assert.Equal(t, "Medium", NormalizePriority("urgent"))
}
