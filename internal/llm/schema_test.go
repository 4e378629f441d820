package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAnalysisSchemaAccepts(t *testing.T) {
	data := []byte(`{
		"findings": ["old chiller"],
		"recommendations": [
			{"title": "Replace chiller", "savings_usd": 5000, "savings_kwh": 32000, "savings_tCO2": 12.4, "priority": "High"}
		],
		"key_metrics": {"eui": 180},
		"executive_summary": "ok"
	}`)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), data))
}

func TestValidateAnalysisSchemaRejectsStringSavings(t *testing.T) {
	data := []byte(`{
		"recommendations": [
			{"title": "x", "savings_usd": "5000", "savings_kwh": 0, "savings_tCO2": 0}
		]
	}`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), data))
}

func TestValidateAnalysisSchemaRejectsMissingRecommendations(t *testing.T) {
	assert.Error(t, ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), []byte(`{"findings": []}`)))
}

func TestValidateAnalysisSchemaRejectsBadPriority(t *testing.T) {
	data := []byte(`{
		"recommendations": [
			{"title": "x", "savings_usd": 1, "savings_kwh": 0, "savings_tCO2": 0, "priority": "urgent"}
		]
	}`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), data))
}
