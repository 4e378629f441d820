package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildAnalysisJSONSchema returns the JSON schema an analysis payload must
// satisfy after normalization. Savings fields are required and numeric so a
// payload that slipped past NormalizeAnalysis is rejected here.
func BuildAnalysisJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"findings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":        map[string]any{"type": "string"},
						"description":  map[string]any{"type": "string"},
						"savings_usd":  map[string]any{"type": "number"},
						"savings_kwh":  map[string]any{"type": "number"},
						"savings_tCO2": map[string]any{"type": "number"},
						"cost":         map[string]any{"type": "number"},
						"roi":          map[string]any{"type": "number"},
						"priority": map[string]any{
							"type": "string",
							"enum": []any{"High", "Medium", "Low"},
						},
						"category":  map[string]any{"type": "string"},
						"implement": map[string]any{"type": "string"},
					},
					"required": []any{"title", "savings_usd", "savings_kwh", "savings_tCO2"},
				},
			},
			"key_metrics":       map[string]any{"type": "object"},
			"executive_summary": map[string]any{"type": "string"},
		},
		"required": []any{"recommendations"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
