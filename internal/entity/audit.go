package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
)

// Audit is one assessment of a building at a given level. At most one live
// record exists per (building, type); writes are upserts against that pair.
type Audit struct {
	ID               uuid.UUID             `json:"id"`
	BuildingID       uuid.UUID             `json:"building_id"`
	Type             constants.AuditType   `json:"type"`
	Status           constants.AuditStatus `json:"status"`
	Findings         json.RawMessage       `json:"findings,omitempty"`
	Recommendations  json.RawMessage       `json:"recommendations,omitempty"`
	KeyMetrics       json.RawMessage       `json:"key_metrics,omitempty"`
	ExecutiveSummary json.RawMessage       `json:"executive_summary,omitempty"`
	AIRaw            json.RawMessage       `json:"ai_raw,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// Recommendation is the canonical normalized shape every consumer reads.
// The savings fields are always numeric regardless of the source payload.
type Recommendation struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	SavingsUSD   float64 `json:"savings_usd"`
	SavingsKWh   float64 `json:"savings_kwh"`
	SavingsTCO2  float64 `json:"savings_tCO2"`
	Cost         float64 `json:"cost"`
	ROI          float64 `json:"roi"`
	Priority     string  `json:"priority"` // High | Medium | Low
	Category     string  `json:"category,omitempty"`
	Implement    string  `json:"implementation,omitempty"`
}

// DetailedReport is a cached level-II/III analysis.
type DetailedReport struct {
	ID          uuid.UUID       `json:"id"`
	BuildingID  uuid.UUID       `json:"building_id"`
	AuditID     uuid.UUID       `json:"audit_id"`
	Content     json.RawMessage `json:"content"`
	GeneratedAt time.Time       `json:"generated_at"`
}
