package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
)

// Equipment is a surveyed energy consumer collected in the detailed-audit
// step. Location references a room by name, not ID.
type Equipment struct {
	ID             uuid.UUID            `json:"id"`
	BuildingID     uuid.UUID            `json:"building_id"`
	RoomID         *uuid.UUID           `json:"room_id,omitempty"`
	Name           string               `json:"name"`
	Category       string               `json:"category"`
	SubType        string               `json:"sub_type,omitempty"`
	Location       string               `json:"location,omitempty"`
	RatedPower     float64              `json:"rated_power"`     // kW
	Efficiency     float64              `json:"efficiency"`      // 0..1
	OperatingHours float64              `json:"operating_hours"` // hours/day
	OperatingDays  float64              `json:"operating_days"`  // days/week
	LoadFactor     constants.LoadFactor `json:"load_factor"`
	Condition      string               `json:"condition,omitempty"`
	Age            int                  `json:"age"`
	ControlSystem  string               `json:"control_system,omitempty"`
	EnergyMetered  bool                 `json:"energy_metered"`
	IoTConnected   bool                 `json:"iot_connected"`
	Notes          *string              `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// EnrichedEquipment carries the derived metrics computed for the detailed
// audit alongside the declared fields.
type EnrichedEquipment struct {
	Equipment
	AnnualEnergy     float64  `json:"annualEnergy"`     // kWh/year
	SavingsPotential float64  `json:"savingsPotential"` // kWh/year
	EfficiencyGap    float64  `json:"efficiencyGap"`
	Recommendations  []string `json:"recommendations,omitempty"`
}
