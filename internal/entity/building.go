package entity

import (
	"time"

	"github.com/google/uuid"
)

// Building is the audited property. Created once at intake; rooms, equipment
// and audits accumulate against it through the wizard steps.
type Building struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Type             string    `json:"type"`
	Area             float64   `json:"area"`
	ConstructionYear *int      `json:"construction_year,omitempty"`
	RoomsDeclared    *int      `json:"rooms_declared,omitempty"`
	Residents        *int      `json:"residents,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
