package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Room belongs to a building. Rooms come either from floor-plan OCR
// extraction or from the equal-split fallback when no plan data is usable.
type Room struct {
	ID           uuid.UUID       `json:"id"`
	BuildingID   uuid.UUID       `json:"building_id"`
	Name         string          `json:"name"`
	Area         float64         `json:"area"`
	LightingType *string         `json:"lighting_type,omitempty"`
	NumFixtures  *int            `json:"num_fixtures,omitempty"`
	ACType       *string         `json:"ac_type,omitempty"`
	ACSize       *float64        `json:"ac_size,omitempty"`
	Windows      *int            `json:"windows,omitempty"`
	RoomData     json.RawMessage `json:"room_data,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RoomData is the structured payload stored in rooms.room_data.
type RoomData struct {
	Dimensions       *Dimensions `json:"dimensions,omitempty"`
	ExtractedFromOCR bool        `json:"extracted_from_ocr,omitempty"`
	IsDefault        bool        `json:"is_default,omitempty"`
	OCRRecordID      *uuid.UUID  `json:"ocr_record_id,omitempty"`
}

// Dimensions is a width/length pair; strings preserve the source notation
// ("12'-6\"") when the room came from a floor plan.
type Dimensions struct {
	Width  string `json:"width"`
	Length string `json:"length"`
}
