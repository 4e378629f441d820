package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
)

// AuditFile is a stored intake document with its processing state.
type AuditFile struct {
	ID               uuid.UUID            `json:"id"`
	BuildingID       uuid.UUID            `json:"building_id"`
	FileURL          string               `json:"file_url"`
	FileName         string               `json:"file_name"`
	FileType         string               `json:"file_type"`
	FileSize         int                  `json:"file_size"`
	ProcessingStatus constants.FileStatus `json:"processing_status"`
	OCRRecordID      *uuid.UUID           `json:"ocr_record_id,omitempty"`
	UploadedAt       time.Time            `json:"uploaded_at"`
}

// OCRRecord holds the raw and structured output of one OCR pass.
// One-to-one with an AuditFile.
type OCRRecord struct {
	ID            uuid.UUID       `json:"id"`
	BuildingID    uuid.UUID       `json:"building_id"`
	RawText       string          `json:"raw_text"`
	ProcessedText json.RawMessage `json:"processed_text,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	IsFloorPlan   bool            `json:"is_floor_plan"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OCRMetadata is the payload stored in ocr_records.metadata.
type OCRMetadata struct {
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"`
	FileSize    int       `json:"file_size"`
	ProcessedAt time.Time `json:"processed_at"`
	IsFloorPlan bool      `json:"is_floor_plan"`
}
