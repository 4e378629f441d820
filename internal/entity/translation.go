package entity

import (
	"time"

	"github.com/google/uuid"
)

// Translation is one locale string cached in the translations table.
type Translation struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Locale    string    `json:"locale"`
	Value     string    `json:"value"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
