package models

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentDB represents a piece of medical equipment in the database
type EquipmentDB struct {
	EquipmentID uuid.UUID `json:"id" db:"equipment_id"`        // Primary key
	Name        string    `json:"name" db:"name"`              // Human-readable equipment name
	Attrs       Attrs     `json:"attrs" db:"attrs"`            // Schemaless client-supplied fields
	CreatedBy   string    `json:"created_by" db:"created_by"`  // Username of the creator
	CreatedAt   time.Time `json:"created_at" db:"created_at"`  // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`  // Last update timestamp
}
