package models

import (
	"time"

	"github.com/google/uuid"
)

// Maintenance statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// MaintenanceDB represents a scheduled maintenance record in the database
type MaintenanceDB struct {
	MaintenanceID uuid.UUID `json:"id" db:"maintenance_id"`       // Primary key
	EquipmentID   uuid.UUID `json:"equipment_id" db:"equipment_id"` // Equipment this maintenance belongs to
	ScheduledAt   time.Time `json:"scheduled_at" db:"scheduled_at"` // When the maintenance is due
	Status        string    `json:"status" db:"status"`           // "pending", "completed", ...
	Attrs         Attrs     `json:"attrs" db:"attrs"`             // Schemaless client-supplied fields
	CreatedBy     string    `json:"created_by" db:"created_by"`   // Username of the creator
	CreatedAt     time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
