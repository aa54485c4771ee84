package models

import "time"

// EquipmentStats aggregates equipment counters for the report.
type EquipmentStats struct {
	Total int64 `json:"total"`
}

// MaintenanceStats aggregates maintenance counters for the report.
type MaintenanceStats struct {
	Total     int64 `json:"total" db:"total"`
	Pending   int64 `json:"pending" db:"pending"`
	Completed int64 `json:"completed" db:"completed"`
}

// Report holds aggregate statistics over equipment and maintenances.
type Report struct {
	Equipment    EquipmentStats   `json:"equipment"`
	Maintenances MaintenanceStats `json:"maintenances"`
	GeneratedAt  time.Time        `json:"generated_at"`
	GeneratedBy  string           `json:"generated_by"`
}
