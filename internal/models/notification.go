package models

import "time"

// Notification kinds.
const (
	NotificationOverdue  = "overdue"
	NotificationUpcoming = "upcoming"
)

// Notification priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Notification is a derived maintenance alert. It is computed on every
// request and never persisted; the ID is freshly generated per computation.
type Notification struct {
	ID       string    `json:"id"`       // Fresh UUID, not stable across calls
	Kind     string    `json:"kind"`     // "overdue" or "upcoming"
	Title    string    `json:"title"`    // Short human-readable title
	Message  string    `json:"message"`  // Message referencing the maintenance record
	DueAt    time.Time `json:"due_at"`   // Scheduled date of the maintenance
	Priority string    `json:"priority"` // "high" for overdue, "medium" for upcoming
}
