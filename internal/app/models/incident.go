package models

import "time"

// IncidentStatus defines the emergency incident lifecycle states
type IncidentStatus string

const (
	IncidentActive        IncidentStatus = "active"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
	IncidentFalseAlarm    IncidentStatus = "false_alarm"
)

// Incident defines an emergency SOS report. Visible only to admin/authority.
type Incident struct {
	ID              int64          `json:"id" db:"id"`
	UserID          int64          `json:"userId" db:"user_id"`
	Description     string         `json:"description" db:"description"`
	Latitude        *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude       *float64       `json:"longitude,omitempty" db:"longitude"`
	Status          IncidentStatus `json:"status" db:"status"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	ResolvedAt      *time.Time     `json:"resolvedAt,omitempty" db:"resolved_at"`
	ResolutionNotes *string        `json:"resolutionNotes,omitempty" db:"resolution_notes"`

	UserName *string `json:"userName,omitempty"`
}
