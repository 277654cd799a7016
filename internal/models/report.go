package models

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the validity verdict of a report or a completed dispatch.
type Verdict string

const (
	VerdictChecking Verdict = "checking"
	VerdictValid    Verdict = "valid"
	VerdictInvalid  Verdict = "invalid"
)

// IncidentReport is a citizen-submitted incident pending or holding a station assignment.
type IncidentReport struct {
	ID                uuid.UUID  `json:"id"`
	Description       string     `json:"description"`
	CrimeTypes        CrimeTypes `json:"crime_types"`
	Location          Location   `json:"location"`
	AssignedStationID *int64     `json:"assigned_station_id,omitempty"`
	AssignedBy        string     `json:"assigned_by,omitempty"`
	AssignedAt        *time.Time `json:"assigned_at,omitempty"`
	Verdict           Verdict    `json:"verdict"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Location is a report location. Zero coordinates mean "unknown";
// BarangayID is set upstream by geocoding when available.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	BarangayID *int64  `json:"barangay_id,omitempty"`
}

// HasCoordinates reports whether the location carries a usable fix.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}
