package models

import "time"

// PatrolOfficer is the patrol-role view over a user: duty state, station and
// the most recent location fix.
type PatrolOfficer struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	AssignedStationID *int64     `json:"assigned_station_id,omitempty"`
	IsOnDuty          bool       `json:"is_on_duty"`
	PushToken         string     `json:"push_token,omitempty"`
	LastLatitude      *float64   `json:"last_latitude,omitempty"`
	LastLongitude     *float64   `json:"last_longitude,omitempty"`
	LocationUpdatedAt *time.Time `json:"location_updated_at,omitempty"`
}

// HasLocation reports whether the officer has ever reported a fix.
func (o *PatrolOfficer) HasLocation() bool {
	return o.LastLatitude != nil && o.LastLongitude != nil && o.LocationUpdatedAt != nil
}

// LocationFresherThan reports whether the last fix is newer than the cutoff.
func (o *PatrolOfficer) LocationFresherThan(cutoff time.Time) bool {
	return o.HasLocation() && o.LocationUpdatedAt.After(cutoff)
}
