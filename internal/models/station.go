package models

// PoliceStation is a precinct, the unit of dispatch responsibility.
// Coordinates may be unknown.
type PoliceStation struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the station location is known.
func (s *PoliceStation) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
