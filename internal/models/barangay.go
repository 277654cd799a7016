package models

// Barangay is the smallest jurisdictional polygon unit used for geofencing a
// report to a station. The boundary ring may be absent or malformed; such
// barangays never match a containment query.
type Barangay struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	StationID       *int64       `json:"station_id,omitempty"`
	BoundaryPolygon [][2]float64 `json:"boundary_polygon,omitempty"`
}
