package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
)

// CreateReportRequest is the report intake DTO. CrimeTypes tolerates a JSON
// array, a JSON-encoded array in a string, or a comma-separated string.
// @Description DTO for submitting an incident report
type CreateReportRequest struct {
	Description string            `json:"description,omitempty"`
	CrimeTypes  models.CrimeTypes `json:"crime_types" validate:"required,min=1"`
	Latitude    float64           `json:"latitude" validate:"omitempty,latitude"`
	Longitude   float64           `json:"longitude" validate:"omitempty,longitude"`
	BarangayID  *int64            `json:"barangay_id,omitempty"`
}

// AssignStationRequest is the manual station override DTO.
// @Description DTO for a manual station override
type AssignStationRequest struct {
	StationID  int64  `json:"station_id" validate:"required"`
	AssignedBy string `json:"assigned_by" validate:"required"`
}

// ReportResponse is the incident report response DTO.
// @Description DTO for an incident report
type ReportResponse struct {
	ID                uuid.UUID         `json:"id"`
	Description       string            `json:"description,omitempty"`
	CrimeTypes        models.CrimeTypes `json:"crime_types"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	BarangayID        *int64            `json:"barangay_id,omitempty"`
	AssignedStationID *int64            `json:"assigned_station_id,omitempty"`
	AssignedBy        string            `json:"assigned_by,omitempty"`
	AssignedAt        *time.Time        `json:"assigned_at,omitempty"`
	Verdict           models.Verdict    `json:"verdict"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// CreateDispatchRequest is the dispatch creation DTO. Either officer_id is
// given (manual dispatch) or auto_select picks the nearest on-duty officer.
// @Description DTO for creating a patrol dispatch
type CreateDispatchRequest struct {
	ReportID            uuid.UUID `json:"report_id" validate:"required"`
	OfficerID           *int64    `json:"officer_id,omitempty"`
	AutoSelect          bool      `json:"auto_select"`
	DispatcherStationID *int64    `json:"dispatcher_station_id,omitempty"`
}

// UpdateDispatchStatusRequest is the status transition DTO.
// @Description DTO for a dispatch status transition
type UpdateDispatchStatusRequest struct {
	Status  models.DispatchStatus `json:"status" validate:"required,oneof=accepted declined en_route arrived completed cancelled"`
	Reason  string                `json:"reason,omitempty"`
	Verdict models.Verdict        `json:"verdict,omitempty" validate:"omitempty,oneof=valid invalid"`
	Notes   string                `json:"notes,omitempty"`
}

// ReassignOfficerRequest is the officer reassignment DTO.
// @Description DTO for reassigning a dispatch to another officer
type ReassignOfficerRequest struct {
	OfficerID int64 `json:"officer_id" validate:"required"`
}

// DispatchResponse is the patrol dispatch response DTO.
// @Description DTO for a patrol dispatch
type DispatchResponse struct {
	ID        uuid.UUID             `json:"id"`
	ReportID  uuid.UUID             `json:"report_id"`
	StationID *int64                `json:"station_id,omitempty"`
	OfficerID *int64                `json:"officer_id,omitempty"`
	Status    models.DispatchStatus `json:"status"`

	DispatchedAt time.Time  `json:"dispatched_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	DeclinedAt   *time.Time `json:"declined_at,omitempty"`
	EnRouteAt    *time.Time `json:"en_route_at,omitempty"`
	ArrivedAt    *time.Time `json:"arrived_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	AcceptanceTime      *int64 `json:"acceptance_time,omitempty"`
	ResponseTime        *int64 `json:"response_time,omitempty"`
	CompletionTime      *int64 `json:"completion_time,omitempty"`
	ThreeMinuteRuleMet  *bool  `json:"three_minute_rule_met,omitempty"`
	ThreeMinuteRuleTime *int64 `json:"three_minute_rule_time,omitempty"`

	DeclineReason string         `json:"decline_reason,omitempty"`
	CancelReason  string         `json:"cancel_reason,omitempty"`
	Verdict       models.Verdict `json:"verdict,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// DispatchResultResponse wraps a dispatch with its notification outcome.
// @Description DTO for a dispatch creation or reassignment result
type DispatchResultResponse struct {
	Dispatch         *DispatchResponse `json:"dispatch"`
	NotificationSent bool              `json:"notification_sent"`
	DistanceKm       *float64          `json:"distance_km,omitempty"`
}

// StationRequest is the station roster upsert DTO.
// @Description DTO for upserting a police station
type StationRequest struct {
	ID        int64    `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// BarangayRequest is the barangay roster upsert DTO.
// @Description DTO for upserting a barangay boundary
type BarangayRequest struct {
	ID              int64        `json:"id" validate:"required"`
	Name            string       `json:"name" validate:"required,min=2,max=255"`
	StationID       *int64       `json:"station_id,omitempty"`
	BoundaryPolygon [][2]float64 `json:"boundary_polygon,omitempty"`
}

// OfficerLocationRequest is the officer location fix DTO.
// @Description DTO for an officer location fix
type OfficerLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// OfficerDutyRequest is the officer duty flag DTO.
// @Description DTO for flipping an officer's duty flag
type OfficerDutyRequest struct {
	IsOnDuty *bool `json:"is_on_duty" validate:"required"`
}

// OfficerResponse is the patrol officer response DTO.
// @Description DTO for a patrol officer
type OfficerResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	AssignedStationID *int64     `json:"assigned_station_id,omitempty"`
	IsOnDuty          bool       `json:"is_on_duty"`
	LastLatitude      *float64   `json:"last_latitude,omitempty"`
	LastLongitude     *float64   `json:"last_longitude,omitempty"`
	LocationUpdatedAt *time.Time `json:"location_updated_at,omitempty"`
}
