package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchStatus is the lifecycle state of a patrol dispatch.
type DispatchStatus string

const (
	DispatchPending   DispatchStatus = "pending"
	DispatchAccepted  DispatchStatus = "accepted"
	DispatchDeclined  DispatchStatus = "declined"
	DispatchEnRoute   DispatchStatus = "en_route"
	DispatchArrived   DispatchStatus = "arrived"
	DispatchCompleted DispatchStatus = "completed"
	DispatchCancelled DispatchStatus = "cancelled"
)

// IsTerminal reports whether the status ends the dispatch lifecycle.
func (s DispatchStatus) IsTerminal() bool {
	return s == DispatchDeclined || s == DispatchCompleted || s == DispatchCancelled
}

// IsValid reports whether s is one of the named lifecycle states.
func (s DispatchStatus) IsValid() bool {
	switch s {
	case DispatchPending, DispatchAccepted, DispatchDeclined,
		DispatchEnRoute, DispatchArrived, DispatchCompleted, DispatchCancelled:
		return true
	}
	return false
}

// ThreeMinuteRuleSeconds is the response-time service target from dispatch to arrival.
const ThreeMinuteRuleSeconds = 180

// PatrolDispatch tracks one patrol assignment for a report, with one
// timestamp per named transition and derived second-granularity metrics.
type PatrolDispatch struct {
	ID        uuid.UUID      `json:"id"`
	ReportID  uuid.UUID      `json:"report_id"`
	StationID *int64         `json:"station_id,omitempty"`
	OfficerID *int64         `json:"officer_id,omitempty"`
	Status    DispatchStatus `json:"status"`

	DispatchedAt time.Time  `json:"dispatched_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	DeclinedAt   *time.Time `json:"declined_at,omitempty"`
	EnRouteAt    *time.Time `json:"en_route_at,omitempty"`
	ArrivedAt    *time.Time `json:"arrived_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	AcceptanceTime *int64 `json:"acceptance_time,omitempty"`
	ResponseTime   *int64 `json:"response_time,omitempty"`
	CompletionTime *int64 `json:"completion_time,omitempty"`

	ThreeMinuteRuleMet  *bool  `json:"three_minute_rule_met,omitempty"`
	ThreeMinuteRuleTime *int64 `json:"three_minute_rule_time,omitempty"`

	DeclineReason string  `json:"decline_reason,omitempty"`
	CancelReason  string  `json:"cancel_reason,omitempty"`
	Verdict       Verdict `json:"verdict,omitempty"`
	Notes         string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
