package service

import "errors"

// Sentinel errors surfaced to callers. Handlers map these onto HTTP statuses.
var (
	ErrReportNotFound   = errors.New("report not found")
	ErrDispatchNotFound = errors.New("dispatch not found")
	ErrOfficerNotFound  = errors.New("officer not found")
	ErrStationNotFound  = errors.New("station not found")
	ErrBarangayNotFound = errors.New("barangay not found")

	// ErrNoStationAvailable: the dispatch resolution chain was exhausted
	// because no station exists at all.
	ErrNoStationAvailable = errors.New("no police station available")

	// ErrNoOfficerAvailable: auto-dispatch found no on-duty officer.
	ErrNoOfficerAvailable = errors.New("no on-duty officer available")

	// ErrDuplicateActiveDispatch: the report already has a dispatch in a
	// non-terminal status. Retrying after that dispatch terminates succeeds.
	ErrDuplicateActiveDispatch = errors.New("report already has an active dispatch")

	ErrReasonRequired   = errors.New("a reason is required for this status")
	ErrDispatchTerminal = errors.New("dispatch is already in a terminal status")
	ErrInvalidStatus    = errors.New("invalid dispatch status")
)
