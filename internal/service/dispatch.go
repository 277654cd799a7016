package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/push"
	"github.com/mvillarin/patrol_dispatch_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

// DispatchRepository is the patrol dispatch persistence contract. Create must
// refuse a second non-terminal dispatch for the same report with
// ErrDuplicateActiveDispatch; the table carries a partial unique index so the
// check holds under concurrent creates, not only on the read-then-write path.
type DispatchRepository interface {
	Create(ctx context.Context, dispatch *models.PatrolDispatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PatrolDispatch, error)
	GetActiveByReport(ctx context.Context, reportID uuid.UUID) (*models.PatrolDispatch, error)
	Update(ctx context.Context, dispatch *models.PatrolDispatch) error
	List(ctx context.Context, page, pageSize int) ([]*models.PatrolDispatch, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.PatrolDispatch, error)
}

// CreateDispatchRequest creates a dispatch either manually (OfficerID set) or
// via auto-selection (AutoSelect). DispatcherStationID feeds the station
// resolution chain.
type CreateDispatchRequest struct {
	ReportID            uuid.UUID
	OfficerID           *int64
	AutoSelect          bool
	DispatcherStationID *int64
}

// DispatchResult reports the created or mutated dispatch plus whether a push
// notification actually went out, so callers know when an officer was
// selected but could not be alerted.
type DispatchResult struct {
	Dispatch         *models.PatrolDispatch
	NotificationSent bool
	DistanceKm       *float64
}

// TransitionOptions carries the per-target extras of a status change.
type TransitionOptions struct {
	Reason  string
	Verdict models.Verdict
	Notes   string
}

// DispatchService owns the dispatch state machine: creation, officer
// reassignment and status transitions with their derived time metrics.
type DispatchService interface {
	CreateDispatch(ctx context.Context, req CreateDispatchRequest) (*DispatchResult, error)
	GetDispatch(ctx context.Context, id uuid.UUID) (*models.PatrolDispatch, error)
	ListDispatches(ctx context.Context, page, pageSize int) ([]*models.PatrolDispatch, error)
	ListReportDispatches(ctx context.Context, reportID uuid.UUID) ([]*models.PatrolDispatch, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target models.DispatchStatus, opts TransitionOptions) (*models.PatrolDispatch, error)
	ReassignOfficer(ctx context.Context, id uuid.UUID, officerID int64) (*DispatchResult, error)
}

type dispatchService struct {
	dispatches DispatchRepository
	reports    ReportRepository
	officers   OfficerRepository
	resolver   *AssignmentResolver
	selector   *OfficerSelector
	publisher  push.Publisher
	clock      clock.Clock
	ttlSeconds int
	logger     *logrus.Logger
}

// NewDispatchService creates the dispatch lifecycle service. ttlSeconds is
// the push notification time-to-live for urgent dispatch alerts.
func NewDispatchService(
	dispatches DispatchRepository,
	reports ReportRepository,
	officers OfficerRepository,
	resolver *AssignmentResolver,
	selector *OfficerSelector,
	publisher push.Publisher,
	clk clock.Clock,
	ttlSeconds int,
	logger *logrus.Logger,
) DispatchService {
	return &dispatchService{
		dispatches: dispatches,
		reports:    reports,
		officers:   officers,
		resolver:   resolver,
		selector:   selector,
		publisher:  publisher,
		clock:      clk,
		ttlSeconds: ttlSeconds,
		logger:     logger,
	}
}

// CreateDispatch creates a dispatch for a report, selecting an officer when
// requested and resolving the station through the full fallback chain. The
// report may hold at most one non-terminal dispatch at a time.
func (s *dispatchService) CreateDispatch(ctx context.Context, req CreateDispatchRequest) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "CreateDispatch",
		"report_id": req.ReportID,
	})
	log.Info("Attempting to create a dispatch")

	report, err := s.reports.GetByID(ctx, req.ReportID)
	if err != nil {
		log.WithError(err).Warn("Dispatch requested for an unknown report")
		return nil, fmt.Errorf("service: %w: %s", ErrReportNotFound, req.ReportID)
	}

	if active, err := s.dispatches.GetActiveByReport(ctx, req.ReportID); err != nil {
		return nil, fmt.Errorf("service: could not check for active dispatch: %w", err)
	} else if active != nil {
		log.WithField("dispatch_id", active.ID).Warn("Report already has an active dispatch")
		return nil, ErrDuplicateActiveDispatch
	}

	var officer *models.PatrolOfficer
	var distanceKm *float64
	switch {
	case req.OfficerID != nil:
		officer, err = s.officers.GetByID(ctx, *req.OfficerID)
		if err != nil {
			log.WithError(err).Warn("Manual dispatch targets an unknown officer")
			return nil, fmt.Errorf("service: %w: %d", ErrOfficerNotFound, *req.OfficerID)
		}
	case req.AutoSelect:
		selected, err := s.selector.SelectForAutoDispatch(ctx, report)
		if err != nil {
			return nil, err
		}
		officer = selected.Officer
		distanceKm = selected.DistanceKm
	}

	var officerStationID *int64
	if officer != nil {
		officerStationID = officer.AssignedStationID
	}
	stationID, err := s.resolver.ResolveForDispatch(ctx, report, officerStationID, req.DispatcherStationID)
	if err != nil {
		return nil, err
	}

	dispatch := &models.PatrolDispatch{
		ID:           uuid.New(),
		ReportID:     report.ID,
		StationID:    &stationID,
		Status:       models.DispatchPending,
		DispatchedAt: s.clock.Now(),
	}
	if officer != nil {
		dispatch.OfficerID = &officer.ID
	}

	if err := s.dispatches.Create(ctx, dispatch); err != nil {
		log.WithError(err).Error("Failed to create dispatch in repository")
		return nil, fmt.Errorf("service: could not create dispatch: %w", err)
	}

	result := &DispatchResult{Dispatch: dispatch, DistanceKm: distanceKm}
	if officer != nil {
		result.NotificationSent = s.notifyOfficer(ctx, dispatch, report, officer, distanceKm)
	}

	log.WithFields(logrus.Fields{
		"dispatch_id":       dispatch.ID,
		"station_id":        stationID,
		"notification_sent": result.NotificationSent,
	}).Info("Dispatch created")
	return result, nil
}

// GetDispatch fetches a dispatch by id.
func (s *dispatchService) GetDispatch(ctx context.Context, id uuid.UUID) (*models.PatrolDispatch, error) {
	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get dispatch: %w", err)
	}
	return dispatch, nil
}

// ListDispatches returns dispatches with pagination.
func (s *dispatchService) ListDispatches(ctx context.Context, page, pageSize int) ([]*models.PatrolDispatch, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	dispatches, err := s.dispatches.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list dispatches: %w", err)
	}
	return dispatches, nil
}

// ListReportDispatches returns the dispatch history of one report.
func (s *dispatchService) ListReportDispatches(ctx context.Context, reportID uuid.UUID) ([]*models.PatrolDispatch, error) {
	dispatches, err := s.dispatches.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list report dispatches: %w", err)
	}
	return dispatches, nil
}

// UpdateStatus moves a non-terminal dispatch to any of the six named target
// states. No adjacency graph is enforced; only per-target field requirements
// and metric computation apply.
func (s *dispatchService) UpdateStatus(ctx context.Context, id uuid.UUID, target models.DispatchStatus, opts TransitionOptions) (*models.PatrolDispatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "UpdateStatus",
		"dispatch_id": id,
		"target":      target,
	})

	if !target.IsValid() || target == models.DispatchPending {
		return nil, fmt.Errorf("service: %w: %q", ErrInvalidStatus, target)
	}

	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: %w: %s", ErrDispatchNotFound, id)
	}
	if dispatch.Status.IsTerminal() {
		log.WithField("status", dispatch.Status).Warn("Transition refused on terminal dispatch")
		return nil, ErrDispatchTerminal
	}

	now := s.clock.Now()
	switch target {
	case models.DispatchAccepted:
		dispatch.AcceptedAt = &now
		acceptance := elapsedSeconds(dispatch.DispatchedAt, now)
		dispatch.AcceptanceTime = &acceptance

	case models.DispatchDeclined:
		if opts.Reason == "" {
			return nil, fmt.Errorf("service: %w: decline", ErrReasonRequired)
		}
		dispatch.DeclinedAt = &now
		dispatch.DeclineReason = opts.Reason

	case models.DispatchEnRoute:
		dispatch.EnRouteAt = &now

	case models.DispatchArrived:
		dispatch.ArrivedAt = &now
		response := elapsedSeconds(dispatch.DispatchedAt, now)
		dispatch.ResponseTime = &response
		met := response <= models.ThreeMinuteRuleSeconds
		dispatch.ThreeMinuteRuleMet = &met
		dispatch.ThreeMinuteRuleTime = &response

	case models.DispatchCompleted:
		dispatch.CompletedAt = &now
		// Completion is measured from dispatch, uniformly, so dispatches
		// completed without an arrival stamp still get a metric.
		completion := elapsedSeconds(dispatch.DispatchedAt, now)
		dispatch.CompletionTime = &completion
		dispatch.Notes = opts.Notes
		if opts.Verdict == models.VerdictValid || opts.Verdict == models.VerdictInvalid {
			dispatch.Verdict = opts.Verdict
		}

	case models.DispatchCancelled:
		if opts.Reason == "" {
			return nil, fmt.Errorf("service: %w: cancel", ErrReasonRequired)
		}
		dispatch.CancelledAt = &now
		dispatch.CancelReason = opts.Reason
	}
	dispatch.Status = target

	if err := s.dispatches.Update(ctx, dispatch); err != nil {
		log.WithError(err).Error("Failed to update dispatch in repository")
		return nil, fmt.Errorf("service: could not update dispatch: %w", err)
	}

	// The completion verdict is the single point where a dispatch outcome
	// writes back onto report state.
	if target == models.DispatchCompleted && dispatch.Verdict != "" {
		if err := s.reports.UpdateVerdict(ctx, dispatch.ReportID, dispatch.Verdict); err != nil {
			log.WithError(err).Error("Failed to propagate verdict onto report")
			return nil, fmt.Errorf("service: could not propagate verdict: %w", err)
		}
	}

	log.WithField("status", dispatch.Status).Info("Dispatch status updated")
	return dispatch, nil
}

// ReassignOfficer moves a non-terminal dispatch to a different officer and
// re-triggers the push notification.
func (s *dispatchService) ReassignOfficer(ctx context.Context, id uuid.UUID, officerID int64) (*DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "ReassignOfficer",
		"dispatch_id": id,
		"officer_id":  officerID,
	})

	dispatch, err := s.dispatches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: %w: %s", ErrDispatchNotFound, id)
	}
	if dispatch.Status.IsTerminal() {
		return nil, ErrDispatchTerminal
	}

	officer, err := s.officers.GetByID(ctx, officerID)
	if err != nil {
		log.WithError(err).Warn("Reassignment targets an unknown officer")
		return nil, fmt.Errorf("service: %w: %d", ErrOfficerNotFound, officerID)
	}

	dispatch.OfficerID = &officer.ID
	if err := s.dispatches.Update(ctx, dispatch); err != nil {
		log.WithError(err).Error("Failed to reassign dispatch in repository")
		return nil, fmt.Errorf("service: could not reassign dispatch: %w", err)
	}

	report, err := s.reports.GetByID(ctx, dispatch.ReportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load report for notification: %w", err)
	}

	result := &DispatchResult{
		Dispatch:         dispatch,
		NotificationSent: s.notifyOfficer(ctx, dispatch, report, officer, nil),
	}
	log.WithField("notification_sent", result.NotificationSent).Info("Dispatch reassigned")
	return result, nil
}

// notifyOfficer enqueues the dispatch alert. It never fails the caller: a
// missing token or a queue error is logged and reported as "not sent".
func (s *dispatchService) notifyOfficer(ctx context.Context, dispatch *models.PatrolDispatch, report *models.IncidentReport, officer *models.PatrolOfficer, distanceKm *float64) bool {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"dispatch_id": dispatch.ID,
		"officer_id":  officer.ID,
	})

	if officer.PushToken == "" {
		log.Warn("Officer has no push token, dispatch alert not sent")
		return false
	}

	notification := push.Notification{
		Token:      officer.PushToken,
		Title:      "Patrol Dispatch",
		Body:       fmt.Sprintf("You have been dispatched to respond to a %s report.", report.CrimeTypes.Primary()),
		Urgency:    "high",
		TTLSeconds: s.ttlSeconds,
		Data: push.Payload{
			DispatchID: dispatch.ID.String(),
			ReportID:   report.ID.String(),
			CrimeType:  report.CrimeTypes.Primary(),
			DistanceKm: distanceKm,
		},
	}

	if err := s.publisher.Publish(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to enqueue dispatch alert")
		return false
	}
	return true
}

// elapsedSeconds is the whole-second interval between two stamps.
func elapsedSeconds(from, to time.Time) int64 {
	return int64(to.Sub(from) / time.Second)
}
