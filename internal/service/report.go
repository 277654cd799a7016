package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

// AssignedByResolver marks a station assignment written by the geographic
// resolver rather than a human override.
const AssignedByResolver = "geo_resolver"

// ReportRepository is the incident report persistence contract.
type ReportRepository interface {
	Create(ctx context.Context, report *models.IncidentReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.IncidentReport, error)
	List(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error)
	UpdateAssignment(ctx context.Context, id uuid.UUID, stationID int64, assignedBy string, assignedAt time.Time) error
	UpdateVerdict(ctx context.Context, id uuid.UUID, verdict models.Verdict) error
}

// ReportService is the business contract for incident report intake and
// station assignment.
type ReportService interface {
	CreateReport(ctx context.Context, report *models.IncidentReport) error
	GetReport(ctx context.Context, id uuid.UUID) (*models.IncidentReport, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error)
	AssignStation(ctx context.Context, id uuid.UUID, stationID int64, assignedBy string) (*models.IncidentReport, error)
}

type reportService struct {
	repo     ReportRepository
	stations StationRepository
	resolver *AssignmentResolver
	clock    clock.Clock
	logger   *logrus.Logger
}

// NewReportService creates the report service.
func NewReportService(repo ReportRepository, stations StationRepository, resolver *AssignmentResolver, clk clock.Clock, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:     repo,
		stations: stations,
		resolver: resolver,
		clock:    clk,
		logger:   logger,
	}
}

// CreateReport persists a new report and runs geographic station assignment.
// A report the resolver cannot place stays unassigned; that is not an error.
func (s *reportService) CreateReport(ctx context.Context, report *models.IncidentReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "CreateReport",
	})
	log.Info("Attempting to create a new incident report")

	report.ID = uuid.New()
	report.Verdict = models.VerdictChecking
	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	stationID, err := s.resolver.ResolveForReport(ctx, report)
	if err != nil {
		log.WithError(err).Error("Failed to resolve station for report")
		return fmt.Errorf("service: could not resolve station for report: %w", err)
	}
	if stationID == nil {
		log.WithField("report_id", report.ID).Info("Report created without a station assignment")
		return nil
	}

	now := s.clock.Now()
	if err := s.repo.UpdateAssignment(ctx, report.ID, *stationID, AssignedByResolver, now); err != nil {
		log.WithError(err).Error("Failed to persist report assignment")
		return fmt.Errorf("service: could not persist report assignment: %w", err)
	}
	report.AssignedStationID = stationID
	report.AssignedBy = AssignedByResolver
	report.AssignedAt = &now

	log.WithFields(logrus.Fields{
		"report_id":  report.ID,
		"station_id": *stationID,
	}).Info("Report created and assigned")
	return nil
}

// GetReport fetches a report by id.
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.IncidentReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	return report, nil
}

// ListReports returns reports with pagination.
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reports, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}

// AssignStation applies a manual station override with audit fields.
func (s *reportService) AssignStation(ctx context.Context, id uuid.UUID, stationID int64, assignedBy string) (*models.IncidentReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "AssignStation",
		"report_id":  id,
		"station_id": stationID,
	})

	if _, err := s.stations.GetByID(ctx, stationID); err != nil {
		log.WithError(err).Warn("Manual override targets an unknown station")
		return nil, fmt.Errorf("service: station %d not found for override: %w", stationID, err)
	}

	now := s.clock.Now()
	if err := s.repo.UpdateAssignment(ctx, id, stationID, assignedBy, now); err != nil {
		log.WithError(err).Error("Failed to apply manual station override")
		return nil, fmt.Errorf("service: could not apply station override: %w", err)
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload report after override: %w", err)
	}
	log.WithField("assigned_by", assignedBy).Info("Manual station override applied")
	return report, nil
}
