package service

import (
	"context"
	"fmt"

	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

// RosterService manages the station, barangay and officer rosters consumed by
// the resolution chain. Every boundary or station edit invalidates the
// containment snapshot so stale geometry is never used.
type RosterService interface {
	UpsertStation(ctx context.Context, station *models.PoliceStation) error
	ListStations(ctx context.Context) ([]*models.PoliceStation, error)
	UpsertBarangay(ctx context.Context, barangay *models.Barangay) error
	ListBarangays(ctx context.Context) ([]*models.Barangay, error)
	UpdateOfficerLocation(ctx context.Context, id int64, lat, lng float64) error
	SetOfficerDuty(ctx context.Context, id int64, onDuty bool) error
	ListOnDutyOfficers(ctx context.Context) ([]*models.PatrolOfficer, error)
}

type rosterService struct {
	stations  StationRepository
	barangays BarangayRepository
	officers  OfficerRepository
	index     *ContainmentIndex
	clock     clock.Clock
	logger    *logrus.Logger
}

// NewRosterService creates the roster service.
func NewRosterService(stations StationRepository, barangays BarangayRepository, officers OfficerRepository, index *ContainmentIndex, clk clock.Clock, logger *logrus.Logger) RosterService {
	return &rosterService{
		stations:  stations,
		barangays: barangays,
		officers:  officers,
		index:     index,
		clock:     clk,
		logger:    logger,
	}
}

// UpsertStation creates or updates a station.
func (s *rosterService) UpsertStation(ctx context.Context, station *models.PoliceStation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "roster",
		"method":     "UpsertStation",
		"station_id": station.ID,
	})

	if err := s.stations.Upsert(ctx, station); err != nil {
		log.WithError(err).Error("Failed to upsert station")
		return fmt.Errorf("service: could not upsert station: %w", err)
	}
	log.Info("Station upserted")
	return nil
}

// ListStations returns the full station roster.
func (s *rosterService) ListStations(ctx context.Context) ([]*models.PoliceStation, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list stations: %w", err)
	}
	return stations, nil
}

// UpsertBarangay creates or updates a barangay and invalidates the
// containment snapshot.
func (s *rosterService) UpsertBarangay(ctx context.Context, barangay *models.Barangay) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "roster",
		"method":      "UpsertBarangay",
		"barangay_id": barangay.ID,
	})

	if err := s.barangays.Upsert(ctx, barangay); err != nil {
		log.WithError(err).Error("Failed to upsert barangay")
		return fmt.Errorf("service: could not upsert barangay: %w", err)
	}

	s.index.Invalidate()
	log.Info("Barangay upserted, containment index invalidated")
	return nil
}

// ListBarangays returns the barangay roster.
func (s *rosterService) ListBarangays(ctx context.Context) ([]*models.Barangay, error) {
	barangays, err := s.barangays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list barangays: %w", err)
	}
	return barangays, nil
}

// UpdateOfficerLocation stores a fresh location fix for an officer.
func (s *rosterService) UpdateOfficerLocation(ctx context.Context, id int64, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "roster",
		"method":     "UpdateOfficerLocation",
		"officer_id": id,
	})

	if err := s.officers.UpdateLocation(ctx, id, lat, lng, s.clock.Now()); err != nil {
		log.WithError(err).Error("Failed to update officer location")
		return fmt.Errorf("service: could not update officer location: %w", err)
	}
	log.Debug("Officer location updated")
	return nil
}

// SetOfficerDuty flips an officer's duty flag.
func (s *rosterService) SetOfficerDuty(ctx context.Context, id int64, onDuty bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "roster",
		"method":     "SetOfficerDuty",
		"officer_id": id,
		"on_duty":    onDuty,
	})

	if err := s.officers.SetOnDuty(ctx, id, onDuty); err != nil {
		log.WithError(err).Error("Failed to set officer duty flag")
		return fmt.Errorf("service: could not set officer duty: %w", err)
	}
	log.Info("Officer duty flag updated")
	return nil
}

// ListOnDutyOfficers returns every officer currently on duty.
func (s *rosterService) ListOnDutyOfficers(ctx context.Context) ([]*models.PatrolOfficer, error) {
	officers, err := s.officers.ListOnDuty(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list on-duty officers: %w", err)
	}
	return officers, nil
}
