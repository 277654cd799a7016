package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mvillarin/patrol_dispatch_system/internal/geo"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/pkg/clock"
	"github.com/sirupsen/logrus"
)

// OfficerRepository is the on-duty officer roster contract.
type OfficerRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PatrolOfficer, error)
	ListOnDuty(ctx context.Context) ([]*models.PatrolOfficer, error)
	UpdateLocation(ctx context.Context, id int64, lat, lng float64, at time.Time) error
	SetOnDuty(ctx context.Context, id int64, onDuty bool) error
}

// SelectedOfficer is the auto-dispatch pick. DistanceKm is nil when the
// officer location or the report location is unknown.
type SelectedOfficer struct {
	Officer    *models.PatrolOfficer
	DistanceKm *float64
}

// OfficerSelector picks the best on-duty officer for auto-dispatch with
// tiered degradation: fresh fixes by distance, then any located officer by
// fix recency, then an arbitrary on-duty officer.
type OfficerSelector struct {
	officers OfficerRepository
	clock    clock.Clock
	freshFix time.Duration
	logger   *logrus.Logger
}

// NewOfficerSelector creates the selector. freshFix is the maximum age of a
// location fix to count as tier-1 fresh.
func NewOfficerSelector(officers OfficerRepository, clk clock.Clock, freshFix time.Duration, logger *logrus.Logger) *OfficerSelector {
	return &OfficerSelector{
		officers: officers,
		clock:    clk,
		freshFix: freshFix,
		logger:   logger,
	}
}

// SelectForAutoDispatch picks the officer for the report location. It fails
// with ErrNoOfficerAvailable only when nobody is on duty at all.
func (s *OfficerSelector) SelectForAutoDispatch(ctx context.Context, report *models.IncidentReport) (*SelectedOfficer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "selector",
		"method":    "SelectForAutoDispatch",
		"report_id": report.ID,
	})

	onDuty, err := s.officers.ListOnDuty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list on-duty officers: %w", err)
	}
	if len(onDuty) == 0 {
		log.Warn("No on-duty officers available for auto-dispatch")
		return nil, ErrNoOfficerAvailable
	}

	if report.Location.HasCoordinates() {
		if picked := s.pickFresh(onDuty, report.Location.Latitude, report.Location.Longitude); picked != nil {
			log.WithFields(logrus.Fields{
				"officer_id":  picked.Officer.ID,
				"distance_km": *picked.DistanceKm,
			}).Info("Selected officer with fresh location fix")
			return picked, nil
		}
		log.Info("No officer has a fresh location fix, degrading to fix recency")
	} else {
		log.Info("Report has no usable coordinates, degrading to fix recency")
	}

	picked := pickMostRecentlyLocated(onDuty)
	if picked.Officer.HasLocation() && report.Location.HasCoordinates() {
		km := geo.HaversineKm(report.Location.Latitude, report.Location.Longitude,
			*picked.Officer.LastLatitude, *picked.Officer.LastLongitude)
		picked.DistanceKm = &km
	}
	log.WithField("officer_id", picked.Officer.ID).Info("Selected officer without fresh fix")
	return picked, nil
}

// pickFresh returns the nearest officer among those with a fix newer than the
// freshness cutoff, ties broken by most-recent fix. Nil when no candidate.
func (s *OfficerSelector) pickFresh(onDuty []*models.PatrolOfficer, lat, lng float64) *SelectedOfficer {
	cutoff := s.clock.Now().Add(-s.freshFix)

	var best *models.PatrolOfficer
	var bestKm float64
	for _, o := range onDuty {
		if !o.LocationFresherThan(cutoff) {
			continue
		}
		km := geo.HaversineKm(lat, lng, *o.LastLatitude, *o.LastLongitude)
		switch {
		case best == nil || km < bestKm:
			best = o
			bestKm = km
		case km == bestKm && o.LocationUpdatedAt.After(*best.LocationUpdatedAt):
			best = o
		}
	}
	if best == nil {
		return nil
	}
	return &SelectedOfficer{Officer: best, DistanceKm: &bestKm}
}

// pickMostRecentlyLocated returns the officer with the newest fix of any age,
// or an arbitrary one when nobody has ever reported a location.
func pickMostRecentlyLocated(onDuty []*models.PatrolOfficer) *SelectedOfficer {
	best := onDuty[0]
	for _, o := range onDuty[1:] {
		if !o.HasLocation() {
			continue
		}
		if !best.HasLocation() || o.LocationUpdatedAt.After(*best.LocationUpdatedAt) {
			best = o
		}
	}
	return &SelectedOfficer{Officer: best}
}
