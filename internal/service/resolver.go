package service

import (
	"context"
	"fmt"

	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	"github.com/mvillarin/patrol_dispatch_system/internal/geo"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// StationRepository is the station roster contract.
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PoliceStation, error)
	List(ctx context.Context) ([]*models.PoliceStation, error)
	Upsert(ctx context.Context, station *models.PoliceStation) error
}

// BarangayRepository is the barangay roster contract.
type BarangayRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Barangay, error)
	List(ctx context.Context) ([]*models.Barangay, error)
	Upsert(ctx context.Context, barangay *models.Barangay) error
}

// AssignmentResolver maps a report or a dispatch onto a police station.
//
// Report resolution stops at barangay geography and may legitimately leave a
// report unassigned. Dispatch resolution keeps falling back until any station
// at all can be used, because a dispatch must not go out without one.
type AssignmentResolver struct {
	stations  StationRepository
	barangays BarangayRepository
	index     *ContainmentIndex
	cfg       *config.Config
	logger    *logrus.Logger
}

// NewAssignmentResolver creates the resolver.
func NewAssignmentResolver(stations StationRepository, barangays BarangayRepository, index *ContainmentIndex, cfg *config.Config, logger *logrus.Logger) *AssignmentResolver {
	return &AssignmentResolver{
		stations:  stations,
		barangays: barangays,
		index:     index,
		cfg:       cfg,
		logger:    logger,
	}
}

// ResolveForReport returns the station for a freshly submitted report, or nil
// when geography cannot place it. The cybercrime override is checked before
// any geography and ignores location validity entirely.
func (r *AssignmentResolver) ResolveForReport(ctx context.Context, report *models.IncidentReport) (*int64, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":   "resolver",
		"method":    "ResolveForReport",
		"report_id": report.ID,
	})

	if report.CrimeTypes.Contains("cybercrime") {
		if r.cfg.CybercrimeStationID != 0 {
			id := r.cfg.CybercrimeStationID
			log.WithField("station_id", id).Info("Resolved via cybercrime division override")
			return &id, nil
		}
		log.Warn("Report declares cybercrime but no cybercrime station is configured")
	}

	if !report.Location.HasCoordinates() {
		log.Info("Report has no usable coordinates, leaving unassigned")
		return nil, nil
	}

	if report.Location.BarangayID != nil {
		barangay, err := r.barangays.GetByID(ctx, *report.Location.BarangayID)
		if err != nil {
			return nil, fmt.Errorf("failed to load declared barangay %d: %w", *report.Location.BarangayID, err)
		}
		if barangay.StationID != nil {
			log.WithFields(logrus.Fields{
				"barangay_id": barangay.ID,
				"station_id":  *barangay.StationID,
			}).Info("Resolved via explicit barangay")
			return barangay.StationID, nil
		}
		log.WithField("barangay_id", barangay.ID).Info("Explicit barangay has no owning station")
	}

	barangay, err := r.index.Locate(ctx, report.Location.Latitude, report.Location.Longitude)
	if err != nil {
		return nil, err
	}
	if barangay != nil && barangay.StationID != nil {
		log.WithFields(logrus.Fields{
			"barangay_id": barangay.ID,
			"station_id":  *barangay.StationID,
		}).Info("Resolved via boundary containment")
		return barangay.StationID, nil
	}

	// No proximity fallback for plain report assignment. A report outside
	// every boundary stays unassigned until a dispatch or a manual override
	// picks it up.
	log.Info("No boundary matched, leaving report unassigned")
	return nil, nil
}

// ResolveForDispatch walks the dispatch priority chain: the report's existing
// assignment, the officer's station, the dispatcher's station, the nearest
// station by great-circle distance, and finally the lowest-id station in the
// system. It fails with ErrNoStationAvailable only when zero stations exist.
func (r *AssignmentResolver) ResolveForDispatch(ctx context.Context, report *models.IncidentReport, officerStationID, dispatcherStationID *int64) (int64, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":   "resolver",
		"method":    "ResolveForDispatch",
		"report_id": report.ID,
	})

	if report.AssignedStationID != nil {
		log.WithField("station_id", *report.AssignedStationID).Info("Resolved via report assignment")
		return *report.AssignedStationID, nil
	}
	if officerStationID != nil {
		log.WithField("station_id", *officerStationID).Info("Resolved via officer station")
		return *officerStationID, nil
	}
	if dispatcherStationID != nil {
		log.WithField("station_id", *dispatcherStationID).Info("Resolved via dispatcher station")
		return *dispatcherStationID, nil
	}

	stations, err := r.stations.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list stations: %w", err)
	}
	if len(stations) == 0 {
		log.Warn("No stations exist, dispatch cannot be assigned")
		return 0, ErrNoStationAvailable
	}

	if report.Location.HasCoordinates() {
		if nearest := nearestStation(stations, report.Location.Latitude, report.Location.Longitude); nearest != nil {
			log.WithField("station_id", nearest.ID).Info("Resolved via station proximity fallback")
			return nearest.ID, nil
		}
		log.Info("No station has known coordinates, skipping proximity fallback")
	}

	fallback := stations[0]
	for _, st := range stations[1:] {
		if st.ID < fallback.ID {
			fallback = st
		}
	}
	log.WithField("station_id", fallback.ID).Info("Resolved via lowest-id station fallback")
	return fallback.ID, nil
}

// nearestStation returns the closest station with known coordinates, or nil
// when none has them.
func nearestStation(stations []*models.PoliceStation, lat, lng float64) *models.PoliceStation {
	var best *models.PoliceStation
	var bestKm float64
	for _, st := range stations {
		if !st.HasCoordinates() {
			continue
		}
		km := geo.HaversineKm(lat, lng, *st.Latitude, *st.Longitude)
		if best == nil || km < bestKm {
			best = st
			bestKm = km
		}
	}
	return best
}
