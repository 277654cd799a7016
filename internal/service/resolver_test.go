package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cybercrimeStationID = int64(99)

// Fixture points sit around downtown Davao City.
const (
	davaoLat = 7.0710
	davaoLng = 125.6116
)

// davaoSquare contains the (davaoLat, davaoLng) fixture point.
var davaoSquare = [][2]float64{
	{7.05, 125.60},
	{7.05, 125.63},
	{7.09, 125.63},
	{7.09, 125.60},
}

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

// newTestResolver builds a resolver over mocked rosters.
func newTestResolver(t *testing.T) (*AssignmentResolver, *mocks.MockStationRepository, *mocks.MockBarangayRepository) {
	ctrl := gomock.NewController(t)
	stationsMock := mocks.NewMockStationRepository(ctrl)
	barangaysMock := mocks.NewMockBarangayRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		CybercrimeStationID: cybercrimeStationID,
	}

	index := NewContainmentIndex(barangaysMock)
	resolver := NewAssignmentResolver(stationsMock, barangaysMock, index, cfg, logger)
	return resolver, stationsMock, barangaysMock
}

func TestResolveForReport_CybercrimeOverridesGeography(t *testing.T) {
	resolver, _, _ := newTestResolver(t)
	ctx := context.Background()

	// No coordinates at all: the override still fires before geography.
	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Online Cybercrime Fraud, Theft"),
	}

	stationID, err := resolver.ResolveForReport(ctx, report)

	require.NoError(t, err)
	require.NotNil(t, stationID)
	assert.Equal(t, cybercrimeStationID, *stationID)
}

func TestResolveForReport_MissingCoordinatesStaysUnassigned(t *testing.T) {
	resolver, _, _ := newTestResolver(t)
	ctx := context.Background()

	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Theft"),
	}

	stationID, err := resolver.ResolveForReport(ctx, report)

	require.NoError(t, err)
	assert.Nil(t, stationID)
}

func TestResolveForReport_ExplicitBarangayBeatsContainment(t *testing.T) {
	resolver, _, barangaysMock := newTestResolver(t)
	ctx := context.Background()

	// The declared barangay wins even though the coordinates geometrically
	// fall inside a different polygon; containment is never consulted.
	barangaysMock.EXPECT().
		GetByID(ctx, int64(5)).
		Return(&models.Barangay{ID: 5, StationID: int64Ptr(9)}, nil).
		Times(1)

	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Theft"),
		Location: models.Location{
			Latitude:   davaoLat,
			Longitude:  davaoLng,
			BarangayID: int64Ptr(5),
		},
	}

	stationID, err := resolver.ResolveForReport(ctx, report)

	require.NoError(t, err)
	require.NotNil(t, stationID)
	assert.Equal(t, int64(9), *stationID)
}

func TestResolveForReport_ContainmentResolvesStation(t *testing.T) {
	resolver, _, barangaysMock := newTestResolver(t)
	ctx := context.Background()

	barangaysMock.EXPECT().
		List(ctx).
		Return([]*models.Barangay{
			{ID: 2, StationID: int64Ptr(7), BoundaryPolygon: davaoSquare},
		}, nil).
		Times(1)

	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Theft"),
		Location:   models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}

	stationID, err := resolver.ResolveForReport(ctx, report)

	require.NoError(t, err)
	require.NotNil(t, stationID)
	assert.Equal(t, int64(7), *stationID)
}

func TestResolveForReport_OverlappingPolygonsLowestIDWins(t *testing.T) {
	resolver, _, barangaysMock := newTestResolver(t)
	ctx := context.Background()

	// Both rings contain the point; enumeration is id-ascending so 3 wins.
	barangaysMock.EXPECT().
		List(ctx).
		Return([]*models.Barangay{
			{ID: 8, StationID: int64Ptr(80), BoundaryPolygon: davaoSquare},
			{ID: 3, StationID: int64Ptr(30), BoundaryPolygon: davaoSquare},
		}, nil).
		Times(1)

	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Theft"),
		Location:   models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}

	stationID, err := resolver.ResolveForReport(ctx, report)

	require.NoError(t, err)
	require.NotNil(t, stationID)
	assert.Equal(t, int64(30), *stationID)
}

func TestResolveForReport_MalformedPolygonsAreSkipped(t *testing.T) {
	resolver, _, barangaysMock := newTestResolver(t)
	ctx := context.Background()

	// One empty ring, one two-vertex ring: neither matches and neither fails.
	barangaysMock.EXPECT().
		List(ctx).
		Return([]*models.Barangay{
			{ID: 1, StationID: int64Ptr(10)},
			{ID: 2, StationID: int64Ptr(20), BoundaryPolygon: [][2]float64{{7.05, 125.60}, {7.09, 125.63}}},
		}, nil).
		Times(1)

	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Theft"),
		Location:   models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}

	stationID, err := resolver.ResolveForReport(ctx, report)

	require.NoError(t, err)
	assert.Nil(t, stationID)
}

func TestResolveForDispatch_ReportAssignmentWins(t *testing.T) {
	resolver, _, _ := newTestResolver(t)
	ctx := context.Background()

	report := &models.IncidentReport{
		ID:                uuid.New(),
		AssignedStationID: int64Ptr(4),
	}

	stationID, err := resolver.ResolveForDispatch(ctx, report, int64Ptr(5), int64Ptr(6))

	require.NoError(t, err)
	assert.Equal(t, int64(4), stationID)
}

func TestResolveForDispatch_OfficerStationBeatsDispatcher(t *testing.T) {
	resolver, _, _ := newTestResolver(t)
	ctx := context.Background()

	report := &models.IncidentReport{ID: uuid.New()}

	stationID, err := resolver.ResolveForDispatch(ctx, report, int64Ptr(5), int64Ptr(6))

	require.NoError(t, err)
	assert.Equal(t, int64(5), stationID)
}

func TestResolveForDispatch_ProximityFallback(t *testing.T) {
	resolver, stationsMock, _ := newTestResolver(t)
	ctx := context.Background()

	stationsMock.EXPECT().
		List(ctx).
		Return([]*models.PoliceStation{
			{ID: 1, Name: "Far", Latitude: float64Ptr(7.20), Longitude: float64Ptr(125.70)},
			{ID: 2, Name: "Near", Latitude: float64Ptr(7.072), Longitude: float64Ptr(125.612)},
		}, nil).
		Times(1)

	report := &models.IncidentReport{
		ID:       uuid.New(),
		Location: models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}

	stationID, err := resolver.ResolveForDispatch(ctx, report, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stationID)
}

func TestResolveForDispatch_LowestIDWhenNoStationHasCoordinates(t *testing.T) {
	resolver, stationsMock, _ := newTestResolver(t)
	ctx := context.Background()

	stationsMock.EXPECT().
		List(ctx).
		Return([]*models.PoliceStation{
			{ID: 4, Name: "A"},
			{ID: 2, Name: "B"},
			{ID: 9, Name: "C"},
		}, nil).
		Times(1)

	report := &models.IncidentReport{
		ID:       uuid.New(),
		Location: models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}

	stationID, err := resolver.ResolveForDispatch(ctx, report, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stationID)
}

func TestResolveForDispatch_NoStationsAtAll(t *testing.T) {
	resolver, stationsMock, _ := newTestResolver(t)
	ctx := context.Background()

	stationsMock.EXPECT().
		List(ctx).
		Return([]*models.PoliceStation{}, nil).
		Times(1)

	report := &models.IncidentReport{ID: uuid.New()}

	_, err := resolver.ResolveForDispatch(ctx, report, nil, nil)

	assert.ErrorIs(t, err, ErrNoStationAvailable)
}

func TestContainmentIndex_InvalidateReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	barangaysMock := mocks.NewMockBarangayRepository(ctrl)
	index := NewContainmentIndex(barangaysMock)
	ctx := context.Background()

	// First load has no boundaries, second (after invalidation) has one.
	empty := barangaysMock.EXPECT().List(ctx).Return([]*models.Barangay{}, nil).Times(1)
	barangaysMock.EXPECT().
		List(ctx).
		Return([]*models.Barangay{
			{ID: 1, StationID: int64Ptr(10), BoundaryPolygon: davaoSquare},
		}, nil).
		Times(1).
		After(empty)

	found, err := index.Locate(ctx, davaoLat, davaoLng)
	require.NoError(t, err)
	assert.Nil(t, found)

	index.Invalidate()

	found, err = index.Locate(ctx, davaoLat, davaoLng)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)
}
