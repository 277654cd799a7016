package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/push"
	pushmocks "github.com/mvillarin/patrol_dispatch_system/internal/push/mocks"
	"github.com/mvillarin/patrol_dispatch_system/internal/service/mocks"
	"github.com/mvillarin/patrol_dispatch_system/pkg/clock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dispatchBase = time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)

type dispatchTestEnv struct {
	svc        DispatchService
	dispatches *mocks.MockDispatchRepository
	reports    *mocks.MockReportRepository
	officers   *mocks.MockOfficerRepository
	stations   *mocks.MockStationRepository
	publisher  *pushmocks.MockPublisher
	clock      *clock.Fixed
}

func newTestDispatchService(t *testing.T) *dispatchTestEnv {
	ctrl := gomock.NewController(t)

	env := &dispatchTestEnv{
		dispatches: mocks.NewMockDispatchRepository(ctrl),
		reports:    mocks.NewMockReportRepository(ctrl),
		officers:   mocks.NewMockOfficerRepository(ctrl),
		stations:   mocks.NewMockStationRepository(ctrl),
		publisher:  pushmocks.NewMockPublisher(ctrl),
		clock:      clock.NewFixed(dispatchBase),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	barangaysMock := mocks.NewMockBarangayRepository(ctrl)
	index := NewContainmentIndex(barangaysMock)
	resolver := NewAssignmentResolver(env.stations, barangaysMock, index, &config.Config{}, logger)
	selector := NewOfficerSelector(env.officers, env.clock, 10*time.Minute, logger)

	env.svc = NewDispatchService(
		env.dispatches, env.reports, env.officers,
		resolver, selector, env.publisher,
		env.clock, 60, logger,
	)
	return env
}

func assignedReport(stationID int64) *models.IncidentReport {
	return &models.IncidentReport{
		ID:                uuid.New(),
		CrimeTypes:        models.ParseCrimeTypes("Robbery"),
		AssignedStationID: &stationID,
		Location:          models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}
}

func TestCreateDispatch_ManualOfficerSendsAlert(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()
	report := assignedReport(4)

	officer := &models.PatrolOfficer{ID: 11, IsOnDuty: true, PushToken: "tok-11"}

	env.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	env.dispatches.EXPECT().GetActiveByReport(ctx, report.ID).Return(nil, nil).Times(1)
	env.officers.EXPECT().GetByID(ctx, int64(11)).Return(officer, nil).Times(1)
	env.dispatches.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	var sent push.Notification
	env.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n push.Notification) error {
			sent = n
			return nil
		}).
		Times(1)

	result, err := env.svc.CreateDispatch(ctx, CreateDispatchRequest{
		ReportID:  report.ID,
		OfficerID: int64Ptr(11),
	})

	require.NoError(t, err)
	assert.True(t, result.NotificationSent)
	assert.Equal(t, models.DispatchPending, result.Dispatch.Status)
	assert.Equal(t, dispatchBase, result.Dispatch.DispatchedAt)
	require.NotNil(t, result.Dispatch.StationID)
	assert.Equal(t, int64(4), *result.Dispatch.StationID)
	require.NotNil(t, result.Dispatch.OfficerID)
	assert.Equal(t, int64(11), *result.Dispatch.OfficerID)

	assert.Equal(t, "tok-11", sent.Token)
	assert.Equal(t, 60, sent.TTLSeconds)
	assert.Equal(t, "robbery", sent.Data.CrimeType)
}

func TestCreateDispatch_SecondActiveDispatchRefused(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()
	report := assignedReport(4)

	active := &models.PatrolDispatch{ID: uuid.New(), ReportID: report.ID, Status: models.DispatchEnRoute}

	env.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	env.dispatches.EXPECT().GetActiveByReport(ctx, report.ID).Return(active, nil).Times(1)

	_, err := env.svc.CreateDispatch(ctx, CreateDispatchRequest{
		ReportID:  report.ID,
		OfficerID: int64Ptr(11),
	})

	assert.ErrorIs(t, err, ErrDuplicateActiveDispatch)
}

func TestCreateDispatch_AutoSelectUsesOfficerStation(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	// The report carries no assignment, so the officer's own station wins
	// the resolution chain.
	report := &models.IncidentReport{
		ID:         uuid.New(),
		CrimeTypes: models.ParseCrimeTypes("Theft"),
		Location:   models.Location{Latitude: davaoLat, Longitude: davaoLng},
	}
	officer := locatedOfficer(21, 1, 2*time.Minute)
	officer.AssignedStationID = int64Ptr(6)
	officer.PushToken = "tok-21"
	officer.LocationUpdatedAt = timePtr(dispatchBase.Add(-2 * time.Minute))

	env.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	env.dispatches.EXPECT().GetActiveByReport(ctx, report.ID).Return(nil, nil).Times(1)
	env.officers.EXPECT().ListOnDuty(ctx).Return([]*models.PatrolOfficer{officer}, nil).Times(1)
	env.dispatches.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	env.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := env.svc.CreateDispatch(ctx, CreateDispatchRequest{
		ReportID:   report.ID,
		AutoSelect: true,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Dispatch.StationID)
	assert.Equal(t, int64(6), *result.Dispatch.StationID)
	require.NotNil(t, result.DistanceKm)
	assert.InDelta(t, 1.0, *result.DistanceKm, 0.05)
}

func TestCreateDispatch_MissingPushTokenIsNotFatal(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()
	report := assignedReport(4)

	officer := &models.PatrolOfficer{ID: 11, IsOnDuty: true}

	env.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	env.dispatches.EXPECT().GetActiveByReport(ctx, report.ID).Return(nil, nil).Times(1)
	env.officers.EXPECT().GetByID(ctx, int64(11)).Return(officer, nil).Times(1)
	env.dispatches.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := env.svc.CreateDispatch(ctx, CreateDispatchRequest{
		ReportID:  report.ID,
		OfficerID: int64Ptr(11),
	})

	require.NoError(t, err)
	assert.False(t, result.NotificationSent)
}

func TestCreateDispatch_QueueFailureIsNotFatal(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()
	report := assignedReport(4)

	officer := &models.PatrolOfficer{ID: 11, IsOnDuty: true, PushToken: "tok-11"}

	env.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	env.dispatches.EXPECT().GetActiveByReport(ctx, report.ID).Return(nil, nil).Times(1)
	env.officers.EXPECT().GetByID(ctx, int64(11)).Return(officer, nil).Times(1)
	env.dispatches.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	env.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue down")).Times(1)

	result, err := env.svc.CreateDispatch(ctx, CreateDispatchRequest{
		ReportID:  report.ID,
		OfficerID: int64Ptr(11),
	})

	require.NoError(t, err)
	assert.False(t, result.NotificationSent)
}

func pendingDispatch(dispatchedAt time.Time) *models.PatrolDispatch {
	return &models.PatrolDispatch{
		ID:           uuid.New(),
		ReportID:     uuid.New(),
		Status:       models.DispatchPending,
		DispatchedAt: dispatchedAt,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestUpdateStatus_AcceptedStampsAcceptanceTime(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	env.clock.Advance(42 * time.Second)

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)
	env.dispatches.EXPECT().Update(ctx, dispatch).Return(nil).Times(1)

	updated, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchAccepted, TransitionOptions{})

	require.NoError(t, err)
	assert.Equal(t, models.DispatchAccepted, updated.Status)
	require.NotNil(t, updated.AcceptedAt)
	require.NotNil(t, updated.AcceptanceTime)
	assert.Equal(t, int64(42), *updated.AcceptanceTime)
}

func TestUpdateStatus_ArrivalWithinThreeMinutes(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	dispatch.Status = models.DispatchEnRoute
	env.clock.Advance(90 * time.Second)

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)
	env.dispatches.EXPECT().Update(ctx, dispatch).Return(nil).Times(1)

	updated, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchArrived, TransitionOptions{})

	require.NoError(t, err)
	require.NotNil(t, updated.ResponseTime)
	assert.Equal(t, int64(90), *updated.ResponseTime)
	require.NotNil(t, updated.ThreeMinuteRuleMet)
	assert.True(t, *updated.ThreeMinuteRuleMet)
	require.NotNil(t, updated.ThreeMinuteRuleTime)
	assert.Equal(t, int64(90), *updated.ThreeMinuteRuleTime)
}

func TestUpdateStatus_ArrivalPastThreeMinutes(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	env.clock.Advance(200 * time.Second)

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)
	env.dispatches.EXPECT().Update(ctx, dispatch).Return(nil).Times(1)

	updated, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchArrived, TransitionOptions{})

	require.NoError(t, err)
	require.NotNil(t, updated.ResponseTime)
	assert.Equal(t, int64(200), *updated.ResponseTime)
	require.NotNil(t, updated.ThreeMinuteRuleMet)
	assert.False(t, *updated.ThreeMinuteRuleMet)
}

func TestUpdateStatus_DeclineRequiresReason(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)

	_, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchDeclined, TransitionOptions{})

	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestUpdateStatus_CancelRequiresReason(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)

	_, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchCancelled, TransitionOptions{})

	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestUpdateStatus_CompletionPropagatesVerdict(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	dispatch.Status = models.DispatchArrived
	env.clock.Advance(10 * time.Minute)

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)
	env.dispatches.EXPECT().Update(ctx, dispatch).Return(nil).Times(1)
	env.reports.EXPECT().UpdateVerdict(ctx, dispatch.ReportID, models.VerdictValid).Return(nil).Times(1)

	updated, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchCompleted, TransitionOptions{
		Verdict: models.VerdictValid,
		Notes:   "suspect apprehended",
	})

	require.NoError(t, err)
	assert.Equal(t, models.DispatchCompleted, updated.Status)
	require.NotNil(t, updated.CompletionTime)
	assert.Equal(t, int64(600), *updated.CompletionTime)
	assert.Equal(t, models.VerdictValid, updated.Verdict)
	assert.Equal(t, "suspect apprehended", updated.Notes)
}

func TestUpdateStatus_TerminalDispatchRefused(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	dispatch.Status = models.DispatchCompleted

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)

	_, err := env.svc.UpdateStatus(ctx, dispatch.ID, models.DispatchCancelled, TransitionOptions{Reason: "late"})

	assert.ErrorIs(t, err, ErrDispatchTerminal)
}

func TestUpdateStatus_PendingIsNotATarget(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	_, err := env.svc.UpdateStatus(ctx, uuid.New(), models.DispatchPending, TransitionOptions{})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_UnknownStatusRefused(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	_, err := env.svc.UpdateStatus(ctx, uuid.New(), models.DispatchStatus("resolved"), TransitionOptions{})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReassignOfficer_ReNotifiesNewOfficer(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	dispatch.OfficerID = int64Ptr(11)
	report := assignedReport(4)
	report.ID = dispatch.ReportID
	officer := &models.PatrolOfficer{ID: 12, IsOnDuty: true, PushToken: "tok-12"}

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)
	env.officers.EXPECT().GetByID(ctx, int64(12)).Return(officer, nil).Times(1)
	env.dispatches.EXPECT().Update(ctx, dispatch).Return(nil).Times(1)
	env.reports.EXPECT().GetByID(ctx, dispatch.ReportID).Return(report, nil).Times(1)
	env.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := env.svc.ReassignOfficer(ctx, dispatch.ID, 12)

	require.NoError(t, err)
	assert.True(t, result.NotificationSent)
	require.NotNil(t, result.Dispatch.OfficerID)
	assert.Equal(t, int64(12), *result.Dispatch.OfficerID)
}

func TestReassignOfficer_TerminalDispatchRefused(t *testing.T) {
	env := newTestDispatchService(t)
	ctx := context.Background()

	dispatch := pendingDispatch(dispatchBase)
	dispatch.Status = models.DispatchDeclined

	env.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil).Times(1)

	_, err := env.svc.ReassignOfficer(ctx, dispatch.ID, 12)

	assert.ErrorIs(t, err, ErrDispatchTerminal)
}
