package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	"github.com/mvillarin/patrol_dispatch_system/internal/handler/http/v1/mocks"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	reports    *mocks.MockReportService
	dispatches *mocks.MockDispatchService
	roster     *mocks.MockRosterService
}

// newTestHandler builds a Handler over mocked services with the API key
// middleware applied, the way the real router is assembled.
func newTestHandler(t *testing.T) (*testServices, *gin.Engine) {
	ctrl := gomock.NewController(t)
	services := &testServices{
		reports:    mocks.NewMockReportService(ctrl),
		dispatches: mocks.NewMockDispatchService(ctrl),
		roster:     mocks.NewMockRosterService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(services.reports, services.dispatches, services.roster, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(APIKeyAuthMiddleware(cfg, logger))
	handler.RegisterRoutes(api)

	return services, router
}

// makeRequest performs an HTTP request against the test router.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authed() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateReport_Success(t *testing.T) {
	services, router := newTestHandler(t)
	reportID := uuid.New()

	services.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport) error {
			report.ID = reportID
			report.Verdict = models.VerdictChecking
			report.AssignedStationID = int64Ptr(3)
			report.AssignedBy = service.AssignedByResolver
			return nil
		}).Times(1)

	body := `{"description":"Robbery in progress","crime_types":["Robbery"],"latitude":7.0710,"longitude":125.6116}`
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, models.VerdictChecking, resp.Verdict)
	require.NotNil(t, resp.AssignedStationID)
	assert.Equal(t, int64(3), *resp.AssignedStationID)
	assert.Equal(t, service.AssignedByResolver, resp.AssignedBy)
}

func TestCreateReport_CommaSeparatedCrimeTypes(t *testing.T) {
	services, router := newTestHandler(t)

	var captured models.CrimeTypes
	services.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport) error {
			captured = report.CrimeTypes
			report.ID = uuid.New()
			return nil
		}).Times(1)

	body := `{"crime_types":"Theft, Online Fraud ,theft","latitude":7.0710,"longitude":125.6116}`
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.CrimeTypes{"theft", "online fraud"}, captured)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	services, router := newTestHandler(t)

	services.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"crime_types":`), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateReport_MissingCrimeTypes(t *testing.T) {
	services, router := newTestHandler(t)

	services.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	body := `{"description":"no categories","latitude":7.0710,"longitude":125.6116}`
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CrimeTypes")
}

func TestGetReport_NotFound(t *testing.T) {
	services, router := newTestHandler(t)
	reportID := uuid.New()

	services.reports.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, service.ErrReportNotFound).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/"+reportID.String(), nil, authed())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReport_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/reports/not-a-uuid", nil, authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestAssignStation_Success(t *testing.T) {
	services, router := newTestHandler(t)
	reportID := uuid.New()

	assigned := &models.IncidentReport{
		ID:                reportID,
		CrimeTypes:        models.CrimeTypes{"theft"},
		AssignedStationID: int64Ptr(7),
		AssignedBy:        "duty_officer_3",
	}

	services.reports.EXPECT().
		AssignStation(gomock.Any(), reportID, int64(7), "duty_officer_3").
		Return(assigned, nil).
		Times(1)

	body := `{"station_id":7,"assigned_by":"duty_officer_3"}`
	w := makeRequest(router, "PUT", "/api/v1/reports/"+reportID.String()+"/assignment", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "duty_officer_3", resp.AssignedBy)
}

func TestCreateDispatch_Success(t *testing.T) {
	services, router := newTestHandler(t)
	reportID := uuid.New()
	dispatchID := uuid.New()
	distance := 1.4

	services.dispatches.EXPECT().
		CreateDispatch(gomock.Any(), service.CreateDispatchRequest{
			ReportID:   reportID,
			AutoSelect: true,
		}).
		Return(&service.DispatchResult{
			Dispatch: &models.PatrolDispatch{
				ID:           dispatchID,
				ReportID:     reportID,
				StationID:    int64Ptr(3),
				OfficerID:    int64Ptr(11),
				Status:       models.DispatchPending,
				DispatchedAt: time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC),
			},
			NotificationSent: true,
			DistanceKm:       &distance,
		}, nil).
		Times(1)

	body := `{"report_id":"` + reportID.String() + `","auto_select":true}`
	w := makeRequest(router, "POST", "/api/v1/dispatches", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp DispatchResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dispatchID, resp.Dispatch.ID)
	assert.True(t, resp.NotificationSent)
	require.NotNil(t, resp.DistanceKm)
	assert.InDelta(t, 1.4, *resp.DistanceKm, 0.001)
}

func TestCreateDispatch_DuplicateActive(t *testing.T) {
	services, router := newTestHandler(t)
	reportID := uuid.New()

	services.dispatches.EXPECT().
		CreateDispatch(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrDuplicateActiveDispatch).
		Times(1)

	body := `{"report_id":"` + reportID.String() + `","officer_id":11}`
	w := makeRequest(router, "POST", "/api/v1/dispatches", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateDispatch_NoOfficerAvailable(t *testing.T) {
	services, router := newTestHandler(t)
	reportID := uuid.New()

	services.dispatches.EXPECT().
		CreateDispatch(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrNoOfficerAvailable).
		Times(1)

	body := `{"report_id":"` + reportID.String() + `","auto_select":true}`
	w := makeRequest(router, "POST", "/api/v1/dispatches", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateDispatchStatus_Success(t *testing.T) {
	services, router := newTestHandler(t)
	dispatchID := uuid.New()
	responseTime := int64(90)
	met := true

	services.dispatches.EXPECT().
		UpdateStatus(gomock.Any(), dispatchID, models.DispatchArrived, service.TransitionOptions{}).
		Return(&models.PatrolDispatch{
			ID:                  dispatchID,
			Status:              models.DispatchArrived,
			ResponseTime:        &responseTime,
			ThreeMinuteRuleMet:  &met,
			ThreeMinuteRuleTime: &responseTime,
		}, nil).
		Times(1)

	body := `{"status":"arrived"}`
	w := makeRequest(router, "PATCH", "/api/v1/dispatches/"+dispatchID.String()+"/status", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DispatchArrived, resp.Status)
	require.NotNil(t, resp.ThreeMinuteRuleMet)
	assert.True(t, *resp.ThreeMinuteRuleMet)
}

func TestUpdateDispatchStatus_UnknownStatusRejectedByValidation(t *testing.T) {
	services, router := newTestHandler(t)
	dispatchID := uuid.New()

	services.dispatches.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	body := `{"status":"resolved"}`
	w := makeRequest(router, "PATCH", "/api/v1/dispatches/"+dispatchID.String()+"/status", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDispatchStatus_MissingDeclineReason(t *testing.T) {
	services, router := newTestHandler(t)
	dispatchID := uuid.New()

	services.dispatches.EXPECT().
		UpdateStatus(gomock.Any(), dispatchID, models.DispatchDeclined, service.TransitionOptions{}).
		Return(nil, service.ErrReasonRequired).
		Times(1)

	body := `{"status":"declined"}`
	w := makeRequest(router, "PATCH", "/api/v1/dispatches/"+dispatchID.String()+"/status", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDispatchStatus_TerminalConflict(t *testing.T) {
	services, router := newTestHandler(t)
	dispatchID := uuid.New()

	services.dispatches.EXPECT().
		UpdateStatus(gomock.Any(), dispatchID, models.DispatchCancelled, service.TransitionOptions{Reason: "duplicate call"}).
		Return(nil, service.ErrDispatchTerminal).
		Times(1)

	body := `{"status":"cancelled","reason":"duplicate call"}`
	w := makeRequest(router, "PATCH", "/api/v1/dispatches/"+dispatchID.String()+"/status", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReassignOfficer_Success(t *testing.T) {
	services, router := newTestHandler(t)
	dispatchID := uuid.New()

	services.dispatches.EXPECT().
		ReassignOfficer(gomock.Any(), dispatchID, int64(12)).
		Return(&service.DispatchResult{
			Dispatch: &models.PatrolDispatch{
				ID:        dispatchID,
				OfficerID: int64Ptr(12),
				Status:    models.DispatchPending,
			},
			NotificationSent: true,
		}, nil).
		Times(1)

	body := `{"officer_id":12}`
	w := makeRequest(router, "PUT", "/api/v1/dispatches/"+dispatchID.String()+"/officer", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Dispatch.OfficerID)
	assert.Equal(t, int64(12), *resp.Dispatch.OfficerID)
	assert.True(t, resp.NotificationSent)
}

func TestUpsertStation_Success(t *testing.T) {
	services, router := newTestHandler(t)

	services.roster.EXPECT().
		UpsertStation(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	body := `{"id":3,"name":"Sta. Ana Station","latitude":7.0722,"longitude":125.6310}`
	w := makeRequest(router, "PUT", "/api/v1/stations", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetOfficerDuty_FalseIsAccepted(t *testing.T) {
	services, router := newTestHandler(t)

	services.roster.EXPECT().
		SetOfficerDuty(gomock.Any(), int64(11), false).
		Return(nil).
		Times(1)

	body := `{"is_on_duty":false}`
	w := makeRequest(router, "PUT", "/api/v1/officers/11/duty", bytes.NewBufferString(body), authed())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListOnDutyOfficers_HidesPushToken(t *testing.T) {
	services, router := newTestHandler(t)

	services.roster.EXPECT().
		ListOnDutyOfficers(gomock.Any()).
		Return([]*models.PatrolOfficer{
			{ID: 11, Name: "PO2 Cruz", IsOnDuty: true, PushToken: "secret-token"},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/officers/on-duty", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PO2 Cruz")
	assert.NotContains(t, w.Body.String(), "secret-token")
}

func TestAPIKey_MissingKeyRejected(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/reports", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKey_BearerTokenAccepted(t *testing.T) {
	services, router := newTestHandler(t)

	services.reports.EXPECT().
		ListReports(gomock.Any(), 1, 10).
		Return([]*models.IncidentReport{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
