package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService   service.ReportService
	dispatchService service.DispatchService
	rosterService   service.RosterService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(reportService service.ReportService, dispatchService service.DispatchService, rosterService service.RosterService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService:   reportService,
		dispatchService: dispatchService,
		rosterService:   rosterService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// serviceError maps service sentinel errors onto HTTP statuses.
func serviceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, service.ErrDispatchNotFound),
		errors.Is(err, service.ErrOfficerNotFound),
		errors.Is(err, service.ErrStationNotFound),
		errors.Is(err, service.ErrBarangayNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateActiveDispatch),
		errors.Is(err, service.ErrDispatchTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoOfficerAvailable),
		errors.Is(err, service.ErrNoStationAvailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReasonRequired),
		errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Submit a new incident report
// @Description Submit a citizen incident report. Crime types may arrive as a list, a JSON-encoded string or a comma-separated string. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Report submission request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToReportModel(input)
	if err := h.reportService.CreateReport(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create report in service")
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(model))
}

// @Summary Get a list of reports
// @Description Get a paginated list of incident reports. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	reports, err := h.reportService.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		serviceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single incident report by its ID. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Manually assign a station to a report
// @Description Override the geographic station assignment of a report. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param assignment body AssignStationRequest true "Assignment override request"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report or station not found"
// @Router /reports/{id}/assignment [put]
func (h *Handler) assignStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "assignStation").WithField("id", id)

	var input AssignStationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.AssignStation(c.Request.Context(), id, input.StationID, input.AssignedBy)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Create a patrol dispatch
// @Description Create a dispatch for a report, either with an explicit officer or via nearest-officer auto-selection. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dispatch body CreateDispatchRequest true "Dispatch creation request"
// @Success 201 {object} DispatchResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report or officer not found"
// @Failure 409 {object} map[string]string "Report already has an active dispatch"
// @Failure 422 {object} map[string]string "No officer or station available"
// @Router /dispatches [post]
func (h *Handler) createDispatch(c *gin.Context) {
	var input CreateDispatchRequest
	log := h.logger.WithField("method", "createDispatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.CreateDispatch(c.Request.Context(), service.CreateDispatchRequest{
		ReportID:            input.ReportID,
		OfficerID:           input.OfficerID,
		AutoSelect:          input.AutoSelect,
		DispatcherStationID: input.DispatcherStationID,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to create dispatch in service")
		serviceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, DispatchResultResponse{
		Dispatch:         ModelToDispatchResponse(result.Dispatch),
		NotificationSent: result.NotificationSent,
		DistanceKm:       result.DistanceKm,
	})
}

// @Summary Get a list of dispatches
// @Description Get a paginated list of patrol dispatches. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} DispatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatches [get]
func (h *Handler) listDispatches(c *gin.Context) {
	log := h.logger.WithField("method", "listDispatches")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	dispatches, err := h.dispatchService.ListDispatches(c.Request.Context(), page, pageSize)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDispatchResponses(dispatches))
}

// @Summary Get dispatch by ID
// @Description Get a single patrol dispatch by its ID. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Dispatch ID"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Router /dispatches/{id} [get]
func (h *Handler) getDispatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "getDispatch").WithField("id", id)

	dispatch, err := h.dispatchService.GetDispatch(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get dispatch from service")
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDispatchResponse(dispatch))
}

// @Summary Get dispatch history for a report
// @Description Get every dispatch ever created for a report, oldest first. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {array} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/dispatches [get]
func (h *Handler) listReportDispatches(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "listReportDispatches").WithField("id", id)

	dispatches, err := h.dispatchService.ListReportDispatches(c.Request.Context(), id)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDispatchResponses(dispatches))
}

// @Summary Update dispatch status
// @Description Move a non-terminal dispatch to a named lifecycle status. Declines and cancellations require a reason; completions may carry a validity verdict. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Dispatch ID"
// @Param transition body UpdateDispatchStatusRequest true "Status transition request"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID, body or missing reason"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dispatch not found"
// @Failure 409 {object} map[string]string "Dispatch already terminal"
// @Router /dispatches/{id}/status [patch]
func (h *Handler) updateDispatchStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "updateDispatchStatus").WithField("id", id)

	var input UpdateDispatchStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dispatch, err := h.dispatchService.UpdateStatus(c.Request.Context(), id, input.Status, service.TransitionOptions{
		Reason:  input.Reason,
		Verdict: input.Verdict,
		Notes:   input.Notes,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update dispatch status in service")
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDispatchResponse(dispatch))
}

// @Summary Reassign a dispatch to another officer
// @Description Move a non-terminal dispatch to a different officer and re-trigger the push notification. Requires API key.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Dispatch ID"
// @Param reassign body ReassignOfficerRequest true "Officer reassignment request"
// @Success 200 {object} DispatchResultResponse
// @Failure 400 {object} map[string]string "Invalid dispatch ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dispatch or officer not found"
// @Failure 409 {object} map[string]string "Dispatch already terminal"
// @Router /dispatches/{id}/officer [put]
func (h *Handler) reassignOfficer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dispatch ID"})
		return
	}
	log := h.logger.WithField("method", "reassignOfficer").WithField("id", id)

	var input ReassignOfficerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.ReassignOfficer(c.Request.Context(), id, input.OfficerID)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DispatchResultResponse{
		Dispatch:         ModelToDispatchResponse(result.Dispatch),
		NotificationSent: result.NotificationSent,
	})
}

// @Summary Upsert a police station
// @Description Create or update a station in the roster. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param station body StationRequest true "Station upsert request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stations [put]
func (h *Handler) upsertStation(c *gin.Context) {
	var input StationRequest
	log := h.logger.WithField("method", "upsertStation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rosterService.UpsertStation(c.Request.Context(), DTOToStationModel(input)); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List police stations
// @Description Get the full station roster. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.PoliceStation
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stations [get]
func (h *Handler) listStations(c *gin.Context) {
	log := h.logger.WithField("method", "listStations")

	stations, err := h.rosterService.ListStations(c.Request.Context())
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

// @Summary Upsert a barangay
// @Description Create or update a barangay boundary in the roster. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param barangay body BarangayRequest true "Barangay upsert request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /barangays [put]
func (h *Handler) upsertBarangay(c *gin.Context) {
	var input BarangayRequest
	log := h.logger.WithField("method", "upsertBarangay")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rosterService.UpsertBarangay(c.Request.Context(), DTOToBarangayModel(input)); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List barangays
// @Description Get the full barangay roster. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Barangay
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /barangays [get]
func (h *Handler) listBarangays(c *gin.Context) {
	log := h.logger.WithField("method", "listBarangays")

	barangays, err := h.rosterService.ListBarangays(c.Request.Context())
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, barangays)
}

// @Summary Update an officer location fix
// @Description Store the most recent location fix for an officer. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Officer ID"
// @Param location body OfficerLocationRequest true "Location fix request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid officer ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Officer not found"
// @Router /officers/{id}/location [put]
func (h *Handler) updateOfficerLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid officer ID"})
		return
	}
	log := h.logger.WithField("method", "updateOfficerLocation").WithField("id", id)

	var input OfficerLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rosterService.UpdateOfficerLocation(c.Request.Context(), id, input.Latitude, input.Longitude); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Flip an officer duty flag
// @Description Put an officer on or off duty. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Officer ID"
// @Param duty body OfficerDutyRequest true "Duty flag request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid officer ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Officer not found"
// @Router /officers/{id}/duty [put]
func (h *Handler) setOfficerDuty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid officer ID"})
		return
	}
	log := h.logger.WithField("method", "setOfficerDuty").WithField("id", id)

	var input OfficerDutyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.rosterService.SetOfficerDuty(c.Request.Context(), id, *input.IsOnDuty); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List on-duty officers
// @Description Get every officer currently on duty with their last location fix. Requires API key.
// @Tags Roster
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} OfficerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /officers/on-duty [get]
func (h *Handler) listOnDutyOfficers(c *gin.Context) {
	log := h.logger.WithField("method", "listOnDutyOfficers")

	officers, err := h.rosterService.ListOnDutyOfficers(c.Request.Context())
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToOfficerResponses(officers))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
