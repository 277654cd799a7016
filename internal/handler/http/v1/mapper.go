package v1

import "github.com/mvillarin/patrol_dispatch_system/internal/models"

// DTOToReportModel converts the intake DTO into the domain model.
func DTOToReportModel(dto CreateReportRequest) *models.IncidentReport {
	return &models.IncidentReport{
		Description: dto.Description,
		CrimeTypes:  dto.CrimeTypes,
		Location: models.Location{
			Latitude:   dto.Latitude,
			Longitude:  dto.Longitude,
			BarangayID: dto.BarangayID,
		},
	}
}

// ModelToReportResponse converts a report model into the response DTO.
func ModelToReportResponse(model *models.IncidentReport) *ReportResponse {
	return &ReportResponse{
		ID:                model.ID,
		Description:       model.Description,
		CrimeTypes:        model.CrimeTypes,
		Latitude:          model.Location.Latitude,
		Longitude:         model.Location.Longitude,
		BarangayID:        model.Location.BarangayID,
		AssignedStationID: model.AssignedStationID,
		AssignedBy:        model.AssignedBy,
		AssignedAt:        model.AssignedAt,
		Verdict:           model.Verdict,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToReportResponses converts a slice of report models.
func ModelsToReportResponses(reports []*models.IncidentReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, model := range reports {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelToDispatchResponse converts a dispatch model into the response DTO.
func ModelToDispatchResponse(model *models.PatrolDispatch) *DispatchResponse {
	return &DispatchResponse{
		ID:                  model.ID,
		ReportID:            model.ReportID,
		StationID:           model.StationID,
		OfficerID:           model.OfficerID,
		Status:              model.Status,
		DispatchedAt:        model.DispatchedAt,
		AcceptedAt:          model.AcceptedAt,
		DeclinedAt:          model.DeclinedAt,
		EnRouteAt:           model.EnRouteAt,
		ArrivedAt:           model.ArrivedAt,
		CompletedAt:         model.CompletedAt,
		CancelledAt:         model.CancelledAt,
		AcceptanceTime:      model.AcceptanceTime,
		ResponseTime:        model.ResponseTime,
		CompletionTime:      model.CompletionTime,
		ThreeMinuteRuleMet:  model.ThreeMinuteRuleMet,
		ThreeMinuteRuleTime: model.ThreeMinuteRuleTime,
		DeclineReason:       model.DeclineReason,
		CancelReason:        model.CancelReason,
		Verdict:             model.Verdict,
		Notes:               model.Notes,
	}
}

// ModelsToDispatchResponses converts a slice of dispatch models.
func ModelsToDispatchResponses(dispatches []*models.PatrolDispatch) []*DispatchResponse {
	responses := make([]*DispatchResponse, len(dispatches))
	for i, model := range dispatches {
		responses[i] = ModelToDispatchResponse(model)
	}
	return responses
}

// DTOToStationModel converts the upsert DTO into the domain model.
func DTOToStationModel(dto StationRequest) *models.PoliceStation {
	return &models.PoliceStation{
		ID:        dto.ID,
		Name:      dto.Name,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

// DTOToBarangayModel converts the upsert DTO into the domain model.
func DTOToBarangayModel(dto BarangayRequest) *models.Barangay {
	return &models.Barangay{
		ID:              dto.ID,
		Name:            dto.Name,
		StationID:       dto.StationID,
		BoundaryPolygon: dto.BoundaryPolygon,
	}
}

// ModelToOfficerResponse converts an officer model into the response DTO.
// The push token is deliberately never exposed.
func ModelToOfficerResponse(model *models.PatrolOfficer) *OfficerResponse {
	return &OfficerResponse{
		ID:                model.ID,
		Name:              model.Name,
		AssignedStationID: model.AssignedStationID,
		IsOnDuty:          model.IsOnDuty,
		LastLatitude:      model.LastLatitude,
		LastLongitude:     model.LastLongitude,
		LocationUpdatedAt: model.LocationUpdatedAt,
	}
}

// ModelsToOfficerResponses converts a slice of officer models.
func ModelsToOfficerResponses(officers []*models.PatrolOfficer) []*OfficerResponse {
	responses := make([]*OfficerResponse, len(officers))
	for i, model := range officers {
		responses[i] = ModelToOfficerResponse(model)
	}
	return responses
}
