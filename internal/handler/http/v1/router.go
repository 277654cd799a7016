package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	reports := api.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.PUT("/:id/assignment", h.assignStation)
		reports.GET("/:id/dispatches", h.listReportDispatches)
	}

	dispatches := api.Group("/dispatches")
	{
		dispatches.POST("", h.createDispatch)
		dispatches.GET("", h.listDispatches)
		dispatches.GET("/:id", h.getDispatch)
		dispatches.PATCH("/:id/status", h.updateDispatchStatus)
		dispatches.PUT("/:id/officer", h.reassignOfficer)
	}

	// Roster surfaces consumed by the resolution chain
	api.PUT("/stations", h.upsertStation)
	api.GET("/stations", h.listStations)
	api.PUT("/barangays", h.upsertBarangay)
	api.GET("/barangays", h.listBarangays)
	api.PUT("/officers/:id/location", h.updateOfficerLocation)
	api.PUT("/officers/:id/duty", h.setOfficerDuty)
	api.GET("/officers/on-duty", h.listOnDutyOfficers)

	// Health-check route
	api.GET("/system/health", h.healthCheck)
}
