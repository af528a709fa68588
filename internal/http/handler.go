package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleetflow/internal/service"
)

type Handler struct {
	vehicles  *service.VehicleService
	drivers   *service.DriverService
	trips     *service.TripService
	ledger    *service.LedgerService
	analytics *service.AnalyticsService
	log       zerolog.Logger
}

func NewHandler(vehicles *service.VehicleService, drivers *service.DriverService, trips *service.TripService, ledger *service.LedgerService, analytics *service.AnalyticsService, log zerolog.Logger) *Handler {
	return &Handler{
		vehicles:  vehicles,
		drivers:   drivers,
		trips:     trips,
		ledger:    ledger,
		analytics: analytics,
		log:       log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")
	api.Use(authMiddleware)

	api.GET("/vehicles", h.listVehicles)
	api.POST("/vehicles", h.createVehicle)
	api.GET("/vehicles/:id", h.getVehicle)
	api.PUT("/vehicles/:id", h.updateVehicle)
	api.DELETE("/vehicles/:id", h.deleteVehicle)
	api.GET("/vehicles/:id/financials", h.getVehicleFinancials)

	api.GET("/drivers", h.listDrivers)
	api.POST("/drivers", h.createDriver)
	api.GET("/drivers/:id", h.getDriver)
	api.PUT("/drivers/:id", h.updateDriver)
	api.DELETE("/drivers/:id", h.deleteDriver)
	api.GET("/drivers/:id/performance", h.getDriverPerformance)

	api.GET("/trips", h.listTrips)
	api.POST("/trips", h.createTrip)
	api.GET("/trips/:id", h.getTrip)
	api.PUT("/trips/:id", h.updateTrip)
	api.DELETE("/trips/:id", h.deleteTrip)
	api.POST("/trips/:id/dispatch", h.dispatchTrip)
	api.POST("/trips/:id/complete", h.completeTrip)
	api.POST("/trips/:id/cancel", h.cancelTrip)

	api.GET("/maintenance", h.listMaintenance)
	api.POST("/maintenance", h.createMaintenance)
	api.PUT("/maintenance/:id", h.updateMaintenance)
	api.GET("/fuel", h.listFuel)
	api.POST("/fuel", h.createFuel)
	api.GET("/expenses", h.listExpenses)
	api.POST("/expenses", h.createExpense)

	api.GET("/analytics/dashboard", h.getDashboard)
	api.GET("/analytics/charts", h.getChartData)
	api.GET("/analytics/export/csv", h.exportCSV)
	api.GET("/analytics/export/pdf", h.exportPDF)
}
