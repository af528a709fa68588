package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type vehicleRequest struct {
	Name            string              `json:"name"`
	LicensePlate    string              `json:"license_plate"`
	VehicleType     model.VehicleType   `json:"vehicle_type"`
	MaxCapacity     float64             `json:"max_capacity"`
	AcquisitionCost float64             `json:"acquisition_cost"`
	Odometer        float64             `json:"odometer"`
	Status          model.VehicleStatus `json:"status"`
	Region          string              `json:"region"`
	Latitude        *float64            `json:"latitude"`
	Longitude       *float64            `json:"longitude"`
}

func (h *Handler) listVehicles(c *gin.Context) {
	filter := model.VehicleFilter{
		Status: model.VehicleStatus(strings.TrimSpace(c.Query("status"))),
		Type:   model.VehicleType(strings.TrimSpace(c.Query("type"))),
		Region: strings.TrimSpace(c.Query("region")),
		Search: strings.TrimSpace(c.Query("search")),
	}

	vehicles, err := h.vehicles.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	vehicle := model.Vehicle{
		Name:            req.Name,
		LicensePlate:    req.LicensePlate,
		VehicleType:     req.VehicleType,
		MaxCapacity:     req.MaxCapacity,
		AcquisitionCost: req.AcquisitionCost,
		Odometer:        req.Odometer,
		Status:          req.Status,
		Region:          req.Region,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}

	if err := h.vehicles.Create(c.Request.Context(), &vehicle); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.vehicles.Detail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(detail))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	existing, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	existing.Name = req.Name
	existing.LicensePlate = req.LicensePlate
	existing.VehicleType = req.VehicleType
	existing.MaxCapacity = req.MaxCapacity
	existing.AcquisitionCost = req.AcquisitionCost
	existing.Odometer = req.Odometer
	existing.Region = req.Region
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	if req.Status != "" {
		existing.Status = req.Status
	}

	if err := h.vehicles.Update(c.Request.Context(), existing); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(existing))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"deleted": id}))
}

func (h *Handler) getVehicleFinancials(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.vehicles.Financials(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(detail))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
