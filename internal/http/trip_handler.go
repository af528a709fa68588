package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type tripRequest struct {
	VehicleID   uuid.UUID `json:"vehicle_id"`
	DriverID    uuid.UUID `json:"driver_id"`
	CargoWeight float64   `json:"cargo_weight"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Revenue     float64   `json:"revenue"`
	Notes       string    `json:"notes"`
}

type tripCompleteRequest struct {
	DistanceTraveled float64 `json:"distance_traveled"`
}

func (h *Handler) listTrips(c *gin.Context) {
	filter := model.TripFilter{
		Status: model.TripStatus(strings.TrimSpace(c.Query("status"))),
	}
	if raw := strings.TrimSpace(c.Query("vehicle_id")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.VehicleID = &id
		}
	}
	if raw := strings.TrimSpace(c.Query("driver_id")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.DriverID = &id
		}
	}

	trips, err := h.trips.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trips))
}

func (h *Handler) createTrip(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	trip := model.Trip{
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		CargoWeight: req.CargoWeight,
		Source:      req.Source,
		Destination: req.Destination,
		Revenue:     req.Revenue,
		Notes:       req.Notes,
	}

	if err := h.trips.Create(c.Request.Context(), &trip); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(trip))
}

func (h *Handler) getTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.trips.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) updateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	trip := model.Trip{
		ID:          id,
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		CargoWeight: req.CargoWeight,
		Source:      req.Source,
		Destination: req.Destination,
		Revenue:     req.Revenue,
		Notes:       req.Notes,
	}

	if err := h.trips.Update(c.Request.Context(), &trip); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) deleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.trips.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"deleted": id}))
}

func (h *Handler) dispatchTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.trips.Dispatch(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) completeTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req tripCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	trip, err := h.trips.Complete(c.Request.Context(), id, req.DistanceTraveled)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trip))
}

func (h *Handler) cancelTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := h.trips.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(trip))
}
