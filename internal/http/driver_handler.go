package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type driverRequest struct {
	Name              string                `json:"name"`
	LicenseNumber     string                `json:"license_number"`
	LicenseCategory   model.LicenseCategory `json:"license_category"`
	LicenseExpiry     string                `json:"license_expiry"`
	Phone             string                `json:"phone"`
	Status            model.DriverStatus    `json:"status"`
	AssignedVehicleID *uuid.UUID            `json:"assigned_vehicle_id"`
}

func (h *Handler) listDrivers(c *gin.Context) {
	filter := model.DriverFilter{
		Status: model.DriverStatus(strings.TrimSpace(c.Query("status"))),
		Search: strings.TrimSpace(c.Query("search")),
	}

	drivers, err := h.drivers.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(drivers))
}

func (h *Handler) createDriver(c *gin.Context) {
	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	expiry, err := parseDate(req.LicenseExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid license_expiry date"))
		return
	}

	driver := model.Driver{
		Name:              req.Name,
		LicenseNumber:     req.LicenseNumber,
		LicenseCategory:   req.LicenseCategory,
		LicenseExpiry:     expiry,
		Phone:             req.Phone,
		Status:            req.Status,
		AssignedVehicleID: req.AssignedVehicleID,
	}

	if err := h.drivers.Create(c.Request.Context(), &driver); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(driver))
}

func (h *Handler) getDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := h.drivers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	expiry, err := parseDate(req.LicenseExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid license_expiry date"))
		return
	}

	existing, err := h.drivers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	existing.Name = req.Name
	existing.LicenseNumber = req.LicenseNumber
	existing.LicenseCategory = req.LicenseCategory
	existing.LicenseExpiry = expiry
	existing.Phone = req.Phone
	existing.AssignedVehicleID = req.AssignedVehicleID
	if req.Status != "" {
		existing.Status = req.Status
	}

	if err := h.drivers.Update(c.Request.Context(), existing); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(existing))
}

func (h *Handler) deleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.drivers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"deleted": id}))
}

func (h *Handler) getDriverPerformance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	performance, err := h.drivers.Performance(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(performance))
}
