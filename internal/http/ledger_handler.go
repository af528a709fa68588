package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type maintenanceRequest struct {
	VehicleID   uuid.UUID               `json:"vehicle_id"`
	ServiceType model.ServiceType       `json:"service_type"`
	Cost        float64                 `json:"cost"`
	Date        string                  `json:"date"`
	Status      model.MaintenanceStatus `json:"status"`
	Notes       string                  `json:"notes"`
}

type fuelRequest struct {
	VehicleID       uuid.UUID `json:"vehicle_id"`
	Liters          float64   `json:"liters"`
	FuelCost        float64   `json:"fuel_cost"`
	Date            string    `json:"date"`
	OdometerReading float64   `json:"odometer_reading"`
	Notes           string    `json:"notes"`
}

type expenseRequest struct {
	VehicleID   uuid.UUID         `json:"vehicle_id"`
	ExpenseType model.ExpenseType `json:"expense_type"`
	Amount      float64           `json:"amount"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
}

func (h *Handler) listMaintenance(c *gin.Context) {
	filter := model.MaintenanceFilter{
		Status: model.MaintenanceStatus(strings.TrimSpace(c.Query("status"))),
	}
	if raw := strings.TrimSpace(c.Query("vehicle_id")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.VehicleID = &id
		}
	}

	logs, err := h.ledger.ListMaintenance(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(logs))
}

func (h *Handler) createMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date"))
		return
	}

	status := req.Status
	if status == "" {
		status = model.MaintenancePending
	}

	log := model.MaintenanceLog{
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Cost:        req.Cost,
		Date:        date,
		Status:      status,
		Notes:       req.Notes,
	}

	if err := h.ledger.SaveMaintenance(c.Request.Context(), &log); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(log))
}

func (h *Handler) updateMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date"))
		return
	}

	log := model.MaintenanceLog{
		ID:          id,
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Cost:        req.Cost,
		Date:        date,
		Status:      req.Status,
		Notes:       req.Notes,
	}

	if err := h.ledger.UpdateMaintenance(c.Request.Context(), &log); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(log))
}

func (h *Handler) listFuel(c *gin.Context) {
	filter := model.FuelFilter{}
	if raw := strings.TrimSpace(c.Query("vehicle_id")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.VehicleID = &id
		}
	}

	logs, err := h.ledger.ListFuel(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(logs))
}

func (h *Handler) createFuel(c *gin.Context) {
	var req fuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date"))
		return
	}

	log := model.FuelLog{
		VehicleID:       req.VehicleID,
		Liters:          req.Liters,
		FuelCost:        req.FuelCost,
		Date:            date,
		OdometerReading: req.OdometerReading,
		Notes:           req.Notes,
	}

	if err := h.ledger.CreateFuel(c.Request.Context(), &log); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(log))
}

func (h *Handler) listExpenses(c *gin.Context) {
	filter := model.ExpenseFilter{
		Type: model.ExpenseType(strings.TrimSpace(c.Query("type"))),
	}
	if raw := strings.TrimSpace(c.Query("vehicle_id")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.VehicleID = &id
		}
	}

	expenses, err := h.ledger.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(expenses))
}

func (h *Handler) createExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date"))
		return
	}

	expense := model.Expense{
		VehicleID:   req.VehicleID,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}

	if err := h.ledger.CreateExpense(c.Request.Context(), &expense); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(expense))
}
