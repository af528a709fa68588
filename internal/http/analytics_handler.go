package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/http/middleware"
	"fleetflow/internal/report"
)

func (h *Handler) analyticsAllowed(c *gin.Context) bool {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return false
	}
	if principal.IsDriver() {
		c.JSON(http.StatusForbidden, errorResponse("permission denied"))
		return false
	}
	return true
}

func (h *Handler) getDashboard(c *gin.Context) {
	if !h.analyticsAllowed(c) {
		return
	}

	days := 0
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	dashboard, err := h.analytics.Dashboard(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(dashboard))
}

func (h *Handler) getChartData(c *gin.Context) {
	if !h.analyticsAllowed(c) {
		return
	}

	chartType := strings.TrimSpace(c.DefaultQuery("type", "vehicle_status"))

	data, err := h.analytics.ChartData(c.Request.Context(), chartType)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(data))
}

func (h *Handler) exportCSV(c *gin.Context) {
	if !h.analyticsAllowed(c) {
		return
	}

	rows, err := h.analytics.ExportRows(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="fleet_analytics.csv"`)
	c.Status(http.StatusOK)

	if err := report.WriteCSV(c.Writer, rows); err != nil {
		h.log.Error().Err(err).Msg("writing csv export")
	}
}

func (h *Handler) exportPDF(c *gin.Context) {
	if !h.analyticsAllowed(c) {
		return
	}

	rows, err := h.analytics.ExportRows(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	payload, err := report.BuildPDF(rows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fleet_analytics.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
