package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestHandleErrorMapping(t *testing.T) {
	verr := &model.ValidationError{}
	verr.Add("cargo weight cannot be negative")
	verr.Add("source is required")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation errors return the full list",
			err:        verr,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["cargo weight cannot be negative","source is required"]}`,
		},
		{
			name:       "not found",
			err:        service.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		{
			name:       "invalid transition",
			err:        fmt.Errorf("%w: only draft trips can be dispatched", service.ErrInvalidTransition),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"invalid transition: only draft trips can be dispatched"}`,
		},
		{
			name:       "invalid chart type",
			err:        service.ErrInvalidChartType,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid chart type"}`,
		},
		{
			name:       "unexpected errors stay opaque",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testContext(t)
			h := &Handler{}
			h.handleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAnalyticsAllowed(t *testing.T) {
	h := &Handler{}

	t.Run("missing principal", func(t *testing.T) {
		c, rec := testContext(t)
		assert.False(t, h.analyticsAllowed(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("driver role is rejected", func(t *testing.T) {
		c, rec := testContext(t)
		c.Set("principal", model.Principal{Role: model.RoleDriver})
		assert.False(t, h.analyticsAllowed(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("dispatcher passes", func(t *testing.T) {
		c, rec := testContext(t)
		c.Set("principal", model.Principal{Role: model.RoleDispatcher})
		assert.True(t, h.analyticsAllowed(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2026-03-15T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC), got)

	_, err = parseDate("15/03/2026")
	assert.Error(t, err)
}
