package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/model"
)

func validDriver() *model.Driver {
	return &model.Driver{
		Name:            "Asel",
		LicenseNumber:   "DL-001",
		LicenseCategory: model.LicenseCategoryC,
		LicenseExpiry:   frozenNow.AddDate(1, 0, 0),
	}
}

func TestDriverServiceCreate_DefaultsStatus(t *testing.T) {
	drivers := newFakeDriverStore()
	svc := NewDriverService(drivers, frozenClock)

	d := validDriver()
	require.NoError(t, svc.Create(context.Background(), d))
	assert.Equal(t, model.DriverOffDuty, d.Status)
}

func TestDriverServiceCreate_AggregatesValidation(t *testing.T) {
	svc := NewDriverService(newFakeDriverStore(), frozenClock)

	err := svc.Create(context.Background(), &model.Driver{LicenseCategory: "E"})

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Messages, 4)
}

func TestDriverServicePerformance(t *testing.T) {
	drivers := newFakeDriverStore()
	svc := NewDriverService(drivers, frozenClock)

	d := drivers.add(validDriver())
	drivers.stats[d.ID] = model.DriverStats{TotalTrips: 4, CompletedTrips: 3}

	perf, err := svc.Performance(context.Background(), d.ID)
	require.NoError(t, err)

	assert.True(t, perf.LicenseValid)
	assert.Equal(t, int64(4), perf.TotalTrips)
	assert.Equal(t, 75.0, perf.CompletionRate)
	assert.Equal(t, 75.0, perf.SafetyScore)
}

func TestDriverServicePerformance_ExpiredLicense(t *testing.T) {
	drivers := newFakeDriverStore()
	svc := NewDriverService(drivers, frozenClock)

	d := validDriver()
	d.LicenseExpiry = frozenNow.AddDate(0, 0, -1)
	drivers.add(d)

	perf, err := svc.Performance(context.Background(), d.ID)
	require.NoError(t, err)
	assert.False(t, perf.LicenseValid)
}
