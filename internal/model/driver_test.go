package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDriverIsLicenseValid(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	d := &Driver{LicenseExpiry: now.AddDate(0, 6, 0)}
	assert.True(t, d.IsLicenseValid(now))

	// Expiring today still counts as valid.
	d.LicenseExpiry = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, d.IsLicenseValid(now))

	d.LicenseExpiry = now.AddDate(0, 0, -1)
	assert.False(t, d.IsLicenseValid(now))
}

func TestDriverIsAvailableForDispatch(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	d := &Driver{Status: DriverOnDuty, LicenseExpiry: now.AddDate(1, 0, 0)}
	assert.True(t, d.IsAvailableForDispatch(now))

	d.Status = DriverOffDuty
	assert.False(t, d.IsAvailableForDispatch(now))

	d.Status = DriverOnDuty
	d.LicenseExpiry = now.AddDate(0, 0, -1)
	assert.False(t, d.IsAvailableForDispatch(now))
}

func TestDriverStats(t *testing.T) {
	assert.Zero(t, DriverStats{}.CompletionRate())
	assert.Zero(t, DriverStats{}.SafetyScore())

	stats := DriverStats{TotalTrips: 4, CompletedTrips: 3}
	assert.InDelta(t, 75.0, stats.CompletionRate(), 1e-9)
	assert.InDelta(t, 75.0, stats.SafetyScore(), 1e-9)

	perfect := DriverStats{TotalTrips: 10, CompletedTrips: 10}
	assert.InDelta(t, 100.0, perfect.SafetyScore(), 1e-9)
}
