package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func availableVehicle(capacity float64) *Vehicle {
	return &Vehicle{
		Name:        "Hauler 1",
		MaxCapacity: capacity,
		Status:      VehicleAvailable,
	}
}

func onDutyDriver() *Driver {
	return &Driver{
		Name:          "Asel",
		Status:        DriverOnDuty,
		LicenseExpiry: testNow.AddDate(1, 0, 0),
	}
}

func TestTripValidate_AllRulesPass(t *testing.T) {
	trip := &Trip{CargoWeight: 1000, Status: TripDraft}
	err := trip.Validate(availableVehicle(3000), onDutyDriver(), testNow)
	assert.NoError(t, err)
}

func TestTripValidate_CargoOverCapacity(t *testing.T) {
	trip := &Trip{CargoWeight: 5000, Status: TripDraft}
	err := trip.Validate(availableVehicle(3000), onDutyDriver(), testNow)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Messages, 1)
	assert.Contains(t, verr.Messages[0], "5000.00")
	assert.Contains(t, verr.Messages[0], "3000.00")
}

func TestTripValidate_ExpiredLicense(t *testing.T) {
	driver := onDutyDriver()
	driver.LicenseExpiry = testNow.AddDate(0, 0, -1)

	trip := &Trip{CargoWeight: 1000, Status: TripDraft}
	err := trip.Validate(availableVehicle(3000), driver, testNow)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "license expired")
}

func TestTripValidate_AggregatesAllViolations(t *testing.T) {
	vehicle := availableVehicle(3000)
	vehicle.Status = VehicleInShop

	driver := onDutyDriver()
	driver.Status = DriverOffDuty
	driver.LicenseExpiry = testNow.AddDate(0, 0, -10)

	trip := &Trip{CargoWeight: 5000, Status: TripDraft}
	err := trip.Validate(vehicle, driver, testNow)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Messages, 4)
}

func TestTripValidate_StatusRulesOnlyForDraft(t *testing.T) {
	vehicle := availableVehicle(3000)
	vehicle.Status = VehicleOnTrip

	driver := onDutyDriver()
	driver.Status = DriverOnTrip

	trip := &Trip{CargoWeight: 1000, Status: TripDispatched}
	assert.NoError(t, trip.Validate(vehicle, driver, testNow))
}

func TestTripDispatch(t *testing.T) {
	vehicle := availableVehicle(3000)
	driver := onDutyDriver()
	trip := &Trip{CargoWeight: 1000, Status: TripDraft}

	trip.Dispatch(vehicle, driver, testNow)

	assert.Equal(t, TripDispatched, trip.Status)
	require.NotNil(t, trip.DispatchDate)
	assert.Equal(t, testNow, *trip.DispatchDate)
	assert.Equal(t, VehicleOnTrip, vehicle.Status)
	assert.Equal(t, DriverOnTrip, driver.Status)
}

func TestTripComplete(t *testing.T) {
	vehicle := availableVehicle(3000)
	vehicle.Status = VehicleOnTrip
	vehicle.Odometer = 1500

	driver := onDutyDriver()
	driver.Status = DriverOnTrip

	trip := &Trip{CargoWeight: 1000, Status: TripDispatched}
	trip.Complete(vehicle, driver, 250, testNow)

	assert.Equal(t, TripCompleted, trip.Status)
	assert.Equal(t, 250.0, trip.Distance)
	require.NotNil(t, trip.CompletionDate)
	assert.Equal(t, 1750.0, vehicle.Odometer)
	assert.Equal(t, VehicleAvailable, vehicle.Status)
	assert.Equal(t, DriverOnDuty, driver.Status)
}

func TestTripCancel_RevertsOnTripParties(t *testing.T) {
	vehicle := availableVehicle(3000)
	vehicle.Status = VehicleOnTrip
	driver := onDutyDriver()
	driver.Status = DriverOnTrip

	trip := &Trip{Status: TripDispatched}
	trip.Cancel(vehicle, driver)

	assert.Equal(t, TripCancelled, trip.Status)
	assert.Equal(t, VehicleAvailable, vehicle.Status)
	assert.Equal(t, DriverOnDuty, driver.Status)
}

func TestTripCancel_LeavesUnrelatedStatusesAlone(t *testing.T) {
	vehicle := availableVehicle(3000)
	vehicle.Status = VehicleInShop
	driver := onDutyDriver()
	driver.Status = DriverSuspended

	trip := &Trip{Status: TripDraft}
	trip.Cancel(vehicle, driver)

	assert.Equal(t, TripCancelled, trip.Status)
	assert.Equal(t, VehicleInShop, vehicle.Status)
	assert.Equal(t, DriverSuspended, driver.Status)
}
