package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/model"
)

func validVehicle() *model.Vehicle {
	return &model.Vehicle{
		Name:            "Hauler 1",
		LicensePlate:    "KZ 123 ABC",
		VehicleType:     model.VehicleTruck,
		MaxCapacity:     3000,
		AcquisitionCost: 100000,
	}
}

func TestVehicleServiceCreate_DefaultsStatus(t *testing.T) {
	vehicles := newFakeVehicleStore()
	svc := NewVehicleService(vehicles)

	v := validVehicle()
	require.NoError(t, svc.Create(context.Background(), v))
	assert.Equal(t, model.VehicleAvailable, v.Status)
}

func TestVehicleServiceCreate_AggregatesValidation(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleStore())

	v := &model.Vehicle{
		VehicleType:     "SCOOTER",
		MaxCapacity:     -1,
		AcquisitionCost: -1,
		Odometer:        -1,
	}
	err := svc.Create(context.Background(), v)

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Messages, 6)
}

func TestVehicleServiceUpdate_RejectsOdometerRollback(t *testing.T) {
	vehicles := newFakeVehicleStore()
	svc := NewVehicleService(vehicles)

	existing := validVehicle()
	existing.Odometer = 2000
	vehicles.add(existing)

	edit := *existing
	edit.Odometer = 1500
	err := svc.Update(context.Background(), &edit)

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "odometer cannot decrease")
	assert.Empty(t, vehicles.saved)
}

func TestVehicleServiceFinancials(t *testing.T) {
	vehicles := newFakeVehicleStore()
	svc := NewVehicleService(vehicles)

	v := validVehicle()
	vehicles.add(v)
	vehicles.financials[v.ID] = model.VehicleFinancials{
		TotalRevenue:         20000,
		TotalMaintenanceCost: 3000,
		TotalFuelCost:        5000,
	}

	detail, err := svc.Financials(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, detail.ROI)
	assert.Equal(t, 8000.0, detail.Financials.TotalCosts())
}

func TestVehicleServiceGet_Unknown(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleStore())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
