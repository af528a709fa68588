package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleROI(t *testing.T) {
	tests := []struct {
		name            string
		acquisitionCost float64
		financials      VehicleFinancials
		want            float64
	}{
		{
			name:            "typical net gain",
			acquisitionCost: 100000,
			financials: VehicleFinancials{
				TotalRevenue:         20000,
				TotalMaintenanceCost: 3000,
				TotalFuelCost:        5000,
			},
			want: 12.0,
		},
		{
			name:            "zero acquisition cost reports zero",
			acquisitionCost: 0,
			financials:      VehicleFinancials{TotalRevenue: 50000},
			want:            0,
		},
		{
			name:            "costs exceeding revenue go negative",
			acquisitionCost: 10000,
			financials: VehicleFinancials{
				TotalRevenue:         1000,
				TotalMaintenanceCost: 2000,
			},
			want: -10.0,
		},
		{
			name:            "no activity at all",
			acquisitionCost: 10000,
			want:            0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Vehicle{AcquisitionCost: tt.acquisitionCost}
			assert.InDelta(t, tt.want, v.ROI(tt.financials), 1e-9)
		})
	}
}

func TestVehicleIsAvailableForDispatch(t *testing.T) {
	v := &Vehicle{Status: VehicleAvailable}
	assert.True(t, v.IsAvailableForDispatch())

	for _, status := range []VehicleStatus{VehicleOnTrip, VehicleInShop, VehicleSuspended, VehicleRetired} {
		v.Status = status
		assert.False(t, v.IsAvailableForDispatch(), string(status))
	}
}
