package model

import (
	"time"

	"github.com/google/uuid"
)

type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "AVAILABLE"
	VehicleOnTrip    VehicleStatus = "ON_TRIP"
	VehicleInShop    VehicleStatus = "IN_SHOP"
	VehicleSuspended VehicleStatus = "SUSPENDED"
	VehicleRetired   VehicleStatus = "RETIRED"
)

type VehicleType string

const (
	VehicleTruck VehicleType = "TRUCK"
	VehicleVan   VehicleType = "VAN"
	VehicleBike  VehicleType = "BIKE"
)

type Vehicle struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string        `gorm:"size:100;not null" json:"name"`
	LicensePlate       string        `gorm:"size:20;uniqueIndex;not null" json:"license_plate"`
	VehicleType        VehicleType   `gorm:"type:varchar(10);not null" json:"vehicle_type"`
	MaxCapacity        float64       `gorm:"not null" json:"max_capacity"`
	AcquisitionCost    float64       `gorm:"not null" json:"acquisition_cost"`
	Odometer           float64       `gorm:"not null;default:0" json:"odometer"`
	Status             VehicleStatus `gorm:"type:varchar(15);index;not null;default:'AVAILABLE'" json:"status"`
	Region             string        `gorm:"size:50" json:"region"`
	Latitude           *float64      `json:"latitude,omitempty"`
	Longitude          *float64      `json:"longitude,omitempty"`
	LastLocationUpdate *time.Time    `json:"last_location_update,omitempty"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	MaintenanceLogs []MaintenanceLog `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"maintenance_logs,omitempty"`
	FuelLogs        []FuelLog        `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"fuel_logs,omitempty"`
	Expenses        []Expense        `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`
	Trips           []Trip           `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"trips,omitempty"`
}

func (Vehicle) TableName() string { return "vehicles" }

func (v *Vehicle) IsAvailableForDispatch() bool {
	return v.Status == VehicleAvailable
}

// VehicleFinancials holds the per-vehicle sums the registry aggregates
// from the maintenance/fuel ledgers and completed trips.
type VehicleFinancials struct {
	TotalRevenue         float64 `json:"total_revenue"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
}

func (f VehicleFinancials) TotalCosts() float64 {
	return f.TotalMaintenanceCost + f.TotalFuelCost
}

// ROI is the percentage of the acquisition cost recovered as net revenue.
// Vehicles with no acquisition cost report 0 regardless of their totals.
// The result is not clamped and may be negative.
func (v *Vehicle) ROI(f VehicleFinancials) float64 {
	if v.AcquisitionCost <= 0 {
		return 0
	}
	return (f.TotalRevenue - f.TotalCosts()) / v.AcquisitionCost * 100
}
