package model

import (
	"time"

	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "ON_DUTY"
	DriverOffDuty   DriverStatus = "OFF_DUTY"
	DriverOnTrip    DriverStatus = "ON_TRIP"
	DriverSuspended DriverStatus = "SUSPENDED"
)

type LicenseCategory string

const (
	LicenseCategoryA LicenseCategory = "A" // motorcycle
	LicenseCategoryB LicenseCategory = "B" // car/van
	LicenseCategoryC LicenseCategory = "C" // truck
	LicenseCategoryD LicenseCategory = "D" // bus
)

type Driver struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string          `gorm:"size:100;not null" json:"name"`
	LicenseNumber     string          `gorm:"size:50;uniqueIndex;not null" json:"license_number"`
	LicenseCategory   LicenseCategory `gorm:"type:varchar(5);not null" json:"license_category"`
	LicenseExpiry     time.Time       `gorm:"not null" json:"license_expiry"`
	Phone             string          `gorm:"size:20" json:"phone"`
	Status            DriverStatus    `gorm:"type:varchar(15);index;not null;default:'OFF_DUTY'" json:"status"`
	AssignedVehicleID *uuid.UUID      `gorm:"type:uuid" json:"assigned_vehicle_id,omitempty"`
	AssignedVehicle   *Vehicle        `gorm:"foreignKey:AssignedVehicleID;constraint:OnDelete:SET NULL" json:"assigned_vehicle,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Trips []Trip `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE" json:"trips,omitempty"`
}

func (Driver) TableName() string { return "drivers" }

// IsLicenseValid is evaluated against the supplied time on every call,
// never cached. A license expiring today still counts as valid.
func (d *Driver) IsLicenseValid(now time.Time) bool {
	expiry := d.LicenseExpiry.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	return !expiry.Before(today)
}

func (d *Driver) IsAvailableForDispatch(now time.Time) bool {
	return d.Status == DriverOnDuty && d.IsLicenseValid(now)
}

// DriverStats carries per-driver trip counts queried from the trip table.
type DriverStats struct {
	TotalTrips     int64 `json:"total_trips"`
	CompletedTrips int64 `json:"completed_trips"`
}

func (s DriverStats) CompletionRate() float64 {
	if s.TotalTrips == 0 {
		return 0
	}
	return float64(s.CompletedTrips) / float64(s.TotalTrips) * 100
}

// SafetyScore is completion rate capped at 100. A crude proxy with no
// other inputs, kept as-is for compatibility with existing consumers.
func (s DriverStats) SafetyScore() float64 {
	rate := s.CompletionRate()
	if rate > 100 {
		return 100
	}
	return rate
}
