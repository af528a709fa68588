package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripDraft      TripStatus = "DRAFT"
	TripDispatched TripStatus = "DISPATCHED"
	TripCompleted  TripStatus = "COMPLETED"
	TripCancelled  TripStatus = "CANCELLED"
)

type Trip struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"vehicle_id"`
	Vehicle        *Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	DriverID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"driver_id"`
	Driver         *Driver    `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	CargoWeight    float64    `gorm:"not null" json:"cargo_weight"`
	Source         string     `gorm:"size:200;not null" json:"source"`
	Destination    string     `gorm:"size:200;not null" json:"destination"`
	Revenue        float64    `gorm:"not null" json:"revenue"`
	Distance       float64    `gorm:"not null;default:0" json:"distance"`
	Status         TripStatus `gorm:"type:varchar(15);index;not null;default:'DRAFT'" json:"status"`
	DispatchDate   *time.Time `json:"dispatch_date,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trip) TableName() string { return "trips" }

// Validate runs the full business rule set against the trip's vehicle and
// driver. Every violated rule is collected; the returned error carries all
// of them, never only the first.
func (t *Trip) Validate(vehicle *Vehicle, driver *Driver, now time.Time) error {
	var verr ValidationError

	if t.CargoWeight > vehicle.MaxCapacity {
		verr.Add(fmt.Sprintf("cargo weight (%.2f kg) exceeds vehicle capacity (%.2f kg)", t.CargoWeight, vehicle.MaxCapacity))
	}
	if !driver.IsLicenseValid(now) {
		verr.Add(fmt.Sprintf("driver license expired on %s", driver.LicenseExpiry.Format("2006-01-02")))
	}
	if t.Status == TripDraft {
		if driver.Status != DriverOnDuty && driver.Status != DriverOnTrip {
			verr.Add(fmt.Sprintf("driver status is %s, must be On Duty", driver.Status))
		}
		if !vehicle.IsAvailableForDispatch() {
			verr.Add(fmt.Sprintf("vehicle status is %s, must be Available", vehicle.Status))
		}
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

// Dispatch applies the Draft -> Dispatched transition to the trip and both
// of its counterparts in memory. Callers are expected to have checked the
// current status and run Validate first; the storage layer persists all
// three records in one transaction.
func (t *Trip) Dispatch(vehicle *Vehicle, driver *Driver, now time.Time) {
	t.Status = TripDispatched
	t.DispatchDate = &now

	vehicle.Status = VehicleOnTrip
	driver.Status = DriverOnTrip
}

// Complete applies Dispatched -> Completed, recording the travelled
// distance on the trip and rolling it into the vehicle odometer.
func (t *Trip) Complete(vehicle *Vehicle, driver *Driver, distance float64, now time.Time) {
	t.Status = TripCompleted
	t.CompletionDate = &now
	t.Distance = distance

	vehicle.Odometer += distance
	vehicle.Status = VehicleAvailable
	driver.Status = DriverOnDuty
}

// Cancel marks the trip cancelled and reverts vehicle and driver only if
// they are still flagged as on this trip. Cancelling an already cancelled
// trip is harmless.
func (t *Trip) Cancel(vehicle *Vehicle, driver *Driver) {
	t.Status = TripCancelled

	if vehicle.Status == VehicleOnTrip {
		vehicle.Status = VehicleAvailable
	}
	if driver.Status == DriverOnTrip {
		driver.Status = DriverOnDuty
	}
}
