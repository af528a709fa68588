package model

import (
	"time"

	"github.com/google/uuid"
)

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// TrailingWindow builds the range covering the last `days` days ending at
// now, falling back to defaultDays and clamped to maxDays.
func TrailingWindow(now time.Time, days, defaultDays, maxDays int) DateRange {
	if days <= 0 {
		days = defaultDays
	}
	if maxDays > 0 && days > maxDays {
		days = maxDays
	}
	return DateRange{From: now.AddDate(0, 0, -days), To: now}
}

type VehicleFilter struct {
	Status VehicleStatus
	Type   VehicleType
	Region string // substring, case-insensitive
	Search string // name or plate substring, case-insensitive
}

type DriverFilter struct {
	Status DriverStatus
	Search string // name or license number substring, case-insensitive
}

type TripFilter struct {
	Status    TripStatus
	VehicleID *uuid.UUID
	DriverID  *uuid.UUID
}

type MaintenanceFilter struct {
	VehicleID *uuid.UUID
	Status    MaintenanceStatus
}

type FuelFilter struct {
	VehicleID *uuid.UUID
}

type ExpenseFilter struct {
	VehicleID *uuid.UUID
	Type      ExpenseType
}
