package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceOilChange       ServiceType = "OIL_CHANGE"
	ServiceTireReplacement ServiceType = "TIRE_REPLACEMENT"
	ServiceBrakeService    ServiceType = "BRAKE_SERVICE"
	ServiceEngineRepair    ServiceType = "ENGINE_REPAIR"
	ServiceBodyWork        ServiceType = "BODY_WORK"
	ServiceInspection      ServiceType = "INSPECTION"
	ServiceOther           ServiceType = "OTHER"
)

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "PENDING"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
)

func (s MaintenanceStatus) IsOpen() bool {
	return s == MaintenancePending || s == MaintenanceInProgress
}

type MaintenanceLog struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID   uuid.UUID         `gorm:"type:uuid;index;not null" json:"vehicle_id"`
	ServiceType ServiceType       `gorm:"type:varchar(20);not null" json:"service_type"`
	Cost        float64           `gorm:"not null" json:"cost"`
	Date        time.Time         `gorm:"not null" json:"date"`
	Status      MaintenanceStatus `gorm:"type:varchar(15);index;not null;default:'PENDING'" json:"status"`
	Notes       string            `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (MaintenanceLog) TableName() string { return "maintenance_logs" }

// DeriveVehicleStatusAfterMaintenance decides what a maintenance save does
// to the owning vehicle. An open log forces the vehicle into the shop; a
// completed log releases it only when no other open log remains. The
// second return value reports whether the vehicle status changes at all.
func DeriveVehicleStatusAfterMaintenance(logStatus MaintenanceStatus, otherOpenExists bool) (VehicleStatus, bool) {
	if logStatus.IsOpen() {
		return VehicleInShop, true
	}
	if !otherOpenExists {
		return VehicleAvailable, true
	}
	return "", false
}

type FuelLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID       uuid.UUID `gorm:"type:uuid;index;not null" json:"vehicle_id"`
	Liters          float64   `gorm:"not null" json:"liters"`
	FuelCost        float64   `gorm:"not null" json:"fuel_cost"`
	Date            time.Time `gorm:"not null" json:"date"`
	OdometerReading float64   `gorm:"not null" json:"odometer_reading"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FuelLog) TableName() string { return "fuel_logs" }

func (f *FuelLog) CostPerLiter() float64 {
	if f.Liters <= 0 {
		return 0
	}
	return f.FuelCost / f.Liters
}

type ExpenseType string

const (
	ExpenseFuel         ExpenseType = "FUEL"
	ExpenseMaintenance  ExpenseType = "MAINTENANCE"
	ExpenseInsurance    ExpenseType = "INSURANCE"
	ExpenseRegistration ExpenseType = "REGISTRATION"
	ExpenseParking      ExpenseType = "PARKING"
	ExpenseTolls        ExpenseType = "TOLLS"
	ExpenseOther        ExpenseType = "OTHER"
)

type Expense struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"vehicle_id"`
	ExpenseType ExpenseType `gorm:"type:varchar(20);not null" json:"expense_type"`
	Amount      float64     `gorm:"not null" json:"amount"`
	Date        time.Time   `gorm:"not null" json:"date"`
	Description string      `gorm:"type:text" json:"description"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Expense) TableName() string { return "expenses" }
