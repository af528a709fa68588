package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidChartType  = errors.New("invalid chart type")
)

// Clock supplies the current time to every service so that license
// checks and lifecycle timestamps stay deterministic under test.
type Clock func() time.Time

// VehicleStore is the persistence surface the services need for vehicles.
// *repository.VehicleRepository satisfies it.
type VehicleStore interface {
	List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetWithLogs(ctx context.Context, id uuid.UUID, limit int) (*model.Vehicle, error)
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	Financials(ctx context.Context, vehicleID uuid.UUID) (model.VehicleFinancials, error)
	CountActiveFleet(ctx context.Context) (int64, error)
	CountOnTrip(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]model.VehicleStatusCount, error)
	ListActive(ctx context.Context, limit int) ([]model.Vehicle, error)
}

// DriverStore is satisfied by *repository.DriverRepository.
type DriverStore interface {
	List(ctx context.Context, filter model.DriverFilter) ([]model.Driver, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	Create(ctx context.Context, driver *model.Driver) error
	Update(ctx context.Context, driver *model.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
	TripCounts(ctx context.Context, driverID uuid.UUID) (model.DriverStats, error)
	ListTop(ctx context.Context, limit int) ([]model.Driver, error)
}

// TripStore is satisfied by *repository.TripRepository.
type TripStore interface {
	List(ctx context.Context, filter model.TripFilter) ([]model.Trip, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	Create(ctx context.Context, trip *model.Trip) error
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	SaveTransition(ctx context.Context, trip *model.Trip, vehicle *model.Vehicle, driver *model.Driver) error
	SumCompletedDistance(ctx context.Context, rng model.DateRange) (float64, error)
	SumCompletedRevenue(ctx context.Context, rng model.DateRange) (float64, error)
}

// LedgerStore is satisfied by *repository.LedgerRepository.
type LedgerStore interface {
	ListMaintenance(ctx context.Context, filter model.MaintenanceFilter) ([]model.MaintenanceLog, error)
	GetMaintenance(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error)
	HasOtherOpenMaintenance(ctx context.Context, vehicleID, excludeID uuid.UUID) (bool, error)
	SaveMaintenance(ctx context.Context, log *model.MaintenanceLog, vehicle *model.Vehicle) error
	SumCompletedMaintenanceCost(ctx context.Context, rng model.DateRange) (float64, error)
	ListFuel(ctx context.Context, filter model.FuelFilter) ([]model.FuelLog, error)
	CreateFuel(ctx context.Context, log *model.FuelLog) error
	SumFuelLiters(ctx context.Context, rng model.DateRange) (float64, error)
	SumFuelCost(ctx context.Context, rng model.DateRange) (float64, error)
	ListExpenses(ctx context.Context, filter model.ExpenseFilter) ([]model.Expense, error)
	CreateExpense(ctx context.Context, expense *model.Expense) error
}
