package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
)

// LedgerRepository covers the three vehicle-owned log tables: maintenance,
// fuel and expenses.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) ListMaintenance(ctx context.Context, filter model.MaintenanceFilter) ([]model.MaintenanceLog, error) {
	query := r.db.WithContext(ctx).Model(&model.MaintenanceLog{})

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var logs []model.MaintenanceLog
	if err := query.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *LedgerRepository) GetMaintenance(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error) {
	var log model.MaintenanceLog
	if err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// HasOtherOpenMaintenance reports whether any maintenance log other than
// excludeID is still pending or in progress for the vehicle.
func (r *LedgerRepository) HasOtherOpenMaintenance(ctx context.Context, vehicleID, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MaintenanceLog{}).
		Where("vehicle_id = ? AND status IN ?", vehicleID,
			[]model.MaintenanceStatus{model.MaintenancePending, model.MaintenanceInProgress}).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

// SaveMaintenance persists a maintenance log and, when the save changes
// the owning vehicle's status, that vehicle too. Both writes commit in one
// transaction with the vehicle written first, matching the order the
// derivation has always been observed in.
func (r *LedgerRepository) SaveMaintenance(ctx context.Context, log *model.MaintenanceLog, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if vehicle != nil {
			if err := tx.Save(vehicle).Error; err != nil {
				return err
			}
		}
		return tx.Save(log).Error
	})
}

func (r *LedgerRepository) SumCompletedMaintenanceCost(ctx context.Context, rng model.DateRange) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.MaintenanceLog{}).
		Where("status = ? AND date >= ? AND date < ?", model.MaintenanceCompleted, rng.From, rng.To).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *LedgerRepository) ListFuel(ctx context.Context, filter model.FuelFilter) ([]model.FuelLog, error) {
	query := r.db.WithContext(ctx).Model(&model.FuelLog{})

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}

	var logs []model.FuelLog
	if err := query.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *LedgerRepository) CreateFuel(ctx context.Context, log *model.FuelLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *LedgerRepository) SumFuelLiters(ctx context.Context, rng model.DateRange) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.FuelLog{}).
		Where("date >= ? AND date < ?", rng.From, rng.To).
		Select("COALESCE(SUM(liters), 0)").
		Scan(&total).Error
	return total, err
}

func (r *LedgerRepository) SumFuelCost(ctx context.Context, rng model.DateRange) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.FuelLog{}).
		Where("date >= ? AND date < ?", rng.From, rng.To).
		Select("COALESCE(SUM(fuel_cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *LedgerRepository) ListExpenses(ctx context.Context, filter model.ExpenseFilter) ([]model.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.Expense{})

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Type != "" {
		query = query.Where("expense_type = ?", filter.Type)
	}

	var expenses []model.Expense
	if err := query.Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *LedgerRepository) CreateExpense(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}
