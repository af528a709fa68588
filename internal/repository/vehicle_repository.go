package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("vehicle_type = ?", filter.Type)
	}
	if filter.Region != "" {
		query = query.Where("region ILIKE ?", "%"+filter.Region+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR license_plate ILIKE ?", pattern, pattern)
	}

	var vehicles []model.Vehicle
	if err := query.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetWithLogs loads a vehicle together with its most recent ledger entries
// and trips for the detail view.
func (r *VehicleRepository) GetWithLogs(ctx context.Context, id uuid.UUID, limit int) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).
		Preload("MaintenanceLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC").Limit(limit)
		}).
		Preload("FuelLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC").Limit(limit)
		}).
		Preload("Trips", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(limit)
		}).
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) TotalMaintenanceCost(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.MaintenanceLog{}).
		Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *VehicleRepository) TotalFuelCost(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.FuelLog{}).
		Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(SUM(fuel_cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *VehicleRepository) TotalRevenue(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, model.TripCompleted).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&total).Error
	return total, err
}

func (r *VehicleRepository) Financials(ctx context.Context, vehicleID uuid.UUID) (model.VehicleFinancials, error) {
	revenue, err := r.TotalRevenue(ctx, vehicleID)
	if err != nil {
		return model.VehicleFinancials{}, err
	}
	maintenance, err := r.TotalMaintenanceCost(ctx, vehicleID)
	if err != nil {
		return model.VehicleFinancials{}, err
	}
	fuel, err := r.TotalFuelCost(ctx, vehicleID)
	if err != nil {
		return model.VehicleFinancials{}, err
	}
	return model.VehicleFinancials{
		TotalRevenue:         revenue,
		TotalMaintenanceCost: maintenance,
		TotalFuelCost:        fuel,
	}, nil
}

// CountActiveFleet counts every vehicle that has not been retired.
func (r *VehicleRepository) CountActiveFleet(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("status <> ?", model.VehicleRetired).
		Count(&count).Error
	return count, err
}

func (r *VehicleRepository) CountOnTrip(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("status = ?", model.VehicleOnTrip).
		Count(&count).Error
	return count, err
}

func (r *VehicleRepository) CountByStatus(ctx context.Context) ([]model.VehicleStatusCount, error) {
	var counts []model.VehicleStatusCount
	err := r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

// ListActive returns the first `limit` non-retired vehicles in creation
// order, the set the ROI ranking is computed over.
func (r *VehicleRepository) ListActive(ctx context.Context, limit int) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.VehicleRetired).
		Order("created_at DESC").
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}
