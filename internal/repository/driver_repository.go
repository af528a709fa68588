package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) List(ctx context.Context, filter model.DriverFilter) ([]model.Driver, error) {
	query := r.db.WithContext(ctx).Model(&model.Driver{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR license_number ILIKE ?", pattern, pattern)
	}

	var drivers []model.Driver
	if err := query.Order("created_at DESC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepository) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *DriverRepository) Update(ctx context.Context, driver *model.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DriverRepository) TripCounts(ctx context.Context, driverID uuid.UUID) (model.DriverStats, error) {
	var stats model.DriverStats

	err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("driver_id = ?", driverID).
		Count(&stats.TotalTrips).Error
	if err != nil {
		return model.DriverStats{}, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("driver_id = ? AND status = ?", driverID, model.TripCompleted).
		Count(&stats.CompletedTrips).Error
	if err != nil {
		return model.DriverStats{}, err
	}

	return stats, nil
}

// ListTop returns the first `limit` drivers in creation order, the set the
// safety-score ranking is computed over.
func (r *DriverRepository) ListTop(ctx context.Context, limit int) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&drivers).Error
	return drivers, err
}
