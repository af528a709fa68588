package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) List(ctx context.Context, filter model.TripFilter) ([]model.Trip, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Preload("Vehicle").
		Preload("Driver")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}

	var trips []model.Trip
	if err := query.Order("created_at DESC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) Get(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		First(&trip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) Update(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Trip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveTransition persists the outcome of a trip lifecycle transition. All
// three records commit in a single transaction; the write order (trip,
// then vehicle, then driver) is kept for compatibility with consumers
// observing the individual tables.
func (r *TripRepository) SaveTransition(ctx context.Context, trip *model.Trip, vehicle *model.Vehicle, driver *model.Driver) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Vehicle", "Driver").Save(trip).Error; err != nil {
			return err
		}
		if err := tx.Save(vehicle).Error; err != nil {
			return err
		}
		return tx.Save(driver).Error
	})
}

func (r *TripRepository) SumCompletedDistance(ctx context.Context, rng model.DateRange) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("status = ? AND completion_date >= ? AND completion_date < ?", model.TripCompleted, rng.From, rng.To).
		Select("COALESCE(SUM(distance), 0)").
		Scan(&total).Error
	return total, err
}

func (r *TripRepository) SumCompletedRevenue(ctx context.Context, rng model.DateRange) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("status = ? AND completion_date >= ? AND completion_date < ?", model.TripCompleted, rng.From, rng.To).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&total).Error
	return total, err
}
