package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
)

const detailLogLimit = 10

type VehicleService struct {
	vehicles VehicleStore
}

func NewVehicleService(vehicles VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// VehicleDetail is the detail view payload: the vehicle with its latest
// logs and trips plus the derived financials.
type VehicleDetail struct {
	Vehicle    model.Vehicle           `json:"vehicle"`
	Financials model.VehicleFinancials `json:"financials"`
	ROI        float64                 `json:"roi"`
}

func (s *VehicleService) List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx, filter)
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.Get(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return vehicle, nil
}

func (s *VehicleService) Detail(ctx context.Context, id uuid.UUID) (*VehicleDetail, error) {
	vehicle, err := s.vehicles.GetWithLogs(ctx, id, detailLogLimit)
	if err != nil {
		return nil, asServiceError(err)
	}
	financials, err := s.vehicles.Financials(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VehicleDetail{
		Vehicle:    *vehicle,
		Financials: financials,
		ROI:        vehicle.ROI(financials),
	}, nil
}

func (s *VehicleService) Create(ctx context.Context, vehicle *model.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	if vehicle.Status == "" {
		vehicle.Status = model.VehicleAvailable
	}
	return s.vehicles.Create(ctx, vehicle)
}

func (s *VehicleService) Update(ctx context.Context, vehicle *model.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	existing, err := s.vehicles.Get(ctx, vehicle.ID)
	if err != nil {
		return asServiceError(err)
	}
	if vehicle.Odometer < existing.Odometer {
		var verr model.ValidationError
		verr.Add(fmt.Sprintf("odometer cannot decrease (current %.2f, given %.2f)", existing.Odometer, vehicle.Odometer))
		return &verr
	}
	return s.vehicles.Update(ctx, vehicle)
}

func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return asServiceError(s.vehicles.Delete(ctx, id))
}

func (s *VehicleService) Financials(ctx context.Context, id uuid.UUID) (*VehicleDetail, error) {
	vehicle, err := s.vehicles.Get(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	financials, err := s.vehicles.Financials(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VehicleDetail{
		Vehicle:    *vehicle,
		Financials: financials,
		ROI:        vehicle.ROI(financials),
	}, nil
}

func validateVehicle(vehicle *model.Vehicle) error {
	var verr model.ValidationError

	if vehicle.Name == "" {
		verr.Add("name is required")
	}
	if vehicle.LicensePlate == "" {
		verr.Add("license plate is required")
	}
	switch vehicle.VehicleType {
	case model.VehicleTruck, model.VehicleVan, model.VehicleBike:
	default:
		verr.Add(fmt.Sprintf("unknown vehicle type %q", vehicle.VehicleType))
	}
	if vehicle.MaxCapacity < 0 {
		verr.Add("max capacity cannot be negative")
	}
	if vehicle.AcquisitionCost < 0 {
		verr.Add("acquisition cost cannot be negative")
	}
	if vehicle.Odometer < 0 {
		verr.Add("odometer cannot be negative")
	}
	switch vehicle.Status {
	case "", model.VehicleAvailable, model.VehicleOnTrip, model.VehicleInShop,
		model.VehicleSuspended, model.VehicleRetired:
	default:
		verr.Add(fmt.Sprintf("unknown vehicle status %q", vehicle.Status))
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

func asServiceError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
