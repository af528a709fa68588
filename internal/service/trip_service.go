package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type TripService struct {
	trips    TripStore
	vehicles VehicleStore
	drivers  DriverStore
	now      Clock
}

func NewTripService(trips TripStore, vehicles VehicleStore, drivers DriverStore, now Clock) *TripService {
	if now == nil {
		now = time.Now
	}
	return &TripService{trips: trips, vehicles: vehicles, drivers: drivers, now: now}
}

func (s *TripService) List(ctx context.Context, filter model.TripFilter) ([]model.Trip, error) {
	return s.trips.List(ctx, filter)
}

func (s *TripService) Get(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.trips.Get(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return trip, nil
}

func (s *TripService) Create(ctx context.Context, trip *model.Trip) error {
	if err := validateTripFields(trip); err != nil {
		return err
	}
	trip.Status = model.TripDraft

	vehicle, driver, err := s.loadParties(ctx, trip.VehicleID, trip.DriverID)
	if err != nil {
		return err
	}
	if err := trip.Validate(vehicle, driver, s.now()); err != nil {
		return err
	}
	return s.trips.Create(ctx, trip)
}

// Update edits a trip while it is still a draft. Edits after dispatch are
// rejected without touching anything.
func (s *TripService) Update(ctx context.Context, trip *model.Trip) error {
	existing, err := s.trips.Get(ctx, trip.ID)
	if err != nil {
		return asServiceError(err)
	}
	if existing.Status != model.TripDraft {
		return fmt.Errorf("%w: only draft trips can be edited", ErrInvalidTransition)
	}
	if err := validateTripFields(trip); err != nil {
		return err
	}
	trip.Status = model.TripDraft
	// Save writes every column, so carry the creation time over from the
	// stored row instead of the zero value the request carries.
	trip.CreatedAt = existing.CreatedAt

	vehicle, driver, err := s.loadParties(ctx, trip.VehicleID, trip.DriverID)
	if err != nil {
		return err
	}
	if err := trip.Validate(vehicle, driver, s.now()); err != nil {
		return err
	}
	return s.trips.Update(ctx, trip)
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	return asServiceError(s.trips.Delete(ctx, id))
}

// Dispatch moves a draft trip to Dispatched and flags its vehicle and
// driver as on-trip. The full rule set runs again right before the
// transition; the three writes commit atomically in trip, vehicle,
// driver order.
func (s *TripService) Dispatch(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, vehicle, driver, err := s.loadTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status != model.TripDraft {
		return nil, fmt.Errorf("%w: only draft trips can be dispatched", ErrInvalidTransition)
	}
	if err := trip.Validate(vehicle, driver, s.now()); err != nil {
		return nil, err
	}

	trip.Dispatch(vehicle, driver, s.now())

	if err := s.trips.SaveTransition(ctx, trip, vehicle, driver); err != nil {
		return nil, err
	}
	return trip, nil
}

// Complete finishes a dispatched trip, records the travelled distance and
// rolls it into the vehicle odometer.
func (s *TripService) Complete(ctx context.Context, id uuid.UUID, distance float64) (*model.Trip, error) {
	if distance < 0 {
		var verr model.ValidationError
		verr.Add("distance travelled cannot be negative")
		return nil, &verr
	}

	trip, vehicle, driver, err := s.loadTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status != model.TripDispatched {
		return nil, fmt.Errorf("%w: only dispatched trips can be completed", ErrInvalidTransition)
	}

	trip.Complete(vehicle, driver, distance, s.now())

	if err := s.trips.SaveTransition(ctx, trip, vehicle, driver); err != nil {
		return nil, err
	}
	return trip, nil
}

// Cancel voids a trip in any non-completed state and reverts the vehicle
// and driver if they are still flagged as on this trip.
func (s *TripService) Cancel(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, vehicle, driver, err := s.loadTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Status == model.TripCompleted {
		return nil, fmt.Errorf("%w: completed trips cannot be cancelled", ErrInvalidTransition)
	}

	trip.Cancel(vehicle, driver)

	if err := s.trips.SaveTransition(ctx, trip, vehicle, driver); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) loadTrip(ctx context.Context, id uuid.UUID) (*model.Trip, *model.Vehicle, *model.Driver, error) {
	trip, err := s.trips.Get(ctx, id)
	if err != nil {
		return nil, nil, nil, asServiceError(err)
	}

	vehicle := trip.Vehicle
	driver := trip.Driver
	if vehicle == nil || driver == nil {
		vehicle, driver, err = s.loadParties(ctx, trip.VehicleID, trip.DriverID)
		if err != nil {
			return nil, nil, nil, err
		}
		trip.Vehicle = vehicle
		trip.Driver = driver
	}
	return trip, vehicle, driver, nil
}

func (s *TripService) loadParties(ctx context.Context, vehicleID, driverID uuid.UUID) (*model.Vehicle, *model.Driver, error) {
	vehicle, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, nil, asServiceError(err)
	}
	driver, err := s.drivers.Get(ctx, driverID)
	if err != nil {
		return nil, nil, asServiceError(err)
	}
	return vehicle, driver, nil
}

func validateTripFields(trip *model.Trip) error {
	var verr model.ValidationError

	if trip.Source == "" {
		verr.Add("source is required")
	}
	if trip.Destination == "" {
		verr.Add("destination is required")
	}
	if trip.CargoWeight < 0 {
		verr.Add("cargo weight cannot be negative")
	}
	if trip.Revenue < 0 {
		verr.Add("revenue cannot be negative")
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}
