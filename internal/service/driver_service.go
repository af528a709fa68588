package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetflow/internal/model"
)

type DriverService struct {
	drivers DriverStore
	now     Clock
}

func NewDriverService(drivers DriverStore, now Clock) *DriverService {
	if now == nil {
		now = time.Now
	}
	return &DriverService{drivers: drivers, now: now}
}

// DriverPerformance is the per-driver metric payload.
type DriverPerformance struct {
	Driver         model.Driver `json:"driver"`
	LicenseValid   bool         `json:"license_valid"`
	TotalTrips     int64        `json:"total_trips"`
	CompletedTrips int64        `json:"completed_trips"`
	CompletionRate float64      `json:"completion_rate"`
	SafetyScore    float64      `json:"safety_score"`
}

func (s *DriverService) List(ctx context.Context, filter model.DriverFilter) ([]model.Driver, error) {
	return s.drivers.List(ctx, filter)
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.drivers.Get(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return driver, nil
}

func (s *DriverService) Create(ctx context.Context, driver *model.Driver) error {
	if err := validateDriver(driver); err != nil {
		return err
	}
	if driver.Status == "" {
		driver.Status = model.DriverOffDuty
	}
	return s.drivers.Create(ctx, driver)
}

func (s *DriverService) Update(ctx context.Context, driver *model.Driver) error {
	if err := validateDriver(driver); err != nil {
		return err
	}
	if _, err := s.drivers.Get(ctx, driver.ID); err != nil {
		return asServiceError(err)
	}
	return s.drivers.Update(ctx, driver)
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	return asServiceError(s.drivers.Delete(ctx, id))
}

func (s *DriverService) Performance(ctx context.Context, id uuid.UUID) (*DriverPerformance, error) {
	driver, err := s.drivers.Get(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	stats, err := s.drivers.TripCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DriverPerformance{
		Driver:         *driver,
		LicenseValid:   driver.IsLicenseValid(s.now()),
		TotalTrips:     stats.TotalTrips,
		CompletedTrips: stats.CompletedTrips,
		CompletionRate: stats.CompletionRate(),
		SafetyScore:    stats.SafetyScore(),
	}, nil
}

func validateDriver(driver *model.Driver) error {
	var verr model.ValidationError

	if driver.Name == "" {
		verr.Add("name is required")
	}
	if driver.LicenseNumber == "" {
		verr.Add("license number is required")
	}
	switch driver.LicenseCategory {
	case model.LicenseCategoryA, model.LicenseCategoryB, model.LicenseCategoryC, model.LicenseCategoryD:
	default:
		verr.Add(fmt.Sprintf("unknown license category %q", driver.LicenseCategory))
	}
	if driver.LicenseExpiry.IsZero() {
		verr.Add("license expiry is required")
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}
