package service

import (
	"context"
	"fmt"

	"fleetflow/internal/model"
)

type LedgerService struct {
	ledger   LedgerStore
	vehicles VehicleStore
}

func NewLedgerService(ledger LedgerStore, vehicles VehicleStore) *LedgerService {
	return &LedgerService{ledger: ledger, vehicles: vehicles}
}

func (s *LedgerService) ListMaintenance(ctx context.Context, filter model.MaintenanceFilter) ([]model.MaintenanceLog, error) {
	return s.ledger.ListMaintenance(ctx, filter)
}

// SaveMaintenance persists a maintenance log, new or updated, and applies
// the vehicle-status derivation that every maintenance save carries: an
// open log forces the vehicle into the shop, a completed log releases it
// unless another open log still holds it there.
func (s *LedgerService) SaveMaintenance(ctx context.Context, log *model.MaintenanceLog) error {
	if err := validateMaintenance(log); err != nil {
		return err
	}

	vehicle, err := s.vehicles.Get(ctx, log.VehicleID)
	if err != nil {
		return asServiceError(err)
	}

	otherOpen := false
	if !log.Status.IsOpen() {
		otherOpen, err = s.ledger.HasOtherOpenMaintenance(ctx, log.VehicleID, log.ID)
		if err != nil {
			return err
		}
	}

	if status, changed := model.DeriveVehicleStatusAfterMaintenance(log.Status, otherOpen); changed {
		vehicle.Status = status
	} else {
		vehicle = nil
	}

	return s.ledger.SaveMaintenance(ctx, log, vehicle)
}

// UpdateMaintenance reruns the full save path, including the vehicle
// status derivation, for an existing log.
func (s *LedgerService) UpdateMaintenance(ctx context.Context, log *model.MaintenanceLog) error {
	existing, err := s.ledger.GetMaintenance(ctx, log.ID)
	if err != nil {
		return asServiceError(err)
	}
	// Save writes every column; keep the stored creation time.
	log.CreatedAt = existing.CreatedAt
	return s.SaveMaintenance(ctx, log)
}

func (s *LedgerService) ListFuel(ctx context.Context, filter model.FuelFilter) ([]model.FuelLog, error) {
	return s.ledger.ListFuel(ctx, filter)
}

func (s *LedgerService) CreateFuel(ctx context.Context, log *model.FuelLog) error {
	var verr model.ValidationError
	if log.Liters < 0 {
		verr.Add("liters cannot be negative")
	}
	if log.FuelCost < 0 {
		verr.Add("fuel cost cannot be negative")
	}
	if log.OdometerReading < 0 {
		verr.Add("odometer reading cannot be negative")
	}
	if log.Date.IsZero() {
		verr.Add("date is required")
	}
	if verr.HasErrors() {
		return &verr
	}

	if _, err := s.vehicles.Get(ctx, log.VehicleID); err != nil {
		return asServiceError(err)
	}
	return s.ledger.CreateFuel(ctx, log)
}

func (s *LedgerService) ListExpenses(ctx context.Context, filter model.ExpenseFilter) ([]model.Expense, error) {
	return s.ledger.ListExpenses(ctx, filter)
}

func (s *LedgerService) CreateExpense(ctx context.Context, expense *model.Expense) error {
	var verr model.ValidationError
	if expense.Amount < 0 {
		verr.Add("amount cannot be negative")
	}
	if expense.Date.IsZero() {
		verr.Add("date is required")
	}
	switch expense.ExpenseType {
	case model.ExpenseFuel, model.ExpenseMaintenance, model.ExpenseInsurance,
		model.ExpenseRegistration, model.ExpenseParking, model.ExpenseTolls, model.ExpenseOther:
	default:
		verr.Add(fmt.Sprintf("unknown expense type %q", expense.ExpenseType))
	}
	if verr.HasErrors() {
		return &verr
	}

	if _, err := s.vehicles.Get(ctx, expense.VehicleID); err != nil {
		return asServiceError(err)
	}
	return s.ledger.CreateExpense(ctx, expense)
}

func validateMaintenance(log *model.MaintenanceLog) error {
	var verr model.ValidationError

	if log.Cost < 0 {
		verr.Add("cost cannot be negative")
	}
	if log.Date.IsZero() {
		verr.Add("date is required")
	}
	switch log.ServiceType {
	case model.ServiceOilChange, model.ServiceTireReplacement, model.ServiceBrakeService,
		model.ServiceEngineRepair, model.ServiceBodyWork, model.ServiceInspection, model.ServiceOther:
	default:
		verr.Add(fmt.Sprintf("unknown service type %q", log.ServiceType))
	}
	switch log.Status {
	case model.MaintenancePending, model.MaintenanceInProgress, model.MaintenanceCompleted:
	default:
		verr.Add(fmt.Sprintf("unknown maintenance status %q", log.Status))
	}

	if verr.HasErrors() {
		return &verr
	}
	return nil
}
