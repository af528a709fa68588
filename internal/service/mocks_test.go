package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetflow/internal/model"
)

// In-memory store fakes. Behaviour is driven by fields so individual tests
// can set up exactly the slice of state they need.

type fakeVehicleStore struct {
	vehicles      map[uuid.UUID]*model.Vehicle
	listed        []model.Vehicle
	active        []model.Vehicle
	financials    map[uuid.UUID]model.VehicleFinancials
	financialsErr map[uuid.UUID]error
	statusCounts  []model.VehicleStatusCount
	activeFleet   int64
	onTrip        int64
	saved         []*model.Vehicle
}

func newFakeVehicleStore() *fakeVehicleStore {
	return &fakeVehicleStore{
		vehicles:      map[uuid.UUID]*model.Vehicle{},
		financials:    map[uuid.UUID]model.VehicleFinancials{},
		financialsErr: map[uuid.UUID]error{},
	}
}

func (f *fakeVehicleStore) add(v *model.Vehicle) *model.Vehicle {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.vehicles[v.ID] = v
	return v
}

func (f *fakeVehicleStore) List(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error) {
	return f.listed, nil
}

func (f *fakeVehicleStore) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeVehicleStore) GetWithLogs(ctx context.Context, id uuid.UUID, limit int) (*model.Vehicle, error) {
	return f.Get(ctx, id)
}

func (f *fakeVehicleStore) Create(ctx context.Context, v *model.Vehicle) error {
	f.add(v)
	return nil
}

func (f *fakeVehicleStore) Update(ctx context.Context, v *model.Vehicle) error {
	f.vehicles[v.ID] = v
	f.saved = append(f.saved, v)
	return nil
}

func (f *fakeVehicleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.vehicles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.vehicles, id)
	return nil
}

func (f *fakeVehicleStore) Financials(ctx context.Context, id uuid.UUID) (model.VehicleFinancials, error) {
	if err, ok := f.financialsErr[id]; ok {
		return model.VehicleFinancials{}, err
	}
	return f.financials[id], nil
}

func (f *fakeVehicleStore) CountActiveFleet(ctx context.Context) (int64, error) {
	return f.activeFleet, nil
}

func (f *fakeVehicleStore) CountOnTrip(ctx context.Context) (int64, error) {
	return f.onTrip, nil
}

func (f *fakeVehicleStore) CountByStatus(ctx context.Context) ([]model.VehicleStatusCount, error) {
	return f.statusCounts, nil
}

func (f *fakeVehicleStore) ListActive(ctx context.Context, limit int) ([]model.Vehicle, error) {
	if len(f.active) > limit {
		return f.active[:limit], nil
	}
	return f.active, nil
}

type fakeDriverStore struct {
	drivers  map[uuid.UUID]*model.Driver
	listed   []model.Driver
	top      []model.Driver
	stats    map[uuid.UUID]model.DriverStats
	statsErr map[uuid.UUID]error
}

func newFakeDriverStore() *fakeDriverStore {
	return &fakeDriverStore{
		drivers:  map[uuid.UUID]*model.Driver{},
		stats:    map[uuid.UUID]model.DriverStats{},
		statsErr: map[uuid.UUID]error{},
	}
}

func (f *fakeDriverStore) add(d *model.Driver) *model.Driver {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.drivers[d.ID] = d
	return d
}

func (f *fakeDriverStore) List(ctx context.Context, filter model.DriverFilter) ([]model.Driver, error) {
	return f.listed, nil
}

func (f *fakeDriverStore) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDriverStore) Create(ctx context.Context, d *model.Driver) error {
	f.add(d)
	return nil
}

func (f *fakeDriverStore) Update(ctx context.Context, d *model.Driver) error {
	f.drivers[d.ID] = d
	return nil
}

func (f *fakeDriverStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.drivers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.drivers, id)
	return nil
}

func (f *fakeDriverStore) TripCounts(ctx context.Context, id uuid.UUID) (model.DriverStats, error) {
	if err, ok := f.statsErr[id]; ok {
		return model.DriverStats{}, err
	}
	return f.stats[id], nil
}

func (f *fakeDriverStore) ListTop(ctx context.Context, limit int) ([]model.Driver, error) {
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

type transitionRecord struct {
	trip    *model.Trip
	vehicle *model.Vehicle
	driver  *model.Driver
}

type fakeTripStore struct {
	trips             map[uuid.UUID]*model.Trip
	listed            []model.Trip
	transitions       []transitionRecord
	transitionErr     error
	completedDistance float64
	revenueByBucket   func(rng model.DateRange) float64
}

func newFakeTripStore() *fakeTripStore {
	return &fakeTripStore{trips: map[uuid.UUID]*model.Trip{}}
}

func (f *fakeTripStore) add(t *model.Trip) *model.Trip {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.trips[t.ID] = t
	return t
}

func (f *fakeTripStore) List(ctx context.Context, filter model.TripFilter) ([]model.Trip, error) {
	return f.listed, nil
}

func (f *fakeTripStore) Get(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeTripStore) Create(ctx context.Context, t *model.Trip) error {
	f.add(t)
	return nil
}

func (f *fakeTripStore) Update(ctx context.Context, t *model.Trip) error {
	f.trips[t.ID] = t
	return nil
}

func (f *fakeTripStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.trips[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.trips, id)
	return nil
}

func (f *fakeTripStore) SaveTransition(ctx context.Context, trip *model.Trip, vehicle *model.Vehicle, driver *model.Driver) error {
	if f.transitionErr != nil {
		return f.transitionErr
	}
	f.transitions = append(f.transitions, transitionRecord{trip: trip, vehicle: vehicle, driver: driver})
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripStore) SumCompletedDistance(ctx context.Context, rng model.DateRange) (float64, error) {
	return f.completedDistance, nil
}

func (f *fakeTripStore) SumCompletedRevenue(ctx context.Context, rng model.DateRange) (float64, error) {
	if f.revenueByBucket == nil {
		return 0, nil
	}
	return f.revenueByBucket(rng), nil
}

type maintenanceSave struct {
	log     *model.MaintenanceLog
	vehicle *model.Vehicle
}

type fakeLedgerStore struct {
	maintenance     map[uuid.UUID]*model.MaintenanceLog
	otherOpen       bool
	saves           []maintenanceSave
	maintenanceCost float64
	fuelCost        float64
	fuelLiters      float64
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{maintenance: map[uuid.UUID]*model.MaintenanceLog{}}
}

func (f *fakeLedgerStore) ListMaintenance(ctx context.Context, filter model.MaintenanceFilter) ([]model.MaintenanceLog, error) {
	return nil, nil
}

func (f *fakeLedgerStore) GetMaintenance(ctx context.Context, id uuid.UUID) (*model.MaintenanceLog, error) {
	log, ok := f.maintenance[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return log, nil
}

func (f *fakeLedgerStore) HasOtherOpenMaintenance(ctx context.Context, vehicleID, excludeID uuid.UUID) (bool, error) {
	return f.otherOpen, nil
}

func (f *fakeLedgerStore) SaveMaintenance(ctx context.Context, log *model.MaintenanceLog, vehicle *model.Vehicle) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	f.maintenance[log.ID] = log
	f.saves = append(f.saves, maintenanceSave{log: log, vehicle: vehicle})
	return nil
}

func (f *fakeLedgerStore) SumCompletedMaintenanceCost(ctx context.Context, rng model.DateRange) (float64, error) {
	return f.maintenanceCost, nil
}

func (f *fakeLedgerStore) ListFuel(ctx context.Context, filter model.FuelFilter) ([]model.FuelLog, error) {
	return nil, nil
}

func (f *fakeLedgerStore) CreateFuel(ctx context.Context, log *model.FuelLog) error {
	return nil
}

func (f *fakeLedgerStore) SumFuelLiters(ctx context.Context, rng model.DateRange) (float64, error) {
	return f.fuelLiters, nil
}

func (f *fakeLedgerStore) SumFuelCost(ctx context.Context, rng model.DateRange) (float64, error) {
	return f.fuelCost, nil
}

func (f *fakeLedgerStore) ListExpenses(ctx context.Context, filter model.ExpenseFilter) ([]model.Expense, error) {
	return nil, nil
}

func (f *fakeLedgerStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	return nil
}
