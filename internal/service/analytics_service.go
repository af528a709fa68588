package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"fleetflow/internal/model"
)

const (
	rankingPoolSize   = 10
	chartEntryLimit   = 5
	tableEntryLimit   = 10
	revenueBuckets    = 6
	revenueBucketDays = 30
)

type AnalyticsService struct {
	vehicles     VehicleStore
	drivers      DriverStore
	trips        TripStore
	ledger       LedgerStore
	defaultRange int
	maxRange     int
	now          Clock
	log          zerolog.Logger
}

func NewAnalyticsService(vehicles VehicleStore, drivers DriverStore, trips TripStore, ledger LedgerStore, defaultRange, maxRange int, now Clock, log zerolog.Logger) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		vehicles:     vehicles,
		drivers:      drivers,
		trips:        trips,
		ledger:       ledger,
		defaultRange: defaultRange,
		maxRange:     maxRange,
		now:          now,
		log:          log,
	}
}

// Dashboard computes the aggregate fleet metrics over a trailing window of
// `days` days (service default when zero).
func (s *AnalyticsService) Dashboard(ctx context.Context, days int) (*model.DashboardMetrics, error) {
	now := s.now()
	rng := model.TrailingWindow(now, days, s.defaultRange, s.maxRange)

	activeFleet, err := s.vehicles.CountActiveFleet(ctx)
	if err != nil {
		return nil, err
	}
	onTrip, err := s.vehicles.CountOnTrip(ctx)
	if err != nil {
		return nil, err
	}
	utilization := 0.0
	if activeFleet > 0 {
		utilization = float64(onTrip) / float64(activeFleet) * 100
	}

	totalDistance, err := s.trips.SumCompletedDistance(ctx, rng)
	if err != nil {
		return nil, err
	}
	totalLiters, err := s.ledger.SumFuelLiters(ctx, rng)
	if err != nil {
		return nil, err
	}
	fuelEfficiency := 0.0
	if totalLiters > 0 {
		fuelEfficiency = totalDistance / totalLiters
	}

	maintenanceCost, err := s.ledger.SumCompletedMaintenanceCost(ctx, rng)
	if err != nil {
		return nil, err
	}
	fuelCost, err := s.ledger.SumFuelCost(ctx, rng)
	if err != nil {
		return nil, err
	}
	totalCost := maintenanceCost + fuelCost
	costPerKm := 0.0
	if totalDistance > 0 {
		costPerKm = totalCost / totalDistance
	}

	roiEntries := s.vehicleROIRanking(ctx)
	driverRanking := s.driverRanking(ctx)

	monthly, err := s.monthlyRevenue(ctx, now)
	if err != nil {
		return nil, err
	}

	return &model.DashboardMetrics{
		FleetUtilization: round1(utilization),
		FuelEfficiency:   round2(fuelEfficiency),
		CostPerKm:        round2(costPerKm),
		TotalCost:        round2(totalCost),
		TotalDistance:    round2(totalDistance),
		VehicleROIChart:  takeROI(roiEntries, chartEntryLimit),
		VehicleROITable:  takeROI(roiEntries, tableEntryLimit),
		DriverRanking:    driverRanking,
		MonthlyRevenue:   monthly,
		GeneratedFor:     rng,
	}, nil
}

// ChartData serves the chart feed. Unrecognised types are an explicit
// caller error, not an empty payload.
func (s *AnalyticsService) ChartData(ctx context.Context, chartType string) (interface{}, error) {
	switch chartType {
	case "vehicle_status":
		return s.vehicles.CountByStatus(ctx)
	case "monthly_revenue":
		return s.monthlyRevenue(ctx, s.now())
	default:
		return nil, ErrInvalidChartType
	}
}

// ExportRows assembles the bulk export: every vehicle, unfiltered, with
// lifetime revenue, costs and ROI.
func (s *AnalyticsService) ExportRows(ctx context.Context) ([]model.ExportRow, error) {
	vehicles, err := s.vehicles.List(ctx, model.VehicleFilter{})
	if err != nil {
		return nil, err
	}

	rows := make([]model.ExportRow, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		financials, err := s.vehicles.Financials(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.ExportRow{
			VehicleName: v.Name,
			VehicleType: v.VehicleType,
			Status:      v.Status,
			Revenue:     financials.TotalRevenue,
			Costs:       financials.TotalCosts(),
			ROI:         round2(v.ROI(financials)),
		})
	}
	return rows, nil
}

// vehicleROIRanking ranks the first 10 active vehicles by ROI. A vehicle
// whose totals cannot be computed is skipped so one bad record never
// sinks the whole report.
func (s *AnalyticsService) vehicleROIRanking(ctx context.Context) []model.VehicleROIEntry {
	vehicles, err := s.vehicles.ListActive(ctx, rankingPoolSize)
	if err != nil {
		s.log.Error().Err(err).Msg("vehicle roi ranking: listing vehicles")
		return nil
	}

	entries := make([]model.VehicleROIEntry, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		financials, err := s.vehicles.Financials(ctx, v.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("vehicle", v.Name).Msg("vehicle roi ranking: skipping vehicle")
			continue
		}
		entries = append(entries, model.VehicleROIEntry{
			VehicleID:   v.ID,
			VehicleName: v.Name,
			ROI:         round2(v.ROI(financials)),
			Revenue:     financials.TotalRevenue,
			Costs:       financials.TotalCosts(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ROI > entries[j].ROI
	})
	return entries
}

// driverRanking ranks the first 10 drivers by safety score with the same
// skip-on-error policy as the vehicle ranking.
func (s *AnalyticsService) driverRanking(ctx context.Context) []model.DriverPerfEntry {
	drivers, err := s.drivers.ListTop(ctx, rankingPoolSize)
	if err != nil {
		s.log.Error().Err(err).Msg("driver ranking: listing drivers")
		return nil
	}

	entries := make([]model.DriverPerfEntry, 0, len(drivers))
	for i := range drivers {
		d := &drivers[i]
		stats, err := s.drivers.TripCounts(ctx, d.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("driver", d.Name).Msg("driver ranking: skipping driver")
			continue
		}
		entries = append(entries, model.DriverPerfEntry{
			DriverID:       d.ID,
			DriverName:     d.Name,
			TotalTrips:     stats.TotalTrips,
			CompletionRate: round1(stats.CompletionRate()),
			SafetyScore:    round1(stats.SafetyScore()),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SafetyScore > entries[j].SafetyScore
	})
	if len(entries) > tableEntryLimit {
		entries = entries[:tableEntryLimit]
	}
	return entries
}

// monthlyRevenue sums completed-trip revenue over the trailing six fixed
// 30-day buckets, oldest first. The buckets deliberately approximate
// calendar months.
func (s *AnalyticsService) monthlyRevenue(ctx context.Context, now time.Time) ([]model.MonthlyRevenue, error) {
	buckets := make([]model.MonthlyRevenue, 0, revenueBuckets)
	for i := revenueBuckets; i > 0; i-- {
		start := now.AddDate(0, 0, -revenueBucketDays*i)
		end := now.AddDate(0, 0, -revenueBucketDays*(i-1))

		revenue, err := s.trips.SumCompletedRevenue(ctx, model.DateRange{From: start, To: end})
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, model.MonthlyRevenue{
			Month:       start.Format("Jan"),
			BucketStart: start,
			Revenue:     revenue,
		})
	}
	return buckets, nil
}

func takeROI(entries []model.VehicleROIEntry, limit int) []model.VehicleROIEntry {
	if len(entries) <= limit {
		return entries
	}
	return entries[:limit]
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
