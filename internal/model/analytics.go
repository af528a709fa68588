package model

import (
	"time"

	"github.com/google/uuid"
)

type DashboardMetrics struct {
	FleetUtilization float64           `json:"fleet_utilization"`
	FuelEfficiency   float64           `json:"fuel_efficiency"`
	CostPerKm        float64           `json:"cost_per_km"`
	TotalCost        float64           `json:"total_cost"`
	TotalDistance    float64           `json:"total_distance"`
	VehicleROIChart  []VehicleROIEntry `json:"vehicle_roi_chart"`
	VehicleROITable  []VehicleROIEntry `json:"vehicle_roi_table"`
	DriverRanking    []DriverPerfEntry `json:"driver_ranking"`
	MonthlyRevenue   []MonthlyRevenue  `json:"monthly_revenue"`
	GeneratedFor     DateRange         `json:"generated_for"`
}

type VehicleROIEntry struct {
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	ROI         float64   `json:"roi"`
	Revenue     float64   `json:"revenue"`
	Costs       float64   `json:"costs"`
}

type DriverPerfEntry struct {
	DriverID       uuid.UUID `json:"driver_id"`
	DriverName     string    `json:"driver_name"`
	TotalTrips     int64     `json:"total_trips"`
	CompletionRate float64   `json:"completion_rate"`
	SafetyScore    float64   `json:"safety_score"`
}

// MonthlyRevenue is one trailing revenue bucket. Buckets are fixed 30-day
// windows rather than true calendar months; downstream consumers already
// accept the approximation.
type MonthlyRevenue struct {
	Month       string    `json:"month"`
	BucketStart time.Time `json:"bucket_start"`
	Revenue     float64   `json:"revenue"`
}

type VehicleStatusCount struct {
	Status VehicleStatus `json:"status"`
	Count  int64         `json:"count"`
}

// ExportRow is one line of the bulk vehicle export, shared by the CSV and
// PDF renderers.
type ExportRow struct {
	VehicleName string        `json:"vehicle_name"`
	VehicleType VehicleType   `json:"vehicle_type"`
	Status      VehicleStatus `json:"status"`
	Revenue     float64       `json:"revenue"`
	Costs       float64       `json:"costs"`
	ROI         float64       `json:"roi"`
}
