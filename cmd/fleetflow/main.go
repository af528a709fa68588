package main

import (
	"fmt"
	"os"
	"time"

	"fleetflow/internal/auth"
	"fleetflow/internal/config"
	"fleetflow/internal/db"
	httphandler "fleetflow/internal/http"
	"fleetflow/internal/http/middleware"
	"fleetflow/internal/logger"
	"fleetflow/internal/repository"
	"fleetflow/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	tripRepo := repository.NewTripRepository(database)
	ledgerRepo := repository.NewLedgerRepository(database)

	clock := service.Clock(time.Now)
	vehicleService := service.NewVehicleService(vehicleRepo)
	driverService := service.NewDriverService(driverRepo, clock)
	tripService := service.NewTripService(tripRepo, vehicleRepo, driverRepo, clock)
	ledgerService := service.NewLedgerService(ledgerRepo, vehicleRepo)
	analyticsService := service.NewAnalyticsService(
		vehicleRepo, driverRepo, tripRepo, ledgerRepo,
		cfg.Analytics.DefaultRangeDays, cfg.Analytics.MaxRangeDays,
		clock, appLogger,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(vehicleService, driverService, tripService, ledgerService, analyticsService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleetflow service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
