package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-tracker/internal/core/cache"
	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/database"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/scheduler"
	"shipment-tracker/internal/core/server"
	shipadapter "shipment-tracker/internal/features/shipments/adapters"
	shiphandler "shipment-tracker/internal/features/shipments/handler"
	shipports "shipment-tracker/internal/features/shipments/ports"
	shipservice "shipment-tracker/internal/features/shipments/service"
	trackingadapter "shipment-tracker/internal/features/tracking/adapters"
	trackinghandler "shipment-tracker/internal/features/tracking/handler"
	"shipment-tracker/internal/features/tracking/ports"
	trackingservice "shipment-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// seedTimeout bounds one run of the demo seeder.
const seedTimeout = 30 * time.Second

// @title Shipment Tracker API
// @version 1.0
// @description This API resolves consignment numbers into a shipment summary and a four-step tracking timeline.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel, logger.WithFile(cfg.LogFile)); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("store_driver", cfg.Store.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Record Store
	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		l.Fatal("Record store unavailable", zap.Error(err))
	}
	defer closeStore()

	location, err := time.LoadLocation(cfg.Tracking.Timezone)
	if err != nil {
		l.Fatal("Invalid tracking timezone", zap.String("timezone", cfg.Tracking.Timezone), zap.Error(err))
	}

	// Initialize Shipment Service & Handler
	shipmentSvc := shipservice.NewShipmentService(store)
	shipmentHdl := shiphandler.NewShipmentHandler(shipmentSvc)

	// Initialize Tracking Strategies
	demoBootstrapper := trackingservice.NewDemoBootstrapper(store, cfg.Tracking.DemoConsignmentNo)

	var lookups []ports.Strategy
	var bootstrapper ports.Bootstrapper = demoBootstrapper

	if cfg.Functions.URL != "" {
		functionsClient := trackingadapter.NewFunctionsClient(
			cfg.Functions.URL,
			cfg.Functions.Key,
			time.Duration(cfg.Functions.TimeoutSeconds)*time.Second,
		)
		lookups = append(lookups, trackingservice.NewRemoteStrategy(functionsClient))
		bootstrapper = trackingadapter.NewRemoteBootstrapper(functionsClient, cfg.Tracking.DemoConsignmentNo)
		l.Info("Remote lookup functions enabled", zap.String("url", cfg.Functions.URL))
	}
	lookups = append(lookups, trackingservice.NewStoreStrategy(store))

	// Initialize Tracking Service & Handlers
	trackingSvc := trackingservice.NewTrackingService(lookups, bootstrapper, trackingservice.Options{
		DemoConsignmentNo: cfg.Tracking.DemoConsignmentNo,
		RetryDelay:        time.Duration(cfg.Tracking.RetryDelayMs) * time.Millisecond,
		Location:          location,
		DemoFallback:      cfg.Tracking.DemoFallback,
	})
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)
	functionsHdl := trackinghandler.NewFunctionsHandler(store, demoBootstrapper)

	// Demo Seeder
	seeder := trackingservice.NewDemoSeeder(store, demoBootstrapper)
	jobs := scheduler.New(seedTimeout)
	if cfg.Seeder.OnStart {
		jobs.RunOnce(seeder)
	}
	if err := jobs.Add(cfg.Seeder.Schedule, seeder); err != nil {
		l.Fatal("Invalid demo seed schedule", zap.Error(err))
	}
	jobs.Start()
	defer jobs.Stop()

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/shipments", shipmentHdl.CreateShipment)
	srv.App.Patch("/shipments/:number/status", shipmentHdl.UpdateStatus)
	trackingHdl.Register(srv.App)
	functionsHdl.Register(srv.App)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("Server failed", zap.Error(err))
		}
	case <-ctx.Done():
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}
}

// openStore connects the configured record store and returns its cleanup func.
func openStore(ctx context.Context, cfg config.StoreConfig) (shipports.RecordStore, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverPostgres:
		pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return shipadapter.NewPostgresRecordStore(pool), pool.Close, nil

	case config.StoreDriverRedis:
		redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisCache.Ping(pingCtx); err != nil {
			redisCache.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return shipadapter.NewRedisRecordStore(redisCache), func() { redisCache.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unsupported STORE_DRIVER: %q", cfg.Driver)
}
