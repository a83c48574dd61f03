package service

import (
	"context"

	"shipment-tracker/internal/core/logger"
	shipports "shipment-tracker/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// DemoSeeder runs the demo data check used at startup and on schedule.
type DemoSeeder struct {
	store        shipports.RecordStore
	bootstrapper *DemoBootstrapper
}

// NewDemoSeeder creates a DemoSeeder.
func NewDemoSeeder(store shipports.RecordStore, bootstrapper *DemoBootstrapper) *DemoSeeder {
	return &DemoSeeder{store: store, bootstrapper: bootstrapper}
}

// Run reports the stored record count and ensures the demo record exists.
func (s *DemoSeeder) Run(ctx context.Context) error {
	count, err := s.store.CountAll(ctx)
	if err != nil {
		logger.Get().Warn("Failed to count shipment records", zap.Error(err))
	} else {
		logger.Get().Info("Shipment records in store", zap.Int64("count", count))
	}

	id, created, err := s.bootstrapper.Ensure(ctx)
	if err != nil {
		return err
	}

	logger.Get().Info("Demo data checked",
		zap.String("consignment_no", s.bootstrapper.DemoConsignmentNo()),
		zap.String("id", id),
		zap.Bool("created", created),
	)
	return nil
}

// Name implements scheduler.Job.
func (s *DemoSeeder) Name() string { return "demo-seeder" }
