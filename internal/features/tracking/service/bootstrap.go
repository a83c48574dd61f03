package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment-tracker/internal/core/logger"
	shipdomain "shipment-tracker/internal/features/shipments/domain"
	shipports "shipment-tracker/internal/features/shipments/ports"
	"shipment-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// DemoBootstrapper ensures the demonstration record exists in the record store.
// The existence check and the insert are separate calls, so two processes can
// race; the stores reject the second insert on the unique consignment number.
type DemoBootstrapper struct {
	store  shipports.RecordStore
	demoNo string
	now    func() time.Time
}

// NewDemoBootstrapper creates a DemoBootstrapper for demoNo.
func NewDemoBootstrapper(store shipports.RecordStore, demoNo string) *DemoBootstrapper {
	return &DemoBootstrapper{
		store:  store,
		demoNo: shipdomain.NormalizeConsignmentNo(demoNo),
		now:    time.Now,
	}
}

// DemoConsignmentNo returns the reserved demo number.
func (b *DemoBootstrapper) DemoConsignmentNo() string {
	return b.demoNo
}

// Exists reports whether the demo record is stored.
func (b *DemoBootstrapper) Exists(ctx context.Context) (bool, error) {
	record, err := b.store.FindByConsignmentNo(ctx, b.demoNo)
	if err != nil {
		return false, fmt.Errorf("failed to check demo record: %w", err)
	}
	return record != nil, nil
}

// Ensure inserts the demo record unless it already exists.
// It returns the record ID and whether this call created it.
func (b *DemoBootstrapper) Ensure(ctx context.Context) (string, bool, error) {
	existing, err := b.store.FindByConsignmentNo(ctx, b.demoNo)
	if err != nil {
		return "", false, fmt.Errorf("failed to check demo record: %w", err)
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	id, err := b.store.Insert(ctx, domain.NewDemoRecord(b.demoNo, b.now().UTC()))
	if err != nil {
		if errors.Is(err, shipports.ErrAlreadyExists) {
			return b.lookupID(ctx)
		}
		return "", false, fmt.Errorf("failed to insert demo record: %w", err)
	}

	logger.Get().Info("Demo record created",
		zap.String("consignment_no", b.demoNo),
		zap.String("id", id),
	)
	return id, true, nil
}

// lookupID resolves the ID of a demo record that a concurrent writer inserted first.
func (b *DemoBootstrapper) lookupID(ctx context.Context) (string, bool, error) {
	existing, err := b.store.FindByConsignmentNo(ctx, b.demoNo)
	if err != nil {
		return "", false, fmt.Errorf("failed to check demo record: %w", err)
	}
	if existing == nil {
		return "", false, nil
	}
	return existing.ID, false, nil
}

// EnsureDemoRecord implements ports.Bootstrapper. Failures are logged and swallowed.
func (b *DemoBootstrapper) EnsureDemoRecord(ctx context.Context) {
	if _, _, err := b.Ensure(ctx); err != nil {
		logger.Get().Error("Demo bootstrap failed",
			zap.String("consignment_no", b.demoNo),
			zap.Error(err),
		)
	}
}
