package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shipment-tracker/internal/core/logger"
	shipdomain "shipment-tracker/internal/features/shipments/domain"
	shipports "shipment-tracker/internal/features/shipments/ports"
	"shipment-tracker/internal/features/tracking/domain"
	"shipment-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// RemoteStrategy resolves records through the privileged public-tracking function.
type RemoteStrategy struct {
	invoker ports.FunctionInvoker
}

// NewRemoteStrategy creates a RemoteStrategy.
func NewRemoteStrategy(invoker ports.FunctionInvoker) *RemoteStrategy {
	return &RemoteStrategy{invoker: invoker}
}

// Name implements ports.Strategy.
func (s *RemoteStrategy) Name() string { return "remote-function" }

// Lookup implements ports.Strategy.
func (s *RemoteStrategy) Lookup(ctx context.Context, consignmentNo string) (*shipdomain.ShipmentRecord, error) {
	data, err := s.invoker.Invoke(ctx, domain.FunctionPublicTracking, domain.PublicTrackingRequest{
		TrackingNumber: consignmentNo,
	})
	if err != nil {
		return nil, err
	}

	var resp domain.PublicTrackingResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", domain.FunctionPublicTracking, err)
	}

	return resp.Invoice, nil
}

// StoreStrategy queries the record store directly.
type StoreStrategy struct {
	store shipports.RecordStore
}

// NewStoreStrategy creates a StoreStrategy.
func NewStoreStrategy(store shipports.RecordStore) *StoreStrategy {
	return &StoreStrategy{store: store}
}

// Name implements ports.Strategy.
func (s *StoreStrategy) Name() string { return "record-store" }

// Lookup implements ports.Strategy.
func (s *StoreStrategy) Lookup(ctx context.Context, consignmentNo string) (*shipdomain.ShipmentRecord, error) {
	return s.store.FindByConsignmentNo(ctx, consignmentNo)
}

// DemoStrategy synthesizes the demonstration record without any I/O.
type DemoStrategy struct {
	demoNo string
	now    func() time.Time
}

// NewDemoStrategy creates a DemoStrategy answering only for demoNo.
func NewDemoStrategy(demoNo string) *DemoStrategy {
	return &DemoStrategy{demoNo: demoNo, now: time.Now}
}

// Name implements ports.Strategy.
func (s *DemoStrategy) Name() string { return "demo-fallback" }

// Lookup implements ports.Strategy.
func (s *DemoStrategy) Lookup(_ context.Context, consignmentNo string) (*shipdomain.ShipmentRecord, error) {
	if consignmentNo != s.demoNo {
		return nil, nil
	}
	return domain.SynthesizeDemoRecord(s.demoNo, s.now().UTC()), nil
}

// firstSuccess runs strategies in order and stops at the first record found.
// A failing strategy is logged and skipped.
func firstSuccess(ctx context.Context, strategies []ports.Strategy, consignmentNo string) (*shipdomain.ShipmentRecord, string) {
	for _, strategy := range strategies {
		if ctx.Err() != nil {
			return nil, ""
		}

		record, err := strategy.Lookup(ctx, consignmentNo)
		if err != nil {
			logger.Get().Warn("Tracking strategy failed, falling through",
				zap.String("strategy", strategy.Name()),
				zap.String("consignment_no", consignmentNo),
				zap.Error(fmt.Errorf("strategy %s: %w", strategy.Name(), err)),
			)
			continue
		}
		if record != nil {
			return record, strategy.Name()
		}
	}
	return nil, ""
}
