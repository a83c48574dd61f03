package ports

import (
	"context"
	"encoding/json"

	shipdomain "shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/tracking/domain"
)

// Strategy is one way of resolving a shipment record by consignment number.
// Lookup returns (nil, nil) on a miss and a non-nil error only when the
// strategy itself failed.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// Lookup resolves the record for an already trimmed consignment number.
	Lookup(ctx context.Context, consignmentNo string) (*shipdomain.ShipmentRecord, error)
}

// FunctionInvoker calls a named privileged function with a JSON payload.
type FunctionInvoker interface {
	Invoke(ctx context.Context, functionName string, payload any) (json.RawMessage, error)
}

// Bootstrapper makes sure the demonstration record exists.
// Implementations are best-effort and never fail the caller.
type Bootstrapper interface {
	EnsureDemoRecord(ctx context.Context)
}

// TrackingService defines the primary port for tracking resolution.
type TrackingService interface {
	Resolve(ctx context.Context, trackingNumber string) (*domain.Tracking, error)
	DemoConsignmentNo(ctx context.Context) string
}

// DemoRecords manages the stored demonstration record.
type DemoRecords interface {
	DemoConsignmentNo() string
	Exists(ctx context.Context) (bool, error)
	Ensure(ctx context.Context) (id string, created bool, err error)
}
