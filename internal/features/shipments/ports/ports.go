package ports

import (
	"context"
	"errors"

	"shipment-tracker/internal/features/shipments/domain"
)

var (
	// ErrAlreadyExists is returned by Insert when the consignment number is taken.
	ErrAlreadyExists = errors.New("shipment already exists")
	// ErrNotFound is returned by UpdateStatus when no record matches.
	ErrNotFound = errors.New("shipment not found")
)

// RecordStore is the secondary port for shipment persistence.
type RecordStore interface {
	// FindByConsignmentNo returns the matching record, or nil and no error when absent.
	FindByConsignmentNo(ctx context.Context, consignmentNo string) (*domain.ShipmentRecord, error)
	// Insert stores a new record and returns its assigned ID.
	Insert(ctx context.Context, record *domain.ShipmentRecord) (string, error)
	// UpdateStatus changes the status of an existing record.
	UpdateStatus(ctx context.Context, consignmentNo string, status domain.Status) error
	// CountAll returns the number of stored records.
	CountAll(ctx context.Context) (int64, error)
}

// ShipmentService defines the primary port for record management.
type ShipmentService interface {
	Create(ctx context.Context, record *domain.ShipmentRecord) (*domain.ShipmentRecord, error)
	UpdateStatus(ctx context.Context, consignmentNo string, status domain.Status) error
}
