package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// maxGenerateAttempts bounds how often a generated consignment number is retried on collision.
const maxGenerateAttempts = 3

// ShipmentServiceImpl implements ports.ShipmentService.
type ShipmentServiceImpl struct {
	store ports.RecordStore
	now   func() time.Time
}

// NewShipmentService creates a new ShipmentServiceImpl.
func NewShipmentService(store ports.RecordStore) *ShipmentServiceImpl {
	return &ShipmentServiceImpl{
		store: store,
		now:   time.Now,
	}
}

// Create validates and stores a record, generating an MT-YYYYMM### number when none is given.
func (s *ShipmentServiceImpl) Create(ctx context.Context, record *domain.ShipmentRecord) (*domain.ShipmentRecord, error) {
	rec := *record
	rec.ConsignmentNo = domain.NormalizeConsignmentNo(rec.ConsignmentNo)
	if strings.TrimSpace(string(rec.Status)) == "" {
		rec.Status = domain.StatusPending
	}
	status, err := domain.ParseStatus(string(rec.Status))
	if err != nil {
		return nil, err
	}
	rec.Status = status
	rec.CreatedAt = s.now().UTC()
	rec.UpdatedAt = rec.CreatedAt

	generated := rec.ConsignmentNo == ""
	attempts := 1
	if generated {
		attempts = maxGenerateAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if generated {
			rec.ConsignmentNo = domain.NewConsignmentNo(rec.CreatedAt)
		}

		if err := rec.Validate(); err != nil {
			return nil, err
		}

		id, err := s.store.Insert(ctx, &rec)
		if err == nil {
			rec.ID = id
			logger.Get().Info("Shipment created",
				zap.String("consignment_no", rec.ConsignmentNo),
				zap.String("status", string(rec.Status)),
			)
			return &rec, nil
		}

		if !errors.Is(err, ports.ErrAlreadyExists) {
			return nil, fmt.Errorf("service: failed to create shipment: %w", err)
		}
		if !generated {
			return nil, err
		}

		logger.Get().Debug("Generated consignment number collided",
			zap.String("consignment_no", rec.ConsignmentNo),
			zap.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("service: could not generate a unique consignment number: %w", ports.ErrAlreadyExists)
}

// UpdateStatus moves a shipment to a new status.
func (s *ShipmentServiceImpl) UpdateStatus(ctx context.Context, consignmentNo string, status domain.Status) error {
	status, err := domain.ParseStatus(string(status))
	if err != nil {
		return err
	}

	no := domain.NormalizeConsignmentNo(consignmentNo)
	if err := s.store.UpdateStatus(ctx, no, status); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return err
		}
		return fmt.Errorf("service: failed to update status: %w", err)
	}

	logger.Get().Info("Shipment status updated",
		zap.String("consignment_no", no),
		zap.String("status", string(status)),
	)
	return nil
}
