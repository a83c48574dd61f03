package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipment-tracker/internal/core/cache"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"

	"github.com/google/uuid"
)

const shipmentKeyPrefix = "shipment:"

// RedisRecordStore implements ports.RecordStore on top of the cache port.
// Each record is a JSON document keyed by its consignment number.
type RedisRecordStore struct {
	cache cache.Cache
	now   func() time.Time
}

// NewRedisRecordStore creates a new RedisRecordStore.
func NewRedisRecordStore(c cache.Cache) *RedisRecordStore {
	return &RedisRecordStore{
		cache: c,
		now:   time.Now,
	}
}

func shipmentKey(consignmentNo string) string {
	return shipmentKeyPrefix + consignmentNo
}

// FindByConsignmentNo loads a record, returning nil when the key is absent.
func (s *RedisRecordStore) FindByConsignmentNo(ctx context.Context, consignmentNo string) (*domain.ShipmentRecord, error) {
	data, err := s.cache.Get(ctx, shipmentKey(consignmentNo))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shipment from redis: %w", err)
	}

	var record domain.ShipmentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipment: %w", err)
	}

	return &record, nil
}

// Insert stores the record with SETNX so a second insert of the same number fails.
func (s *RedisRecordStore) Insert(ctx context.Context, record *domain.ShipmentRecord) (string, error) {
	stored := *record
	stored.ID = uuid.NewString()
	now := s.now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	data, err := json.Marshal(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to marshal shipment: %w", err)
	}

	ok, err := s.cache.SetNX(ctx, shipmentKey(stored.ConsignmentNo), data, 0)
	if err != nil {
		return "", fmt.Errorf("failed to save shipment to redis: %w", err)
	}
	if !ok {
		return "", ports.ErrAlreadyExists
	}

	return stored.ID, nil
}

// UpdateStatus rewrites the stored document with the new status.
// The read-modify-write is not atomic; concurrent writers follow last-write-wins.
func (s *RedisRecordStore) UpdateStatus(ctx context.Context, consignmentNo string, status domain.Status) error {
	record, err := s.FindByConsignmentNo(ctx, consignmentNo)
	if err != nil {
		return err
	}
	if record == nil {
		return ports.ErrNotFound
	}

	record.Status = status
	record.UpdatedAt = s.now().UTC()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal shipment: %w", err)
	}

	if err := s.cache.Set(ctx, shipmentKey(consignmentNo), data, 0); err != nil {
		return fmt.Errorf("failed to update shipment in redis: %w", err)
	}
	return nil
}

// CountAll counts every shipment key.
func (s *RedisRecordStore) CountAll(ctx context.Context) (int64, error) {
	count, err := s.cache.CountKeys(ctx, shipmentKeyPrefix+"*")
	if err != nil {
		return 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	return count, nil
}
