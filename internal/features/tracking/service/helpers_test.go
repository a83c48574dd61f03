package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	shipdomain "shipment-tracker/internal/features/shipments/domain"
	shipports "shipment-tracker/internal/features/shipments/ports"
)

// stubStrategy returns a fixed record or error and counts its calls.
type stubStrategy struct {
	name   string
	record *shipdomain.ShipmentRecord
	err    error
	calls  int
	seen   []string
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Lookup(_ context.Context, consignmentNo string) (*shipdomain.ShipmentRecord, error) {
	s.calls++
	s.seen = append(s.seen, consignmentNo)
	if s.err != nil {
		return nil, s.err
	}
	if s.record == nil || s.record.ConsignmentNo != consignmentNo {
		return nil, nil
	}
	return s.record, nil
}

// recordingBootstrapper counts calls and optionally runs a side effect.
type recordingBootstrapper struct {
	calls  int
	effect func()
}

func (b *recordingBootstrapper) EnsureDemoRecord(context.Context) {
	b.calls++
	if b.effect != nil {
		b.effect()
	}
}

// memoryStore is an in-memory RecordStore.
type memoryStore struct {
	mu        sync.Mutex
	records   map[string]*shipdomain.ShipmentRecord
	inserts   int
	findErr   error
	insertErr error
	countErr  error
	nextID    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]*shipdomain.ShipmentRecord{}}
}

func (m *memoryStore) FindByConsignmentNo(_ context.Context, consignmentNo string) (*shipdomain.ShipmentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	record, ok := m.records[consignmentNo]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (m *memoryStore) Insert(_ context.Context, record *shipdomain.ShipmentRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return "", m.insertErr
	}
	if _, ok := m.records[record.ConsignmentNo]; ok {
		return "", shipports.ErrAlreadyExists
	}
	m.nextID++
	m.inserts++
	clone := *record
	clone.ID = fmt.Sprintf("id-%d", m.nextID)
	m.records[record.ConsignmentNo] = &clone
	return clone.ID, nil
}

func (m *memoryStore) UpdateStatus(_ context.Context, consignmentNo string, status shipdomain.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[consignmentNo]
	if !ok {
		return shipports.ErrNotFound
	}
	record.Status = status
	return nil
}

func (m *memoryStore) CountAll(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.records)), nil
}

var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func sampleRecord(no string, status shipdomain.Status) *shipdomain.ShipmentRecord {
	return &shipdomain.ShipmentRecord{
		ID:                  "rec-1",
		ConsignmentNo:       no,
		Status:              status,
		OriginLocation:      "Imphal, Manipur",
		DestinationLocation: "Delhi, India",
		CreatedAt:           fixedNow,
	}
}
