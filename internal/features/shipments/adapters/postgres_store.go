package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shipmentColumns = `id::text, consignment_no, status, from_location, to_location, weight::float8,
	COALESCE(items, ''), COALESCE(item_description, ''), COALESCE(sender_info, ''),
	COALESCE(receiver_info, ''), COALESCE(user_id, ''), created_at, updated_at`

// PostgresRecordStore implements ports.RecordStore with a pgx pool.
type PostgresRecordStore struct {
	pool *pgxpool.Pool
}

// NewPostgresRecordStore creates a new PostgresRecordStore.
func NewPostgresRecordStore(pool *pgxpool.Pool) *PostgresRecordStore {
	return &PostgresRecordStore{pool: pool}
}

// FindByConsignmentNo selects a single record by its exact consignment number.
func (s *PostgresRecordStore) FindByConsignmentNo(ctx context.Context, consignmentNo string) (*domain.ShipmentRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE consignment_no = $1 LIMIT 1`,
		consignmentNo,
	)

	var (
		record domain.ShipmentRecord
		status string
	)
	err := row.Scan(
		&record.ID,
		&record.ConsignmentNo,
		&status,
		&record.OriginLocation,
		&record.DestinationLocation,
		&record.Weight,
		&record.Items,
		&record.ItemDescription,
		&record.SenderInfo,
		&record.ReceiverInfo,
		&record.UserID,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query shipment: %w", err)
	}

	record.Status = domain.Status(status)
	return &record, nil
}

// Insert adds a record. A duplicate consignment number yields ports.ErrAlreadyExists.
func (s *PostgresRecordStore) Insert(ctx context.Context, record *domain.ShipmentRecord) (string, error) {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var id string
	err := s.pool.QueryRow(ctx,
		`INSERT INTO shipments
			(consignment_no, status, from_location, to_location, weight,
			 items, item_description, sender_info, receiver_info, user_id, created_at, updated_at)
		 VALUES
			($1, $2, $3, $4, $5,
			 NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $11)
		 ON CONFLICT (consignment_no) DO NOTHING
		 RETURNING id::text`,
		record.ConsignmentNo,
		string(record.Status),
		record.OriginLocation,
		record.DestinationLocation,
		record.Weight,
		record.Items,
		record.ItemDescription,
		record.SenderInfo,
		record.ReceiverInfo,
		record.UserID,
		createdAt,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ports.ErrAlreadyExists
	}
	if err != nil {
		return "", fmt.Errorf("failed to insert shipment: %w", err)
	}

	return id, nil
}

// UpdateStatus sets the status and refreshes updated_at.
func (s *PostgresRecordStore) UpdateStatus(ctx context.Context, consignmentNo string, status domain.Status) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE shipments SET status = $2, updated_at = now() WHERE consignment_no = $1`,
		consignmentNo, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update shipment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// CountAll returns the total number of shipments.
func (s *PostgresRecordStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM shipments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	return count, nil
}
