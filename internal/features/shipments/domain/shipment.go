package domain

import (
	"errors"
	"strings"
	"time"
)

// Status is the lifecycle state of a shipment.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusInTransit  Status = "in-transit"
	StatusDelivered  Status = "delivered"
	// StatusCancelled is terminal and sits outside the ordered progression.
	StatusCancelled Status = "cancelled"
)

var (
	// ErrInvalidStatus is returned when a status string is not a known Status.
	ErrInvalidStatus = errors.New("invalid shipment status")
	// ErrInvalidShipment is returned when required record fields are missing.
	ErrInvalidShipment = errors.New("invalid shipment")
)

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.TrimSpace(raw)); s {
	case StatusPending, StatusProcessing, StatusInTransit, StatusDelivered, StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ShipmentRecord is the authoritative shipment entity.
type ShipmentRecord struct {
	// ID is assigned by the record store on insert.
	ID string `json:"id"`
	// ConsignmentNo is the business key used for tracking lookups.
	ConsignmentNo string `json:"consignment_no"`
	// Status is the current lifecycle state.
	Status Status `json:"status"`
	// OriginLocation is the free-text pickup location.
	OriginLocation string `json:"from_location"`
	// DestinationLocation is the free-text drop location.
	DestinationLocation string `json:"to_location"`
	// CreatedAt anchors every derived tracking date. It never changes after insert.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is refreshed on every status change.
	UpdatedAt time.Time `json:"updated_at"`

	Weight          *float64 `json:"weight,omitempty"`
	Items           string   `json:"items,omitempty"`
	ItemDescription string   `json:"item_description,omitempty"`
	SenderInfo      string   `json:"sender_info,omitempty"`
	ReceiverInfo    string   `json:"receiver_info,omitempty"`
	// UserID is the owner reference. Empty means a public record.
	UserID string `json:"user_id,omitempty"`
}

// Validate checks the fields every stored record must carry.
func (r *ShipmentRecord) Validate() error {
	if r.ConsignmentNo == "" {
		return errors.Join(ErrInvalidShipment, errors.New("consignment number is required"))
	}
	if r.OriginLocation == "" || r.DestinationLocation == "" {
		return errors.Join(ErrInvalidShipment, errors.New("origin and destination are required"))
	}
	if _, err := ParseStatus(string(r.Status)); err != nil {
		return err
	}
	return nil
}
