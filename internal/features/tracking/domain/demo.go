package domain

import (
	"time"

	shipdomain "shipment-tracker/internal/features/shipments/domain"
)

const (
	DemoOrigin      = "Imphal, Manipur"
	DemoDestination = "Delhi, India"
	DemoStatus      = shipdomain.StatusInTransit
	DemoWeight      = 5.0
	DemoItems       = "Demo Package"

	// DemoRecordID marks records synthesized in memory rather than read from a store.
	DemoRecordID = "demo"
	// demoAge is how far before "now" a synthesized demo shipment was created.
	demoAge = 24 * time.Hour
)

// NewDemoRecord builds the fixed demonstration payload for consignmentNo.
// The record has no owner, which makes it public.
func NewDemoRecord(consignmentNo string, createdAt time.Time) *shipdomain.ShipmentRecord {
	weight := DemoWeight
	return &shipdomain.ShipmentRecord{
		ConsignmentNo:       consignmentNo,
		Status:              DemoStatus,
		OriginLocation:      DemoOrigin,
		DestinationLocation: DemoDestination,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
		Weight:              &weight,
		Items:               DemoItems,
		ItemDescription:     DemoItems,
		SenderInfo:          "Demo Sender",
		ReceiverInfo:        "Demo Recipient",
	}
}

// SynthesizeDemoRecord returns an in-memory demo record created one day before now.
func SynthesizeDemoRecord(consignmentNo string, now time.Time) *shipdomain.ShipmentRecord {
	record := NewDemoRecord(consignmentNo, now.Add(-demoAge))
	record.ID = DemoRecordID
	return record
}
