package domain

import (
	"strings"
	"time"

	shipdomain "shipment-tracker/internal/features/shipments/domain"
)

// deliveryDays is the flat delivery promise quoted for every shipment.
const deliveryDays = 3

// transitHubLocation is reported for every in-transit shipment.
const transitHubLocation = "Transit Hub, Guwahati"

// EstimatedDeliveryDate returns createdAt + 3 days, regardless of status.
func EstimatedDeliveryDate(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, deliveryDays)
}

// EstimatedDelivery formats EstimatedDeliveryDate with DateLayout.
func EstimatedDelivery(createdAt time.Time) string {
	return EstimatedDeliveryDate(createdAt).Format(DateLayout)
}

// CurrentLocation derives a display location from the status.
func CurrentLocation(status shipdomain.Status, origin, destination string) string {
	switch status {
	case shipdomain.StatusPending:
		return origin
	case shipdomain.StatusProcessing:
		parts := strings.Split(origin, ",")
		if len(parts) < 2 {
			return origin
		}
		return sortingCenterLabel + ", " + strings.TrimSpace(parts[1])
	case shipdomain.StatusInTransit:
		return transitHubLocation
	case shipdomain.StatusDelivered:
		return destination
	default:
		return origin
	}
}
