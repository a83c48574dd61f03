package domain

import (
	"time"

	shipdomain "shipment-tracker/internal/features/shipments/domain"
)

const (
	// DateLayout renders dates as "March 14, 2025".
	DateLayout = "January 2, 2006"
	// TimeLayout renders times as "09:30 AM".
	TimeLayout = "03:04 PM"

	stepSeparator   = " • "
	estimatedPrefix = "Estimated: "

	sortingCenterLabel = "Sorting Center"
	transitHubLabel    = "Transit Hub"
)

// orderedStatuses is the fixed progression; the index is the ordinal.
var orderedStatuses = []shipdomain.Status{
	shipdomain.StatusPending,
	shipdomain.StatusProcessing,
	shipdomain.StatusInTransit,
	shipdomain.StatusDelivered,
}

var stepLabels = []string{"Order Placed", "Processing", "In Transit", "Delivered"}

// Ordinal returns the position of status in the ordered progression, or -1
// for cancelled and unknown statuses.
func Ordinal(status shipdomain.Status) int {
	for i, s := range orderedStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// Project maps a status and creation time to the four-step timeline.
// Steps up to and including the current ordinal are completed and carry
// createdAt + i days. Later steps quote the fixed createdAt + 3 days estimate.
// A status without an ordinal yields four pending steps with no current step.
func Project(status shipdomain.Status, createdAt time.Time, origin, destination string) []TrackingStep {
	current := Ordinal(status)
	estimated := estimatedPrefix + EstimatedDelivery(createdAt)

	steps := make([]TrackingStep, len(orderedStatuses))
	for i := range orderedStatuses {
		completed := i <= current
		timestamp := estimated
		if completed {
			stepDate := createdAt.AddDate(0, 0, i)
			timestamp = stepDate.Format(DateLayout) + stepSeparator + stepDate.Format(TimeLayout)
		}

		steps[i] = TrackingStep{
			Status:      stepLabels[i],
			Location:    stepLocation(i, origin, destination),
			Timestamp:   timestamp,
			IsCompleted: completed,
			IsCurrent:   i == current,
		}
	}
	return steps
}

func stepLocation(i int, origin, destination string) string {
	switch i {
	case 0:
		return origin
	case len(orderedStatuses) - 1:
		return destination
	case 1:
		return sortingCenterLabel
	default:
		return transitHubLabel
	}
}
