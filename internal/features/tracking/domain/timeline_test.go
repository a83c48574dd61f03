package domain

import (
	"testing"
	"time"

	shipdomain "shipment-tracker/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func TestOrdinal(t *testing.T) {
	assert.Equal(t, 0, Ordinal(shipdomain.StatusPending))
	assert.Equal(t, 1, Ordinal(shipdomain.StatusProcessing))
	assert.Equal(t, 2, Ordinal(shipdomain.StatusInTransit))
	assert.Equal(t, 3, Ordinal(shipdomain.StatusDelivered))
	assert.Equal(t, -1, Ordinal(shipdomain.StatusCancelled))
	assert.Equal(t, -1, Ordinal("unknown"))
}

func TestProject_OrderedStatuses(t *testing.T) {
	statuses := []shipdomain.Status{
		shipdomain.StatusPending,
		shipdomain.StatusProcessing,
		shipdomain.StatusInTransit,
		shipdomain.StatusDelivered,
	}

	for current, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			steps := Project(status, createdAt, "Imphal, Manipur", "Delhi, India")
			require.Len(t, steps, 4)

			currentCount := 0
			for i, step := range steps {
				assert.Equal(t, i <= current, step.IsCompleted, "step %d completed", i)
				assert.Equal(t, i == current, step.IsCurrent, "step %d current", i)
				if step.IsCurrent {
					currentCount++
				}
			}
			assert.Equal(t, 1, currentCount)
		})
	}
}

func TestProject_LabelsAndLocations(t *testing.T) {
	steps := Project(shipdomain.StatusPending, createdAt, "Imphal, Manipur", "Delhi, India")
	require.Len(t, steps, 4)

	assert.Equal(t, "Order Placed", steps[0].Status)
	assert.Equal(t, "Processing", steps[1].Status)
	assert.Equal(t, "In Transit", steps[2].Status)
	assert.Equal(t, "Delivered", steps[3].Status)

	assert.Equal(t, "Imphal, Manipur", steps[0].Location)
	assert.Equal(t, "Sorting Center", steps[1].Location)
	assert.Equal(t, "Transit Hub", steps[2].Location)
	assert.Equal(t, "Delhi, India", steps[3].Location)
}

func TestProject_Delivered(t *testing.T) {
	steps := Project(shipdomain.StatusDelivered, createdAt, "Imphal, Manipur", "Delhi, India")
	require.Len(t, steps, 4)

	for _, step := range steps {
		assert.True(t, step.IsCompleted)
	}
	assert.True(t, steps[3].IsCurrent)

	assert.Equal(t, "March 14, 2025 • 09:30 AM", steps[0].Timestamp)
	assert.Equal(t, "March 15, 2025 • 09:30 AM", steps[1].Timestamp)
	assert.Equal(t, "March 16, 2025 • 09:30 AM", steps[2].Timestamp)
	assert.Equal(t, "March 17, 2025 • 09:30 AM", steps[3].Timestamp)
}

func TestProject_FutureStepsUseFixedEstimate(t *testing.T) {
	steps := Project(shipdomain.StatusProcessing, createdAt, "Imphal, Manipur", "Delhi, India")
	require.Len(t, steps, 4)

	assert.Equal(t, "March 14, 2025 • 09:30 AM", steps[0].Timestamp)
	assert.Equal(t, "March 15, 2025 • 09:30 AM", steps[1].Timestamp)
	// Both later steps quote createdAt + 3 days, not createdAt + i days.
	assert.Equal(t, "Estimated: March 17, 2025", steps[2].Timestamp)
	assert.Equal(t, "Estimated: March 17, 2025", steps[3].Timestamp)
}

func TestProject_AfternoonTime(t *testing.T) {
	afternoon := time.Date(2024, time.December, 30, 14, 5, 0, 0, time.UTC)
	steps := Project(shipdomain.StatusInTransit, afternoon, "A, B", "C")

	assert.Equal(t, "December 30, 2024 • 02:05 PM", steps[0].Timestamp)
	assert.Equal(t, "January 1, 2025 • 02:05 PM", steps[2].Timestamp)
	assert.Equal(t, "Estimated: January 2, 2025", steps[3].Timestamp)
}

func TestProject_Cancelled(t *testing.T) {
	steps := Project(shipdomain.StatusCancelled, createdAt, "Imphal, Manipur", "Delhi, India")
	require.Len(t, steps, 4)

	for _, step := range steps {
		assert.False(t, step.IsCompleted)
		assert.False(t, step.IsCurrent)
		assert.Equal(t, "Estimated: March 17, 2025", step.Timestamp)
	}
}

func TestProject_UsesCreatedAtLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC).In(kolkata)

	steps := Project(shipdomain.StatusPending, local, "Imphal, Manipur", "Delhi, India")
	assert.Equal(t, "March 15, 2025 • 04:30 AM", steps[0].Timestamp)
}
