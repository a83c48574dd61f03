package domain

// TrackingStep is one entry of the derived tracking timeline.
type TrackingStep struct {
	// Status is the human-readable stage label.
	Status string `json:"status"`
	// Location is where the shipment is (or will be) at this stage.
	Location string `json:"location"`
	// Timestamp is a formatted past date-time or an "Estimated: ..." date.
	Timestamp string `json:"timestamp"`
	// IsCompleted is true when the stage has been reached.
	IsCompleted bool `json:"is_completed"`
	// IsCurrent is true for the stage matching the shipment status.
	IsCurrent bool `json:"is_current"`
}

// TrackingResult is the summary returned to tracking clients.
type TrackingResult struct {
	ConsignmentNo     string `json:"consignment_no"`
	Status            string `json:"status"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	EstimatedDelivery string `json:"estimated_delivery"`
	CurrentLocation   string `json:"current_location"`
	ID                string `json:"id"`
}

// Tracking bundles a result with its timeline.
type Tracking struct {
	Result TrackingResult `json:"result"`
	Steps  []TrackingStep `json:"steps"`
}
