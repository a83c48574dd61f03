package domain

import shipdomain "shipment-tracker/internal/features/shipments/domain"

const (
	// FunctionPublicTracking looks up records on behalf of anonymous visitors.
	FunctionPublicTracking = "public-tracking"
	// FunctionCreateDemoInvoice ensures the demonstration record exists.
	FunctionCreateDemoInvoice = "create-demo-invoice"

	ModeDemo      = "demo"
	ModeCheckDemo = "check-demo"
)

// PublicTrackingRequest is the payload of the public-tracking function.
type PublicTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Mode           string `json:"mode,omitempty"`
}

// PublicTrackingResponse is the public-tracking reply for a lookup.
type PublicTrackingResponse struct {
	Invoice *shipdomain.ShipmentRecord `json:"invoice"`
}

// CreateDemoRequest is the payload of the create-demo-invoice function.
type CreateDemoRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

// CreateDemoResponse is the create-demo-invoice reply.
type CreateDemoResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DemoNumberResponse answers mode=demo. DemoConsignment is null when no demo record is stored.
type DemoNumberResponse struct {
	DemoConsignment *string `json:"demoConsignment"`
}

// CheckDemoResponse answers mode=check-demo.
type CheckDemoResponse struct {
	DemoExists bool `json:"demoExists"`
}

// FunctionError is the error body returned by the functions surface.
type FunctionError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
