package handler

import (
	"net/http"

	"shipment-tracker/internal/core/logger"
	shipdomain "shipment-tracker/internal/features/shipments/domain"
	shipports "shipment-tracker/internal/features/shipments/ports"
	"shipment-tracker/internal/features/tracking/domain"
	"shipment-tracker/internal/features/tracking/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgDemoExists  = "Demo invoice already exists"
	msgDemoCreated = "Demo invoice created successfully"
)

// FunctionsHandler serves the privileged lookup functions.
type FunctionsHandler struct {
	store shipports.RecordStore
	demo  ports.DemoRecords
}

// NewFunctionsHandler creates a new FunctionsHandler.
func NewFunctionsHandler(store shipports.RecordStore, demo ports.DemoRecords) *FunctionsHandler {
	return &FunctionsHandler{store: store, demo: demo}
}

func functionError(c *fiber.Ctx, status int, message string, err error) error {
	body := domain.FunctionError{Error: message}
	if err != nil {
		body.Details = err.Error()
		logger.Get().Error(message, zap.String("ray_id", rayID(c)), zap.Error(err))
	}
	return c.Status(status).JSON(body)
}

// PublicTracking handles POST /functions/v1/public-tracking.
// @Summary Public tracking function
// @Description mode=demo returns the demo number, mode=check-demo reports whether it exists, otherwise trackingNumber is looked up.
// @Tags functions
// @Accept json
// @Produce json
// @Param request body domain.PublicTrackingRequest true "Lookup request"
// @Success 200 {object} domain.PublicTrackingResponse
// @Failure 400 {object} domain.FunctionError
// @Failure 500 {object} domain.FunctionError
// @Router /functions/v1/public-tracking [post]
func (h *FunctionsHandler) PublicTracking(c *fiber.Ctx) error {
	var req domain.PublicTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return functionError(c, http.StatusBadRequest, "Invalid request", nil)
	}

	ctx := c.UserContext()

	switch req.Mode {
	case domain.ModeDemo:
		exists, err := h.demo.Exists(ctx)
		if err != nil {
			return functionError(c, http.StatusInternalServerError, "Failed to check for demo invoice", err)
		}
		var demoNo *string
		if exists {
			no := h.demo.DemoConsignmentNo()
			demoNo = &no
		}
		return c.JSON(domain.DemoNumberResponse{DemoConsignment: demoNo})

	case domain.ModeCheckDemo:
		exists, err := h.demo.Exists(ctx)
		if err != nil {
			return functionError(c, http.StatusInternalServerError, "Failed to check for demo data", err)
		}
		return c.JSON(domain.CheckDemoResponse{DemoExists: exists})
	}

	no := shipdomain.NormalizeConsignmentNo(req.TrackingNumber)
	if no == "" {
		return functionError(c, http.StatusBadRequest, "Invalid request", nil)
	}

	record, err := h.store.FindByConsignmentNo(ctx, no)
	if err != nil {
		return functionError(c, http.StatusInternalServerError, "Failed to fetch invoice data", err)
	}

	return c.JSON(domain.PublicTrackingResponse{Invoice: record})
}

// CreateDemoInvoice handles POST /functions/v1/create-demo-invoice.
// @Summary Create the demo record
// @Description Idempotently stores the demonstration shipment. Only the configured demo number is accepted.
// @Tags functions
// @Accept json
// @Produce json
// @Param request body domain.CreateDemoRequest true "Demo number"
// @Success 200 {object} domain.CreateDemoResponse
// @Failure 400 {object} domain.FunctionError
// @Failure 500 {object} domain.FunctionError
// @Router /functions/v1/create-demo-invoice [post]
func (h *FunctionsHandler) CreateDemoInvoice(c *fiber.Ctx) error {
	var req domain.CreateDemoRequest
	if err := c.BodyParser(&req); err != nil {
		return functionError(c, http.StatusBadRequest, "Invalid request", nil)
	}

	no := shipdomain.NormalizeConsignmentNo(req.TrackingNumber)
	if no == "" {
		return functionError(c, http.StatusBadRequest, "Tracking number is required", nil)
	}
	if no != h.demo.DemoConsignmentNo() {
		return functionError(c, http.StatusBadRequest, "Only the demo consignment number can be created", nil)
	}

	id, created, err := h.demo.Ensure(c.UserContext())
	if err != nil {
		return functionError(c, http.StatusInternalServerError, "Failed to create demo invoice", err)
	}

	message := msgDemoExists
	if created {
		message = msgDemoCreated
	}
	return c.JSON(domain.CreateDemoResponse{Message: message, ID: id})
}

// Register mounts the function routes.
func (h *FunctionsHandler) Register(router fiber.Router) {
	functions := router.Group("/functions/v1")
	functions.Post("/"+domain.FunctionPublicTracking, h.PublicTracking)
	functions.Post("/"+domain.FunctionCreateDemoInvoice, h.CreateDemoInvoice)
}
