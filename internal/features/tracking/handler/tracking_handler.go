package handler

import (
	"errors"
	"net/http"
	"net/url"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/tracking/ports"
	"shipment-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking.
type TrackingHandler struct {
	service ports.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// DemoNumberResponse carries the demonstration consignment number.
type DemoNumberResponse struct {
	ConsignmentNo string `json:"consignment_no"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// GetTracking handles GET /tracking/:number.
// @Summary Track a shipment
// @Description Resolves a consignment number and returns its summary and four-step timeline.
// @Tags tracking
// @Produce json
// @Param number path string true "Consignment Number"
// @Success 200 {object} domain.Tracking
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	number := c.Params("number")
	if unescaped, err := url.PathUnescape(number); err == nil {
		number = unescaped
	}
	return h.resolve(c, number)
}

// SearchTracking handles GET /tracking?number=.
// @Summary Track a shipment by query
// @Description Same as GET /tracking/{number}, for numbers entered in a search form.
// @Tags tracking
// @Produce json
// @Param number query string true "Consignment Number"
// @Success 200 {object} domain.Tracking
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking [get]
func (h *TrackingHandler) SearchTracking(c *fiber.Ctx) error {
	return h.resolve(c, c.Query("number"))
}

func (h *TrackingHandler) resolve(c *fiber.Ctx, number string) error {
	tracking, err := h.service.Resolve(c.UserContext(), number)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Please enter a consignment number",
				RayID:   rayID(c),
			})
		case errors.Is(err, service.ErrNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "No shipment found with this consignment number",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to resolve tracking",
			zap.String("tracking_number", number),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.JSON(tracking)
}

// GetDemoNumber handles GET /tracking/demo-number.
// @Summary Demo consignment number
// @Description Returns the demonstration consignment number, creating its record when missing.
// @Tags tracking
// @Produce json
// @Success 200 {object} DemoNumberResponse
// @Router /tracking/demo-number [get]
func (h *TrackingHandler) GetDemoNumber(c *fiber.Ctx) error {
	return c.JSON(DemoNumberResponse{
		ConsignmentNo: h.service.DemoConsignmentNo(c.UserContext()),
	})
}

// Register mounts the tracking routes. The demo-number route is registered
// before the :number route so it is not captured as a consignment number.
func (h *TrackingHandler) Register(router fiber.Router) {
	router.Get("/tracking/demo-number", h.GetDemoNumber)
	router.Get("/tracking/:number", h.GetTracking)
	router.Get("/tracking", h.SearchTracking)
}

