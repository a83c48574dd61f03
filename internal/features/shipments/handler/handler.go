package handler

import (
	"errors"
	"net/http"

	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShipmentHandler handles HTTP requests for shipment records.
type ShipmentHandler struct {
	service ports.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
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

// CreateShipmentRequest represents the request body for creating a shipment.
type CreateShipmentRequest struct {
	ConsignmentNo   string   `json:"consignment_no"`
	From            string   `json:"from_location"`
	To              string   `json:"to_location"`
	Status          string   `json:"status"`
	Weight          *float64 `json:"weight"`
	Items           string   `json:"items"`
	ItemDescription string   `json:"item_description"`
	SenderInfo      string   `json:"sender_info"`
	ReceiverInfo    string   `json:"receiver_info"`
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// CreateShipment handles POST /shipments.
// @Summary Create a shipment
// @Description Stores a new shipment record. The consignment number is generated when omitted.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body CreateShipmentRequest true "Shipment details"
// @Success 201 {object} domain.ShipmentRecord
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments [post]
func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	var req CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	record := &domain.ShipmentRecord{
		ConsignmentNo:       req.ConsignmentNo,
		Status:              domain.Status(req.Status),
		OriginLocation:      req.From,
		DestinationLocation: req.To,
		Weight:              req.Weight,
		Items:               req.Items,
		ItemDescription:     req.ItemDescription,
		SenderInfo:          req.SenderInfo,
		ReceiverInfo:        req.ReceiverInfo,
	}

	created, err := h.service.Create(c.UserContext(), record)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidShipment):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		case errors.Is(err, ports.ErrAlreadyExists):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Message: "Consignment number already exists",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to create shipment", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateStatus handles PATCH /shipments/:number/status.
// @Summary Update shipment status
// @Description Moves a shipment to pending, processing, in-transit, delivered or cancelled.
// @Tags shipments
// @Accept json
// @Produce json
// @Param number path string true "Consignment Number"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/{number}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	number := domain.NormalizeConsignmentNo(c.Params("number"))
	if number == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "consignment number is required",
			RayID:   rayID(c),
		})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	if err := h.service.UpdateStatus(c.UserContext(), number, status); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Shipment not found",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to update shipment status",
			zap.String("consignment_no", number),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"consignment_no": number,
		"status":         status,
	})
}
