package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShipmentService is a mock implementation of ports.ShipmentService
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) Create(ctx context.Context, record *domain.ShipmentRecord) (*domain.ShipmentRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShipmentRecord), args.Error(1)
}

func (m *MockShipmentService) UpdateStatus(ctx context.Context, consignmentNo string, status domain.Status) error {
	args := m.Called(ctx, consignmentNo, status)
	return args.Error(0)
}

func setupApp(service *MockShipmentService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler := NewShipmentHandler(service)
	app.Post("/shipments", handler.CreateShipment)
	app.Patch("/shipments/:number/status", handler.UpdateStatus)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestShipmentHandler_CreateShipment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		created := &domain.ShipmentRecord{
			ID:                  "id-1",
			ConsignmentNo:       "MT-202503001",
			Status:              domain.StatusPending,
			OriginLocation:      "Imphal, Manipur",
			DestinationLocation: "Delhi, India",
		}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ShipmentRecord) bool {
			return r.OriginLocation == "Imphal, Manipur" && r.DestinationLocation == "Delhi, India"
		})).Return(created, nil).Once()

		resp, err := app.Test(jsonRequest("POST", "/shipments", CreateShipmentRequest{
			From: "Imphal, Manipur",
			To:   "Delhi, India",
		}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got domain.ShipmentRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "MT-202503001", got.ConsignmentNo)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/shipments", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidStatus).Once()

		resp, err := app.Test(jsonRequest("POST", "/shipments", CreateShipmentRequest{
			From: "Imphal, Manipur", To: "Delhi, India", Status: "lost",
		}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, ports.ErrAlreadyExists).Once()

		resp, err := app.Test(jsonRequest("POST", "/shipments", CreateShipmentRequest{
			ConsignmentNo: "MT-202503001", From: "Imphal, Manipur", To: "Delhi, India",
		}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var errResp ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "test-ray-id", errResp.RayID)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		resp, err := app.Test(jsonRequest("POST", "/shipments", CreateShipmentRequest{
			From: "Imphal, Manipur", To: "Delhi, India",
		}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestShipmentHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("UpdateStatus", mock.Anything, "MT-202503001", domain.StatusDelivered).Return(nil).Once()

		resp, err := app.Test(jsonRequest("PATCH", "/shipments/MT-202503001/status", UpdateStatusRequest{Status: "delivered"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		resp, err := app.Test(jsonRequest("PATCH", "/shipments/MT-202503001/status", UpdateStatusRequest{Status: "lost"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockShipmentService)
		app := setupApp(mockService)

		mockService.On("UpdateStatus", mock.Anything, "MT-000000000", domain.StatusDelivered).Return(ports.ErrNotFound).Once()

		resp, err := app.Test(jsonRequest("PATCH", "/shipments/MT-000000000/status", UpdateStatusRequest{Status: "delivered"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
