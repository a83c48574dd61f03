package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/features/tracking/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// functionsPath is where the privileged functions are mounted.
const functionsPath = "/functions/v1/"

// ErrFunctionFailed is returned when a function answers with a non-2xx status.
var ErrFunctionFailed = errors.New("function call failed")

// FunctionsClient invokes the privileged lookup functions over HTTP.
type FunctionsClient struct {
	client *resty.Client
}

// NewFunctionsClient creates a FunctionsClient for baseURL.
// When key is non-empty it is sent as a bearer token.
func NewFunctionsClient(baseURL, key string, timeout time.Duration) *FunctionsClient {
	client := resty.NewWithClient(httpclient.NewClient("functions", timeout)).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if key != "" {
		client.SetAuthToken(key)
	}

	return &FunctionsClient{client: client}
}

// Invoke implements ports.FunctionInvoker.
func (c *FunctionsClient) Invoke(ctx context.Context, functionName string, payload any) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(functionsPath + functionName)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", functionName, err)
	}

	if resp.IsError() {
		var body domain.FunctionError
		if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil && body.Error != "" {
			return nil, fmt.Errorf("%w: %s returned %d: %s", ErrFunctionFailed, functionName, resp.StatusCode(), body.Error)
		}
		return nil, fmt.Errorf("%w: %s returned %d", ErrFunctionFailed, functionName, resp.StatusCode())
	}

	return json.RawMessage(resp.Body()), nil
}

// RemoteBootstrapper ensures the demo record through the create-demo-invoice function.
type RemoteBootstrapper struct {
	client *FunctionsClient
	demoNo string
}

// NewRemoteBootstrapper creates a RemoteBootstrapper.
func NewRemoteBootstrapper(client *FunctionsClient, demoNo string) *RemoteBootstrapper {
	return &RemoteBootstrapper{client: client, demoNo: demoNo}
}

// EnsureDemoRecord implements ports.Bootstrapper. Failures are logged and swallowed.
func (b *RemoteBootstrapper) EnsureDemoRecord(ctx context.Context) {
	data, err := b.client.Invoke(ctx, domain.FunctionCreateDemoInvoice, domain.CreateDemoRequest{
		TrackingNumber: b.demoNo,
	})
	if err != nil {
		logger.Get().Error("Remote demo bootstrap failed",
			zap.String("consignment_no", b.demoNo),
			zap.Error(err),
		)
		return
	}

	var resp domain.CreateDemoResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Get().Warn("Unexpected create-demo-invoice response", zap.Error(err))
		return
	}

	logger.Get().Info("Remote demo bootstrap finished",
		zap.String("consignment_no", b.demoNo),
		zap.String("id", resp.ID),
		zap.String("message", resp.Message),
	)
}
