package httpclient

import (
	"net/http"
	"time"

	"shipment-tracker/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound call with the name of the calling component.
type LoggingRoundTripper struct {
	// Component labels the log lines, e.g. "functions".
	Component string
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("component", lrt.Component),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
	}

	logger.Get().Debug("Outbound request started", fields...)

	resp, err := lrt.Proxied.RoundTrip(req)
	fields = append(fields, zap.Duration("duration", time.Since(start)))

	if err != nil {
		logger.Get().Warn("Outbound request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Get().Warn("Outbound request returned server error", append(fields, zap.Int("status_code", resp.StatusCode))...)
	} else {
		logger.Get().Debug("Outbound request completed", append(fields, zap.Int("status_code", resp.StatusCode))...)
	}

	return resp, nil
}

// NewClient returns an http.Client that logs through the global logger.
func NewClient(component string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Component: component,
			Proxied:   http.DefaultTransport,
		},
		Timeout: timeout,
	}
}
