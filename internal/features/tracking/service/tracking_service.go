package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment-tracker/internal/core/logger"
	shipdomain "shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/tracking/domain"
	"shipment-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

var (
	// ErrValidation is returned when the tracking number is empty after trimming.
	ErrValidation = errors.New("tracking number is required")
	// ErrNotFound is returned when no strategy yields a record.
	ErrNotFound = errors.New("shipment not found")
)

// Options configures the resolution pipeline.
type Options struct {
	// DemoConsignmentNo is the reserved number that may trigger bootstrap and retry.
	DemoConsignmentNo string
	// RetryDelay is the pause between bootstrap and the single retry.
	RetryDelay time.Duration
	// Location renders timeline dates; nil means UTC.
	Location *time.Location
	// DemoFallback adds the in-memory demo strategy to the retry pass.
	DemoFallback bool
}

// TrackingService resolves consignment numbers through an ordered list of strategies.
type TrackingService struct {
	lookups      []ports.Strategy
	demo         ports.Strategy
	bootstrapper ports.Bootstrapper
	opts         Options
	wait         func(ctx context.Context, d time.Duration) error
}

// NewTrackingService creates a new TrackingService. lookups are tried in order
// on every call; the bootstrapper is used only for the demo number.
func NewTrackingService(lookups []ports.Strategy, bootstrapper ports.Bootstrapper, opts Options) *TrackingService {
	opts.DemoConsignmentNo = shipdomain.NormalizeConsignmentNo(opts.DemoConsignmentNo)
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	s := &TrackingService{
		lookups:      lookups,
		bootstrapper: bootstrapper,
		opts:         opts,
		wait:         sleep,
	}
	if opts.DemoFallback {
		s.demo = NewDemoStrategy(opts.DemoConsignmentNo)
	}
	return s
}

// Resolve looks up a shipment and projects its tracking timeline.
func (s *TrackingService) Resolve(ctx context.Context, trackingNumber string) (*domain.Tracking, error) {
	no := shipdomain.NormalizeConsignmentNo(trackingNumber)
	if no == "" {
		return nil, ErrValidation
	}

	record, source := firstSuccess(ctx, s.lookups, no)

	if record == nil && s.isDemo(no) {
		logger.Get().Info("Demo shipment missing, bootstrapping and retrying",
			zap.String("consignment_no", no),
			zap.Duration("delay", s.opts.RetryDelay),
		)

		if s.bootstrapper != nil {
			s.bootstrapper.EnsureDemoRecord(ctx)
		}

		if err := s.wait(ctx, s.opts.RetryDelay); err != nil {
			return nil, fmt.Errorf("retry wait interrupted: %w", err)
		}

		record, source = firstSuccess(ctx, s.retryStrategies(), no)
	}

	if record == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Get().Info("Shipment not found", zap.String("consignment_no", no))
		return nil, ErrNotFound
	}

	logger.Get().Debug("Shipment resolved",
		zap.String("consignment_no", no),
		zap.String("strategy", source),
	)

	return s.compose(record), nil
}

// DemoConsignmentNo returns the demo number after making sure a record backs it.
func (s *TrackingService) DemoConsignmentNo(ctx context.Context) string {
	if record, _ := firstSuccess(ctx, s.lookups, s.opts.DemoConsignmentNo); record == nil && s.bootstrapper != nil {
		s.bootstrapper.EnsureDemoRecord(ctx)
	}
	return s.opts.DemoConsignmentNo
}

func (s *TrackingService) isDemo(no string) bool {
	return s.opts.DemoConsignmentNo != "" && no == s.opts.DemoConsignmentNo
}

func (s *TrackingService) retryStrategies() []ports.Strategy {
	if s.demo == nil {
		return s.lookups
	}
	strategies := make([]ports.Strategy, 0, len(s.lookups)+1)
	strategies = append(strategies, s.lookups...)
	return append(strategies, s.demo)
}

// compose builds the result and timeline from exactly one record.
func (s *TrackingService) compose(record *shipdomain.ShipmentRecord) *domain.Tracking {
	createdAt := record.CreatedAt.In(s.opts.Location)

	return &domain.Tracking{
		Result: domain.TrackingResult{
			ConsignmentNo:     record.ConsignmentNo,
			Status:            string(record.Status),
			Origin:            record.OriginLocation,
			Destination:       record.DestinationLocation,
			EstimatedDelivery: domain.EstimatedDelivery(createdAt),
			CurrentLocation:   domain.CurrentLocation(record.Status, record.OriginLocation, record.DestinationLocation),
			ID:                record.ID,
		},
		Steps: domain.Project(record.Status, createdAt, record.OriginLocation, record.DestinationLocation),
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
