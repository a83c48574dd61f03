package scheduler

import (
	"context"
	"fmt"
	"time"

	"shipment-tracker/internal/core/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a unit of background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on cron schedules.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates a Scheduler. Every run is bounded by timeout.
func New(timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Add registers job under spec. An empty spec is a no-op.
func (s *Scheduler) Add(spec string, job Job) error {
	if spec == "" {
		logger.Get().Info("Job schedule disabled", zap.String("job", job.Name()))
		return nil
	}

	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(job) }); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
	}

	logger.Get().Info("Job scheduled", zap.String("job", job.Name()), zap.String("schedule", spec))
	return nil
}

// RunOnce executes job synchronously and logs the outcome.
func (s *Scheduler) RunOnce(job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		logger.Get().Error("Job failed",
			zap.String("job", job.Name()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}

	logger.Get().Debug("Job finished",
		zap.String("job", job.Name()),
		zap.Duration("duration", time.Since(start)),
	)
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels in-flight runs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}
