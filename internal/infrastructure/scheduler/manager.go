// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"crewhub/internal/shared/biztime"
	"crewhub/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterBillingJobs registers the invoice generation job. It runs
// hourly so an instance restart never pushes billing back a full day.
func (m *SchedulerManager) RegisterBillingJobs(generateInvoicesJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runBatchJob(ctx, "generate-invoices", generateInvoicesJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("billing"),
		gocron.WithName("billing-invoice-generator"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered billing jobs", "interval", "1h")
	return nil
}

func (m *SchedulerManager) runBatchJob(ctx context.Context, name string, job BatchJob) {
	startTime := biztime.NowUTC()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("scheduled job completed",
			"job", name,
			"processed", count,
			"duration", time.Since(startTime),
		)
	}
}

// Start begins executing registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Info("scheduler started")
}

// Stop gracefully shuts the scheduler down, waiting for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}

	m.started = false
	m.logger.Info("scheduler stopped")
	return nil
}
