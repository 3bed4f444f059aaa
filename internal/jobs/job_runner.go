package jobs

import (
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  repository.Store
	email  service.EmailService
	config *config.Config
	clock  utils.Clock
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store repository.Store, email service.EmailService, cfg *config.Config, clock utils.Clock) *JobRunner {
	if clock == nil {
		clock = utils.UTCNow
	}
	return &JobRunner{
		store:  store,
		email:  email,
		config: cfg,
		clock:  clock,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SendOverdueNotices()
	jr.SendPickupReminders()
}
