package jobs

import (
	"time"

	"rentamaq-backend/internal/config"
	"rentamaq-backend/internal/logger"
	"rentamaq-backend/internal/repository/postgres"
	"rentamaq-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *postgres.Store
	email  service.EmailService
	config *config.Config
	now    func() time.Time
}

func NewJobRunner(store *postgres.Store, email service.EmailService, cfg *config.Config, now func() time.Time) *JobRunner {
	return &JobRunner{
		store:  store,
		email:  email,
		config: cfg,
		now:    now,
	}
}

// Config exposes the loaded configuration to the scheduler.
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
	jr.ActivateDueContracts()
	jr.SendReturnReminders()
}
