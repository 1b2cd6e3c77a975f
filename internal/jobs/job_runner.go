package jobs

import (
	"moto-rentals-backend/internal/config"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/repository"
	"moto-rentals-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	sessions    service.SessionService
	sessionRepo repository.SessionRepository
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(sessions service.SessionService, sessionRepo repository.SessionRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		sessions:    sessions,
		sessionRepo: sessionRepo,
		config:      cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithMethod("JobRunner." + jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	log.Info("Starting job", "job", jobName)
	jobFunc()
	log.Info("Job completed", "job", jobName)
}
