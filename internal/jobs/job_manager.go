package jobs

import (
	"fmt"
	"log/slog"

	"custody/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	contractStatusJob *ContractStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reader queries.ContractReader,
	countsHandler queries.CountsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		contractStatusJob: NewContractStatusJob(reader, countsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.contractStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start contract status job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.contractStatusJob.Stop()
}
