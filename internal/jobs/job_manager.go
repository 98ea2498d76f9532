package jobs

import (
	"fmt"
	"io"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	publisher      io.Closer
	logger         *slog.Logger
}

// NewJobManager creates a job manager. publisher is closed by StopAll after
// the relay job has stopped.
func NewJobManager(outboxRelayJob *OutboxRelayJob, publisher io.Closer, logger *slog.Logger) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
		publisher:      publisher,
		logger:         logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()

	if jm.publisher == nil {
		return
	}
	if err := jm.publisher.Close(); err != nil {
		jm.logger.Error("Failed to close message publisher", "error", err)
	}
}
