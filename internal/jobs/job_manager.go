package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	catalogRefreshJob  *CatalogRefreshJob
	sessionEvictionJob *SessionEvictionJob
	logger             *slog.Logger
}

func NewJobManager(
	catalogRefreshJob *CatalogRefreshJob,
	sessionEvictionJob *SessionEvictionJob,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		catalogRefreshJob:  catalogRefreshJob,
		sessionEvictionJob: sessionEvictionJob,
		logger:             logger.With("component", "job_manager"),
	}
}

// StartAll refreshes the catalog once, then schedules every job. When a job
// fails to start, the ones already started are stopped again.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.catalogRefreshJob.RunOnce(ctx); err != nil {
		jm.logger.WarnContext(ctx, "Initial catalog refresh failed, serving the stored catalog", "error", err)
	}

	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	if err := jm.sessionEvictionJob.Start(); err != nil {
		jm.catalogRefreshJob.Stop()
		return fmt.Errorf("failed to start session eviction job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionEvictionJob.Stop()
	jm.catalogRefreshJob.Stop()
}
