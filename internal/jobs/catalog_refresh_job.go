package jobs

import (
	"context"
	"log/slog"
	"time"

	"burger/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = time.Minute

// CatalogRefresher runs the refresh command. It is implemented by
// *commands.RefreshCatalogCommandHandler.
type CatalogRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshCatalogCommand) (int, error)
}

// RefreshRecorder receives refresh outcomes.
type RefreshRecorder interface {
	CatalogRefreshed(count int)
	CatalogRefreshFailed()
}

// CatalogRefreshJob periodically replaces the cached catalog.
type CatalogRefreshJob struct {
	handler  CatalogRefresher
	recorder RefreshRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewCatalogRefreshJob(
	handler CatalogRefresher,
	recorder RefreshRecorder,
	schedule string,
	logger *slog.Logger,
) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "catalog_refresh_job"),
	}
}

// RunOnce refreshes the catalog now.
func (j *CatalogRefreshJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	count, err := j.handler.Handle(ctx, commands.NewRefreshCatalogCommand())
	if err != nil {
		j.recorder.CatalogRefreshFailed()
		j.logger.ErrorContext(ctx, "Catalog refresh failed", "error", err)
		return err
	}

	j.recorder.CatalogRefreshed(count)
	j.logger.InfoContext(ctx, "Catalog refreshed", "parts", count)
	return nil
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
