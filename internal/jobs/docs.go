// Package jobs provides scheduled background tasks for the burger service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - replaces the cached ingredient catalog with a fresh
// copy from the burger backend. The default schedule "0 */10 * * * *" runs it
// every ten minutes.
//
// 2. SessionEvictionJob - closes constructor sessions nobody used for the
// configured idle timeout. The default schedule "0 * * * * *" sweeps once a
// minute. Sessions with an order request in flight are kept.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewCatalogRefreshJob(refreshHandler, metrics, refreshSchedule, logger),
//		jobs.NewSessionEvictionJob(sessions, metrics, idleTimeout, evictionSchedule, logger),
//		logger,
//	)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// StartAll refreshes the catalog once before scheduling. A failed first
// refresh is logged and does not stop startup.
//
// # Error Handling
//
// A failed refresh keeps the previous catalog and is retried on the next tick.
// Runs never overlap: a tick that fires while the previous run is still going
// is skipped.
package jobs
