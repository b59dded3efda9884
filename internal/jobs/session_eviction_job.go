package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// IdleSessionEvicter closes sessions nobody used for a while. It is
// implemented by *session.Registry.
type IdleSessionEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// EvictionRecorder receives the number of sessions closed by one sweep.
type EvictionRecorder interface {
	SessionsEvicted(count int)
}

// SessionEvictionJob periodically closes idle constructor sessions.
type SessionEvictionJob struct {
	sessions IdleSessionEvicter
	recorder EvictionRecorder
	maxIdle  time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionEvictionJob creates the job. Sessions unused for maxIdle are
// closed on every tick of schedule.
func NewSessionEvictionJob(
	sessions IdleSessionEvicter,
	recorder EvictionRecorder,
	maxIdle time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionEvictionJob {
	return &SessionEvictionJob{
		sessions: sessions,
		recorder: recorder,
		maxIdle:  maxIdle,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "session_eviction_job"),
	}
}

// RunOnce sweeps idle sessions now and returns how many were closed.
func (j *SessionEvictionJob) RunOnce() int {
	evicted := j.sessions.EvictIdle(j.maxIdle)
	j.recorder.SessionsEvicted(evicted)
	if evicted > 0 {
		j.logger.Info("Idle sessions evicted", "count", evicted, "max_idle", j.maxIdle)
	}
	return evicted
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *SessionEvictionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce()
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session eviction job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *SessionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session eviction job stopped")
}
