// Package scheduler runs the periodic background jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

// Scheduler runs registered jobs on their cron specs. A run that is still
// in progress when the next tick fires makes that tick a no-op.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a scheduler whose job runs are bounded by timeout.
func New(timeout time.Duration) *Scheduler {
	logger := slogLogger{logger: slog.Default().With("component", "scheduler")}
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		timeout: timeout,
	}
}

// Register schedules job under spec, e.g. "@every 5m" or "0 6 * * *". An
// empty spec leaves the job disabled.
func (s *Scheduler) Register(name, spec string, job JobFunc) error {
	if spec == "" {
		slog.Info("Scheduled job disabled", "job", name)
		return nil
	}

	if _, err := s.cron.AddFunc(spec, s.wrap(name, job)); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	slog.Info("Scheduled job registered", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) wrap(name string, job JobFunc) func() {
	return func() {
		logger := slog.With("job", name)
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			logger.Error("Scheduled job failed", "error", err, "duration", time.Since(start))
			return
		}
		logger.Debug("Scheduled job finished", "duration", time.Since(start))
	}
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		slog.Warn("Scheduler stopped before running jobs finished")
	}
}

// slogLogger adapts slog to cron.Logger.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
