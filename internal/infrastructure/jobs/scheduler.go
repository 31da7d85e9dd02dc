package jobs

import (
	"context"
	"fmt"

	"community-hub.backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a unit of periodic work
type Job interface {
	Name() string
	Run(ctx context.Context)
}

// Scheduler wraps robfig/cron. Jobs run with the context passed to Start so
// cancelling it aborts in-flight database work.
type Scheduler struct {
	cron    *cron.Cron
	entries []entry
}

type entry struct {
	spec string
	job  Job
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(zapCronLogger{}),
			cron.WithChain(cron.Recover(zapCronLogger{}), cron.SkipIfStillRunning(zapCronLogger{})),
		),
	}
}

// Register adds a job under a cron spec such as "@every 10m"
func (s *Scheduler) Register(spec string, job Job) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, job.Name(), err)
	}
	s.entries = append(s.entries, entry{spec: spec, job: job})
	return nil
}

// Start adds every registered job to cron and starts it
func (s *Scheduler) Start(ctx context.Context) error {
	for _, e := range s.entries {
		job := e.job
		if _, err := s.cron.AddFunc(e.spec, func() { job.Run(ctx) }); err != nil {
			return fmt.Errorf("cron.AddFunc %s: %w", job.Name(), err)
		}
		logger.Info(ctx, "job scheduled", zap.String("job", job.Name()), zap.String("spec", e.spec))
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs until ctx expires
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		logger.Info(ctx, "scheduler stopped")
	case <-ctx.Done():
		logger.Warn(ctx, "scheduler stop timed out")
	}
}

// zapCronLogger routes cron's own logging through the process logger
type zapCronLogger struct{}

func (zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.GetLogger().Sugar().Debugw("cron: "+msg, keysAndValues...)
}

func (zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.GetLogger().Sugar().Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
