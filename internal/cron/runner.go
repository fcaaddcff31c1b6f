// Package cronrunner runs background jobs on cron schedules.
package cronrunner

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"investadmin/internal/validator"
)

// Runner wraps a cron scheduler whose jobs share a base context.
type Runner struct {
	cron    *cron.Cron
	logger  *zap.SugaredLogger
	baseCtx context.Context
}

// New creates a Runner. Jobs receive baseCtx, so cancelling it tells running
// jobs to stop.
func New(logger *zap.SugaredLogger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithParser(validator.CronParser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers job under spec. A run is skipped while the previous one is
// still in progress.
func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		job(r.baseCtx)
	})
}

// Start begins running scheduled jobs in the background.
func (r *Runner) Start() {
	if r.logger != nil {
		r.logger.Infow("cron started", "jobs", len(r.cron.Entries()))
	}
	r.cron.Start()
}

// Stop stops scheduling and waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	if r.logger != nil {
		r.logger.Info("cron stopped")
	}
}
