package scheduler

import (
	"context"
	"fmt"
	"time"

	"hotel/config"
	infraScheduler "hotel/infras/scheduler"
	"hotel/internal/domains/maintenance/model"
	"hotel/internal/domains/maintenance/service"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type sweep func(ctx context.Context, now time.Time) (model.Summary, error)

// Jobs registers the maintenance sweeps on a scheduler.
type Jobs struct {
	Config      *config.Config
	Scheduler   infraScheduler.Scheduler
	Maintenance service.Maintenance
}

func New(cfg *config.Config, scheduler infraScheduler.Scheduler, maintenance service.Maintenance) *Jobs {
	return &Jobs{
		Config:      cfg,
		Scheduler:   scheduler,
		Maintenance: maintenance,
	}
}

// Start registers every sweep and starts the scheduler. It is a no-op when scheduling is disabled.
func (j *Jobs) Start() error {
	if !j.Config.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled.")

		return nil
	}

	jobs := []struct {
		name     string
		interval int
		run      sweep
	}{
		{model.JobExpirePending, j.Config.Scheduler.ExpireIntervalMin, j.Maintenance.ExpirePending},
		{model.JobMarkNoShows, j.Config.Scheduler.NoShowIntervalMin, j.Maintenance.MarkNoShows},
		{model.JobReleaseCheckedOut, j.Config.Scheduler.CheckoutIntervalMin, j.Maintenance.ReleaseCheckedOut},
	}

	for _, job := range jobs {
		if job.interval <= 0 {
			return fmt.Errorf("invalid interval for %s: %d minutes", job.name, job.interval)
		}

		if err := j.Scheduler.Every(job.name, time.Duration(job.interval)*time.Minute, Task(job.run)); err != nil {
			return fmt.Errorf("failed to register %s: %w", job.name, err)
		}
	}

	j.Scheduler.Start()

	return nil
}

func (j *Jobs) Shutdown() error {
	if !j.Config.Scheduler.Enable {
		return nil
	}

	return j.Scheduler.Shutdown() //nolint:wrapcheck
}

// Task adapts a sweep to a scheduler task evaluated at the current instant.
func Task(run sweep) infraScheduler.Task {
	return func(ctx context.Context) {
		summary, err := run(ctx, timezone.Now())
		if err != nil {
			log.Error().Err(err).Msg("Scheduled sweep failed")

			return
		}

		log.Info().
			Str("job", summary.Job).
			Int("processed", summary.Processed).
			Int("failed", summary.Failed).
			Msg("Scheduled sweep completed")
	}
}
