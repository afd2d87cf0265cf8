package scheduler

//go:generate go run go.uber.org/mock/mockgen -source=./scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/shared/timezone"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Task is a periodic unit of work. It receives a context cancelled on shutdown.
type Task func(ctx context.Context)

type Scheduler interface {
	Every(name string, interval time.Duration, task Task) error
	Start()
	Shutdown() error
}

type schedulerImpl struct {
	inner  gocron.Scheduler
	ctx    context.Context
	cancel context.CancelFunc
}

// New builds a gocron scheduler running in the application timezone.
func New() (Scheduler, error) {
	inner, err := gocron.NewScheduler(gocron.WithLocation(timezone.GetLocation()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &schedulerImpl{inner: inner, ctx: ctx, cancel: cancel}, nil
}

// Every registers task to run each interval. A run still in progress makes the next one skip.
func (s *schedulerImpl) Every(name string, interval time.Duration, task Task) error {
	job, err := s.inner.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			started := time.Now()
			log.Info().Str("job", name).Msg("Scheduled job started")

			task(s.ctx)

			log.Info().Str("job", name).Dur("elapsed", time.Since(started)).Msg("Scheduled job finished")
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}

	log.Info().Str("job", name).Str("id", job.ID().String()).Dur("interval", interval).Msg("Scheduled job registered")

	return nil
}

func (s *schedulerImpl) Start() {
	s.inner.Start()
	log.Info().Int("jobs", len(s.inner.Jobs())).Msg("Scheduler started")
}

func (s *schedulerImpl) Shutdown() error {
	s.cancel()

	if err := s.inner.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}

	log.Info().Msg("Scheduler stopped")

	return nil
}
