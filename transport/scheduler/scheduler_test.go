package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	infraScheduler "hotel/infras/scheduler"
	schedulerMocks "hotel/infras/scheduler/mocks"
	maintenanceMocks "hotel/internal/domains/maintenance/mocks"
	"hotel/internal/domains/maintenance/model"
	"hotel/transport/scheduler"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.Enable = enable
	cfg.Scheduler.ExpireIntervalMin = 15
	cfg.Scheduler.NoShowIntervalMin = 60
	cfg.Scheduler.CheckoutIntervalMin = 30

	return cfg
}

func TestJobs_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := schedulerMocks.NewMockScheduler(ctrl)
	maintenance := maintenanceMocks.NewMockMaintenanceService(ctrl)

	tasks := map[string]infraScheduler.Task{}
	record := func(name string, _ time.Duration, task infraScheduler.Task) error {
		tasks[name] = task

		return nil
	}

	gomock.InOrder(
		sched.EXPECT().Every(model.JobExpirePending, 15*time.Minute, gomock.Any()).DoAndReturn(record),
		sched.EXPECT().Every(model.JobMarkNoShows, time.Hour, gomock.Any()).DoAndReturn(record),
		sched.EXPECT().Every(model.JobReleaseCheckedOut, 30*time.Minute, gomock.Any()).DoAndReturn(record),
		sched.EXPECT().Start(),
	)

	jobs := scheduler.New(newConfig(true), sched, maintenance)
	assert.NoError(t, jobs.Start())

	maintenance.EXPECT().
		MarkNoShows(gomock.Any(), gomock.Any()).
		Return(model.Summary{Job: model.JobMarkNoShows, Processed: 1}, nil)

	tasks[model.JobMarkNoShows](context.Background())
}

func TestJobs_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	jobs := scheduler.New(newConfig(false), schedulerMocks.NewMockScheduler(ctrl), maintenanceMocks.NewMockMaintenanceService(ctrl))

	assert.NoError(t, jobs.Start())
	assert.NoError(t, jobs.Shutdown())
}

func TestJobs_InvalidInterval(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := newConfig(true)
	cfg.Scheduler.ExpireIntervalMin = 0

	jobs := scheduler.New(cfg, schedulerMocks.NewMockScheduler(ctrl), maintenanceMocks.NewMockMaintenanceService(ctrl))

	assert.Error(t, jobs.Start())
}

func TestTask_SwallowsErrors(t *testing.T) {
	called := false

	task := scheduler.Task(func(_ context.Context, now time.Time) (model.Summary, error) {
		called = true
		assert.False(t, now.IsZero())

		return model.Summary{}, errors.New("database unavailable")
	})

	task(context.Background())

	assert.True(t, called)
}
