package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsRefresher struct {
	mock.Mock
}

func (m *MockStatsRefresher) Handle(
	ctx context.Context,
	cmd commands.RefreshDeliveryStatsCommand,
) (delivery.Stats, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(delivery.Stats), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeliveryStatsJob_Run(t *testing.T) {
	t.Run("refreshes with a bounded context", func(t *testing.T) {
		handler := new(MockStatsRefresher)
		handler.On("Handle",
			mock.MatchedBy(func(ctx context.Context) bool {
				_, ok := ctx.Deadline()
				return ok
			}),
			commands.NewRefreshDeliveryStatsCommand(),
		).Return(delivery.Stats{Total: 3}, nil).Once()
		job := jobs.NewDeliveryStatsJob(handler, "", time.Minute, discardLogger())

		job.Run(t.Context())

		handler.AssertExpectations(t)
	})

	t.Run("failure is absorbed", func(t *testing.T) {
		handler := new(MockStatsRefresher)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(delivery.Stats{}, errors.New("collaborator down")).Once()
		job := jobs.NewDeliveryStatsJob(handler, "", 0, discardLogger())

		assert.NotPanics(t, func() { job.Run(t.Context()) })
		handler.AssertExpectations(t)
	})
}

func TestDeliveryStatsJob_StartStop(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		job := jobs.NewDeliveryStatsJob(new(MockStatsRefresher), "0 0 3 * * *", 0, discardLogger())

		require.NoError(t, job.Start())
		job.Stop()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		job := jobs.NewDeliveryStatsJob(new(MockStatsRefresher), "every now and then", 0, discardLogger())

		require.Error(t, job.Start())
	})
}

func TestJobManager_StartAll(t *testing.T) {
	t.Run("starts and stops", func(t *testing.T) {
		manager := jobs.NewJobManager(new(MockStatsRefresher), jobs.DefaultStatsSchedule, time.Second, discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("reports the failing job", func(t *testing.T) {
		manager := jobs.NewJobManager(new(MockStatsRefresher), "* *", time.Second, discardLogger())

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery stats job")
	})
}
