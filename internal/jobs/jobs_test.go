package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/ports"
	"burger/internal/jobs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Handle(ctx context.Context, cmd commands.RefreshCatalogCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) CatalogRefreshed(count int) {
	m.Called(count)
}

func (m *MockRecorder) CatalogRefreshFailed() {
	m.Called()
}

var discard = slog.New(slog.DiscardHandler)

func TestCatalogRefreshJob_RunOnce(t *testing.T) {
	t.Run("should record the stored part count", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		refresher.On("Handle", mock.Anything, mock.AnythingOfType("commands.RefreshCatalogCommand")).Return(15, nil).Once()
		recorder.On("CatalogRefreshed", 15).Once()

		job := jobs.NewCatalogRefreshJob(refresher, recorder, "0 */10 * * * *", discard)
		err := job.RunOnce(t.Context())

		require.NoError(t, err)
		refresher.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("should record failures", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		fetchErr := ports.NewCatalogFetchError(errors.New("timeout"))
		refresher.On("Handle", mock.Anything, mock.Anything).Return(0, fetchErr).Once()
		recorder.On("CatalogRefreshFailed").Once()

		job := jobs.NewCatalogRefreshJob(refresher, recorder, "0 */10 * * * *", discard)
		err := job.RunOnce(t.Context())

		require.ErrorIs(t, err, ports.ErrCatalogFetch)
		recorder.AssertExpectations(t)
		recorder.AssertNotCalled(t, "CatalogRefreshed", mock.Anything)
	})

	t.Run("should pass a constructed command", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		refresher.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RefreshCatalogCommand) bool {
			return cmd.Validate() == nil
		})).Return(1, nil).Once()
		recorder.On("CatalogRefreshed", 1).Once()

		job := jobs.NewCatalogRefreshJob(refresher, recorder, "0 */10 * * * *", discard)

		require.NoError(t, job.RunOnce(t.Context()))
		refresher.AssertExpectations(t)
	})
}

func TestCatalogRefreshJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewCatalogRefreshJob(new(MockRefresher), new(MockRecorder), "every ten minutes", discard)

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		job := jobs.NewCatalogRefreshJob(new(MockRefresher), new(MockRecorder), "0 0 3 * * *", discard)

		require.NoError(t, job.Start())
		job.Stop()
	})
}

type MockEvicter struct{ mock.Mock }

func (m *MockEvicter) EvictIdle(maxIdle time.Duration) int {
	return m.Called(maxIdle).Int(0)
}

type MockEvictionRecorder struct{ mock.Mock }

func (m *MockEvictionRecorder) SessionsEvicted(count int) {
	m.Called(count)
}

func TestSessionEvictionJob_RunOnce(t *testing.T) {
	evicter := new(MockEvicter)
	recorder := new(MockEvictionRecorder)
	evicter.On("EvictIdle", 30*time.Minute).Return(4).Once()
	recorder.On("SessionsEvicted", 4).Once()

	job := jobs.NewSessionEvictionJob(evicter, recorder, 30*time.Minute, "0 * * * * *", discard)

	require.Equal(t, 4, job.RunOnce())
	evicter.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestSessionEvictionJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewSessionEvictionJob(new(MockEvicter), new(MockEvictionRecorder), time.Minute, "often", discard)

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		job := jobs.NewSessionEvictionJob(new(MockEvicter), new(MockEvictionRecorder), time.Minute, "0 0 3 * * *", discard)

		require.NoError(t, job.Start())
		job.Stop()
	})
}

func newJobManager(
	refresher *MockRefresher,
	recorder *MockRecorder,
	refreshSchedule string,
	evictionSchedule string,
) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCatalogRefreshJob(refresher, recorder, refreshSchedule, discard),
		jobs.NewSessionEvictionJob(new(MockEvicter), new(MockEvictionRecorder), time.Minute, evictionSchedule, discard),
		discard,
	)
}

func TestJobManager_StartAll(t *testing.T) {
	t.Run("should refresh once then schedule", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		refresher.On("Handle", mock.Anything, mock.Anything).Return(3, nil).Once()
		recorder.On("CatalogRefreshed", 3).Once()

		jm := newJobManager(refresher, recorder, "0 0 3 * * *", "0 0 4 * * *")
		err := jm.StartAll(t.Context())

		require.NoError(t, err)
		jm.StopAll()
		refresher.AssertExpectations(t)
	})

	t.Run("should start even when the first refresh fails", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		refresher.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("down")).Once()
		recorder.On("CatalogRefreshFailed").Once()

		jm := newJobManager(refresher, recorder, "0 0 3 * * *", "0 0 4 * * *")

		require.NoError(t, jm.StartAll(t.Context()))
		jm.StopAll()
	})

	t.Run("should fail on an invalid refresh schedule", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		refresher.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()
		recorder.On("CatalogRefreshed", 0).Once()

		jm := newJobManager(refresher, recorder, "nope", "0 0 4 * * *")

		require.ErrorContains(t, jm.StartAll(t.Context()), "failed to start catalog refresh job")
	})

	t.Run("should fail on an invalid eviction schedule", func(t *testing.T) {
		refresher := new(MockRefresher)
		recorder := new(MockRecorder)
		refresher.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()
		recorder.On("CatalogRefreshed", 0).Once()

		jm := newJobManager(refresher, recorder, "0 0 3 * * *", "nope")

		require.ErrorContains(t, jm.StartAll(t.Context()), "failed to start session eviction job")
	})
}
