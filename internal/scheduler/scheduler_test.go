package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking/mocks"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	changed bool
	err     error
	calls   int
}

func (f *fakeRefresher) Refresh() (bool, error) {
	f.calls++
	return f.changed, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "*/5 * * * *",
			Enabled:      true,
		},
		RankingSnapshot: config.RankingSnapshot{
			CronSchedule: "0 6 * * *",
			Enabled:      true,
		},
	}
}

func TestDatasetRefreshService_RefreshDataset(t *testing.T) {
	store := &fakeRefresher{changed: true}
	service := NewDatasetRefreshService(store, testConfig())

	changed, err := service.RefreshDataset()
	require.NoError(t, err)
	assert.True(t, changed)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/5 * * * *", status["sync_cron"])
	assert.False(t, status["last_changed_at"].(time.Time).IsZero())
	assert.Equal(t, "", status["last_error"])

	store.changed = false
	store.err = errors.New("arquivo ilegível")

	changed, err = service.RefreshDataset()
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, "arquivo ilegível", service.GetStatus()["last_error"])
	assert.Equal(t, 2, store.calls)
}

func TestDatasetRefreshService_StartDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.DatasetRefresh.Enabled = false

	service := NewDatasetRefreshService(&fakeRefresher{}, cfg)
	assert.NoError(t, service.Start(context.Background()))
}

func TestDatasetRefreshService_StartInvalidCron(t *testing.T) {
	cfg := testConfig()
	cfg.DatasetRefresh.CronSchedule = "não é cron"

	service := NewDatasetRefreshService(&fakeRefresher{}, cfg)
	assert.Error(t, service.Start(context.Background()))
}

func TestRankingSnapshotService_UpdateRankingSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRanking := mocks.NewMockRankingService(ctrl)
	service := NewRankingSnapshotService(mockRanking, testConfig())

	mockRanking.EXPECT().
		SnapshotLatest(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return 12, nil
		})

	require.NoError(t, service.UpdateRankingSnapshot(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, 12, status["last_saved"])
	assert.Equal(t, false, status["sync_running"])

	mockRanking.EXPECT().
		SnapshotLatest(gomock.Any()).
		Return(3, errors.New("banco indisponível"))

	err := service.UpdateRankingSnapshot(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "banco indisponível", service.GetStatus()["last_error"])
	assert.Equal(t, 3, service.GetStatus()["last_saved"])
}

func TestRankingSnapshotService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRanking := mocks.NewMockRankingService(ctrl)
	service := NewRankingSnapshotService(mockRanking, testConfig())

	done := make(chan struct{})
	mockRanking.EXPECT().
		SnapshotLatest(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			close(done)
			return 1, nil
		})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("gravação manual não executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}
