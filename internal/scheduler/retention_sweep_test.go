package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GomesTenorio/Hanami2025/infrastructure/storage"
	"github.com/GomesTenorio/Hanami2025/internal/config"
)

type fakeRemover struct {
	dir     string
	removed int
	err     error
	block   chan struct{}
	cutoffs []time.Time
}

func (f *fakeRemover) Dir() string { return f.dir }

func (f *fakeRemover) RemoveOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	if f.block != nil {
		<-f.block
	}
	return f.removed, f.err
}

func newConfig(enabled bool, days int) *config.Config {
	cfg := &config.Config{}
	cfg.RetentionSweep.Enabled = enabled
	cfg.RetentionSweep.CronSchedule = "0 3 * * *"
	cfg.RetentionSweep.Days = days
	return cfg
}

func TestRetentionSweepService_Sweep(t *testing.T) {
	now := time.Date(2024, 5, 31, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     int
		targets  func(t *testing.T) []ExpiredFileRemover
		validate func(t *testing.T, removed int, err error, service *RetentionSweepService)
	}{
		{
			name: "Remove arquivos expirados de todos os diretórios",
			days: 30,
			targets: func(t *testing.T) []ExpiredFileRemover {
				uploads, exports := t.TempDir(), t.TempDir()
				writeFile(t, uploads, "antigo.csv", now.AddDate(0, 0, -31))
				writeFile(t, uploads, "novo.csv", now.AddDate(0, 0, -1))
				writeFile(t, exports, "report_antigo.pdf", now.AddDate(0, -3, 0))
				return []ExpiredFileRemover{storage.NewFileStore(uploads), storage.NewFileStore(exports)}
			},
			validate: func(t *testing.T, removed int, err error, service *RetentionSweepService) {
				require.NoError(t, err)
				assert.Equal(t, 2, removed)

				status := service.GetStatus()
				assert.Equal(t, 2, status["last_removed_files"])
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, now, status["last_sync_completed_at"])
			},
		},
		{
			name: "Retenção não configurada usa 30 dias",
			days: 0,
			targets: func(t *testing.T) []ExpiredFileRemover {
				return []ExpiredFileRemover{&fakeRemover{dir: "uploads"}}
			},
			validate: func(t *testing.T, removed int, err error, service *RetentionSweepService) {
				require.NoError(t, err)
				remover := service.targets[0].(*fakeRemover)
				require.Len(t, remover.cutoffs, 1)
				assert.Equal(t, now.AddDate(0, 0, -30), remover.cutoffs[0])
				assert.Equal(t, 30, service.GetStatus()["retention_days"])
			},
		},
		{
			name: "Erro em um diretório interrompe a limpeza",
			days: 7,
			targets: func(t *testing.T) []ExpiredFileRemover {
				return []ExpiredFileRemover{
					&fakeRemover{dir: "uploads", removed: 1, err: errors.New("permissão negada")},
					&fakeRemover{dir: "exports", removed: 5},
				}
			},
			validate: func(t *testing.T, removed int, err error, service *RetentionSweepService) {
				assert.EqualError(t, err, "permissão negada")
				assert.Equal(t, 1, removed)
				assert.Empty(t, service.targets[1].(*fakeRemover).cutoffs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewRetentionSweepService(newConfig(false, tt.days), tt.targets(t)...)
			service.now = func() time.Time { return now }

			removed, err := service.Sweep(context.Background())
			tt.validate(t, removed, err, service)
		})
	}
}

func TestRetentionSweepService_SkipsConcurrentRun(t *testing.T) {
	blocking := &fakeRemover{dir: "uploads", removed: 3, block: make(chan struct{})}
	service := NewRetentionSweepService(newConfig(false, 30), blocking)

	done := make(chan int)
	go func() {
		removed, _ := service.Sweep(context.Background())
		done <- removed
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == true
	}, time.Second, 5*time.Millisecond)

	removed, err := service.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, removed, "execução concorrente é ignorada")

	close(blocking.block)
	assert.Equal(t, 3, <-done)
	assert.Equal(t, false, service.GetStatus()["sync_running"])
}

func TestRetentionSweepService_TriggerManualSync(t *testing.T) {
	remover := &fakeRemover{dir: "exports", removed: 4}
	service := NewRetentionSweepService(newConfig(false, 30), remover)

	service.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_removed_files"] == 4
	}, time.Second, 5*time.Millisecond)
}

func TestRetentionSweepService_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := NewRetentionSweepService(newConfig(false, 30))
	assert.NoError(t, disabled.Start(ctx))

	invalid := newConfig(true, 30)
	invalid.RetentionSweep.CronSchedule = "não é cron"
	assert.Error(t, NewRetentionSweepService(invalid).Start(ctx))

	enabled := NewRetentionSweepService(newConfig(true, 30))
	require.NoError(t, enabled.Start(ctx))
	assert.Equal(t, true, enabled.GetStatus()["sync_enabled"])
	assert.Equal(t, "0 3 * * *", enabled.GetStatus()["sync_cron"])
}

func writeFile(t *testing.T, dir, name string, modTime time.Time) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}
