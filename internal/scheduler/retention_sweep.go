// Package scheduler contém os serviços agendados de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/GomesTenorio/Hanami2025/internal/config"
)

// ExpiredFileRemover apaga arquivos anteriores a um instante
type ExpiredFileRemover interface {
	Dir() string
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type RetentionSweepConfig struct {
	CronSchedule  string
	Enabled       bool
	RetentionDays int
}

// RetentionSweepService remove uploads e relatórios exportados mais antigos que o período de retenção
type RetentionSweepService struct {
	scheduler           *gocron.Scheduler
	targets             []ExpiredFileRemover
	config              RetentionSweepConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemovedFiles    int
}

func NewRetentionSweepService(cfg *config.Config, targets ...ExpiredFileRemover) *RetentionSweepService {
	sweepConfig := RetentionSweepConfig{
		CronSchedule:  cfg.RetentionSweep.CronSchedule, // Default: 3h da manhã todos os dias
		Enabled:       cfg.RetentionSweep.Enabled,      // Default: desabilitado
		RetentionDays: cfg.RetentionSweep.Days,
	}
	if sweepConfig.RetentionDays <= 0 {
		sweepConfig.RetentionDays = 30
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  sweepConfig.CronSchedule,
		"retention_days": sweepConfig.RetentionDays,
	}).Info("Configuração da limpeza de arquivos carregada")

	return &RetentionSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		targets:   targets,
		config:    sweepConfig,
		now:       time.Now,
	}
}

func (s *RetentionSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de arquivos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de arquivos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Sweep(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de arquivos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de arquivos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de arquivos")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep remove os arquivos expirados de todos os diretórios e devolve o total removido.
// Uma execução concorrente é ignorada.
func (s *RetentionSweepService) Sweep(ctx context.Context) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza de arquivos já está em execução")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	removed := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastRemovedFiles = removed
		s.syncMutex.Unlock()
	}()

	cutoff := s.now().AddDate(0, 0, -s.config.RetentionDays)
	logrus.WithField("cutoff", cutoff.Format(time.DateTime)).Info("Iniciando limpeza de arquivos")

	for _, target := range s.targets {
		n, err := target.RemoveOlderThan(ctx, cutoff)
		removed += n
		if err != nil {
			logrus.WithError(err).WithField("dir", target.Dir()).Error("Erro ao limpar diretório")
			return removed, err
		}

		logrus.WithFields(logrus.Fields{
			"dir":     target.Dir(),
			"removed": n,
		}).Info("Diretório limpo")
	}

	logrus.WithField("removed", removed).Info("Limpeza de arquivos concluída")

	return removed, nil
}

// TriggerManualSync inicia manualmente uma limpeza de arquivos
func (s *RetentionSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de arquivos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de arquivos")
	go func() {
		if _, err := s.Sweep(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de arquivos")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RetentionSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_removed_files":     s.lastRemovedFiles,
	}
}
