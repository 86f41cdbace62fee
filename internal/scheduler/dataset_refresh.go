// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
)

// DatasetRefresher recarrega a base quando o arquivo de origem muda
type DatasetRefresher interface {
	Refresh() (bool, error)
}

type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService verifica periodicamente o arquivo exportado e troca a base em memória
// somente quando o conteúdo mudou
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	store               DatasetRefresher
	config              DatasetRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastChangedAt       time.Time
	lastError           string
}

func NewDatasetRefreshService(store DatasetRefresher, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule, // Default: a cada 5 minutos
		SyncEnabled:  cfg.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de recarga da base carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		store:     store,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga da base desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga da base")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RefreshDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga da base de serviços")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga da base: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga da base")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset executa uma verificação; retorna true quando a base foi trocada.
// Em caso de erro a base anterior continua em uso.
func (s *DatasetRefreshService) RefreshDataset() (bool, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga da base já está em execução")
		return false, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	changed, err := s.store.Refresh()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		return false, err
	}

	if changed {
		s.lastChangedAt = s.lastSyncCompletedAt
	}

	return changed, nil
}

// TriggerManualSync inicia manualmente uma verificação do arquivo
func (s *DatasetRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga da base já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual da base")
	go func() {
		if _, err := s.RefreshDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual da base")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_changed_at":        s.lastChangedAt,
		"last_error":             s.lastError,
	}
}
