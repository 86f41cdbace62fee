package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
)

type RankingSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// RankingSnapshotService grava o ranking do último mês da base para cada indicador
type RankingSnapshotService struct {
	scheduler           *gocron.Scheduler
	rankingService      ranking.RankingService
	config              RankingSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSaved           int
	lastError           string
}

func NewRankingSnapshotService(rankingService ranking.RankingService, cfg *config.Config) *RankingSnapshotService {
	snapshotConfig := RankingSnapshotConfig{
		CronSchedule: cfg.RankingSnapshot.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.RankingSnapshot.Enabled,      // Default: desabilitado
		Timeout:      cfg.RankingSnapshot.Timeout,
	}

	if snapshotConfig.Timeout <= 0 {
		snapshotConfig.Timeout = 2 * time.Minute
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de concessionárias carregada")

	return &RankingSnapshotService{
		scheduler:      gocron.NewScheduler(time.Local),
		rankingService: rankingService,
		config:         snapshotConfig,
	}
}

func (s *RankingSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de concessionárias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de concessionárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateRankingSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de concessionárias")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ranking de concessionárias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de concessionárias")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RankingSnapshotService) UpdateRankingSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de concessionárias já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização do ranking de concessionárias")

	runCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	saved, err := s.rankingService.SnapshotLatest(runCtx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSaved = saved
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithField("saved", saved).Info("Atualização do ranking de concessionárias concluída")

	return nil
}

// TriggerManualSync inicia manualmente a gravação do ranking
func (s *RankingSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ranking de concessionárias já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando gravação manual do ranking de concessionárias")
	go func() {
		if err := s.UpdateRankingSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na gravação manual do ranking de concessionárias")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RankingSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_saved":             s.lastSaved,
		"last_error":             s.lastError,
	}
}
