package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetRefresh  = "dataset-refresh"
	CronJobTypeRankingSnapshot = "ranking-snapshot"
	CronJobTypeAll             = "all"
)

// CronJob é uma tarefa agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente.
// Campos nil indicam serviço desligado.
type CronJobServices struct {
	DatasetRefreshService  CronJob
	RankingSnapshotService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetRefresh:
			if services.DatasetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerFailure, "Serviço de recarga da base não disponível", nil)
				return
			}
			services.DatasetRefreshService.TriggerManualSync()

		case CronJobTypeRankingSnapshot:
			if services.RankingSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrHistoryDisabled, "Histórico de ranking desativado: configure DATABASE_URL", nil)
				return
			}
			services.RankingSnapshotService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DatasetRefreshService != nil {
				services.DatasetRefreshService.TriggerManualSync()
			}
			if services.RankingSnapshotService != nil {
				services.RankingSnapshotService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-refresh, ranking-snapshot, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, logger, "cron", map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.DatasetRefreshService != nil {
			status[CronJobTypeDatasetRefresh] = services.DatasetRefreshService.GetStatus()
		}
		if services.RankingSnapshotService != nil {
			status[CronJobTypeRankingSnapshot] = services.RankingSnapshotService.GetStatus()
		}

		writeJSON(w, logger, "cron-status", status)
	})
}
