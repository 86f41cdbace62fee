package handler

import (
	"net/http"

	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
)

// DatasetRefresher recarrega a base quando o arquivo de origem mudou
type DatasetRefresher interface {
	RefreshDataset() (bool, error)
}

// RefreshDataset força a verificação do arquivo de origem e responde com o resumo da base em uso
func RefreshDataset(refresher DatasetRefresher, source dashboarding.DatasetSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if refresher == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga da base não disponível", nil)
			return
		}

		changed, err := refresher.RefreshDataset()
		if err != nil {
			writeServiceError(w, logger, "dataset-refresh", err)
			return
		}

		logger.WithField("changed", changed).Info("dataset-refresh: verificação concluída")

		writeJSON(w, logger, "dataset-refresh", map[string]any{
			"changed": changed,
			"dataset": datasetSummary(source),
		})
	})
}

func datasetSummary(source dashboarding.DatasetSource) map[string]any {
	if source == nil {
		return map[string]any{"loaded": false}
	}

	ds := source.Current()
	if ds == nil {
		return map[string]any{"loaded": false}
	}

	return map[string]any{
		"loaded":    true,
		"source":    ds.Source,
		"hash":      ds.Hash,
		"rows":      len(ds.Records),
		"loaded_at": ds.LoadedAt,
		"report":    ds.Report,
	}
}
