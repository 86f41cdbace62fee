package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/dataset"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, area string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Errorf("%s: erro ao codificar resposta", area)
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato padrão da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, area string, err error) {
	var dashErr *dashboarding.DashboardError
	switch {
	case errors.As(err, &dashErr):
		logger.WithError(err).Warnf("%s: requisição recusada", area)
		apiErrors.WriteError(w, dashErr.Code, dashErr.Details, nil)
	case errors.Is(err, ranking.ErrIndicatorRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o indicador", nil)
	case errors.Is(err, ranking.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use o formato mm-yyyy (ex: 01-2024)", nil)
	case dataset.IsLoadError(err):
		logger.WithError(err).Errorf("%s: falha na carga da base", area)
		apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, err.Error(), nil)
	default:
		logger.WithError(err).Errorf("%s: erro inesperado", area)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a requisição", nil)
	}
}
