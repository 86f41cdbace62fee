package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/ranking"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
	"github.com/vfg2006/dealer-kpi-api/pkg/middleware"
)

// GetRankingHistory retorna o ranking mensal gravado de um indicador, com a variação de posição
func GetRankingHistory(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrHistoryDisabled, "Histórico de ranking desativado: configure DATABASE_URL", nil)
			return
		}

		indicator := strings.TrimSpace(r.URL.Query().Get("indicator"))
		month := strings.TrimSpace(r.URL.Query().Get("month"))

		dealers, err := middleware.ScopeDealers(r.Context(), queryList(r.URL.Query(), "dealer"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Concessionária fora do seu escopo de acesso", nil)
			return
		}

		logger.WithFields(log.Fields{
			"indicator": indicator,
			"month":     month,
		}).Info("ranking-history: buscando ranking gravado")

		history, err := service.GetRankingHistory(indicator, month)
		if err != nil {
			writeServiceError(w, logger, "ranking-history", err)
			return
		}

		if len(dealers) > 0 {
			history = onlyDealers(history, dealers)
		}

		logger.WithFields(log.Fields{
			"indicator": history.Indicator,
			"month":     history.Month,
			"dealers":   len(history.Ranking),
		}).Info("ranking-history: ranking recuperado com sucesso")

		writeJSON(w, logger, "ranking-history", history)
	})
}

// onlyDealers mantém as posições do ranking geral apenas para as concessionárias selecionadas
func onlyDealers(history *domain.RankingSnapshotResponse, dealers []string) *domain.RankingSnapshotResponse {
	selected := make(map[string]bool, len(dealers))
	for _, dealer := range dealers {
		selected[strings.ToUpper(strings.TrimSpace(dealer))] = true
	}

	filtered := *history
	filtered.Ranking = make([]domain.RankingSnapshotItem, 0, len(dealers))
	for _, item := range history.Ranking {
		if selected[strings.ToUpper(strings.TrimSpace(item.DealerKey))] {
			filtered.Ranking = append(filtered.Ranking, item)
		}
	}

	return &filtered
}
