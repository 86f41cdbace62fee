package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-kpi-api/infrastructure/repository"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

const monthLayout = "01-2006"

//go:generate mockgen -source=service.go -destination=mocks/ranking_service.go -package=mocks
type RankingService interface {
	// GetRankingHistory retorna o ranking gravado; mês vazio usa o mais recente
	GetRankingHistory(indicator string, month string) (*domain.RankingSnapshotResponse, error)

	// SnapshotMonth calcula e grava o ranking de um indicador em um mês
	SnapshotMonth(ctx context.Context, indicator string, month time.Time) ([]*domain.RankingSnapshotItem, error)

	// SnapshotLatest grava o ranking do último mês da base para todos os indicadores
	SnapshotLatest(ctx context.Context) (int, error)

	// Backfill grava o ranking de todos os meses da base, do mais antigo ao mais recente
	Backfill(ctx context.Context) (int, error)
}

// IndicatorResolver traduz o indicador pedido para o nome canônico gravado no ranking
type IndicatorResolver interface {
	Resolve(name string) domain.IndicatorDefinition
}

type DealerRankingService struct {
	dashboard         dashboarding.Dashboarder
	dealerRankingRepo repository.DealerRankingRepository
	catalog           IndicatorResolver
	excludeOutliers   bool
}

func NewDealerRankingService(
	dashboard dashboarding.Dashboarder,
	dealerRankingRepo repository.DealerRankingRepository,
	catalog IndicatorResolver,
	excludeOutliers bool,
) RankingService {
	return &DealerRankingService{
		dashboard:         dashboard,
		dealerRankingRepo: dealerRankingRepo,
		catalog:           catalog,
		excludeOutliers:   excludeOutliers,
	}
}

func (s *DealerRankingService) GetRankingHistory(indicator string, month string) (*domain.RankingSnapshotResponse, error) {
	if strings.TrimSpace(indicator) == "" {
		return nil, ErrIndicatorRequired
	}

	// snapshots são gravados com o nome do catálogo
	indicator = s.catalog.Resolve(indicator).Name

	if month == "" {
		latest, err := s.dealerRankingRepo.GetLatestMonth(indicator)
		if err != nil {
			return nil, err
		}
		if latest == "" {
			return &domain.RankingSnapshotResponse{
				Indicator: indicator,
				Ranking:   []domain.RankingSnapshotItem{},
			}, nil
		}
		month = latest
	} else if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	return s.dealerRankingRepo.GetRanking(indicator, month)
}

func (s *DealerRankingService) SnapshotMonth(ctx context.Context, indicator string, month time.Time) ([]*domain.RankingSnapshotItem, error) {
	if indicator == "" {
		return nil, ErrIndicatorRequired
	}

	start := domain.MonthStart(month)
	end := start.AddDate(0, 1, -1)

	params := domain.NewFilterParams(indicator)
	params.ExcludeOutliers = s.excludeOutliers
	params.StartDate = &start
	params.EndDate = &end
	params.TopN = -1

	result, err := s.dashboard.Dashboard(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(result.Ranking) == 0 {
		return []*domain.RankingSnapshotItem{}, nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	name := result.Indicator.Name
	current := utils.FormatPeriod(start)
	previous := utils.FormatPeriod(start.AddDate(0, -1, 0))

	rankingsBeforeUpdate, err := s.dealerRankingRepo.GetPositions(name, previous)
	if err != nil {
		return nil, err
	}

	updatedRankings := make([]*domain.RankingSnapshotItem, 0, len(result.Ranking))
	for _, r := range result.Ranking {
		updatedRankings = append(updatedRankings, &domain.RankingSnapshotItem{
			RunID:     runID,
			Indicator: name,
			Month:     current,
			DealerKey: r.DealerKey,
			Value:     utils.RoundWithTwoDecimalPlace(r.Value),
		})
	}

	updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.dealerRankingRepo.SaveOrUpdateRanking(updatedRankings); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"indicator": name,
		"month":     current,
		"run_id":    runID,
		"dealers":   len(updatedRankings),
	}).Info("Ranking de concessionárias gravado")

	return updatedRankings, nil
}

func (s *DealerRankingService) SnapshotLatest(ctx context.Context) (int, error) {
	periods, err := s.dashboard.AvailablePeriods(ctx)
	if err != nil {
		return 0, err
	}

	if len(periods.Periods) == 0 {
		logrus.Info("Nenhum mês com dados para gravar o ranking")
		return 0, nil
	}

	return s.snapshotPeriods(ctx, periods.Periods[len(periods.Periods)-1:])
}

func (s *DealerRankingService) Backfill(ctx context.Context) (int, error) {
	periods, err := s.dashboard.AvailablePeriods(ctx)
	if err != nil {
		return 0, err
	}

	return s.snapshotPeriods(ctx, periods.Periods)
}

// snapshotPeriods grava os meses em ordem cronológica para que a variação de posição use o mês anterior já gravado
func (s *DealerRankingService) snapshotPeriods(ctx context.Context, periods []string) (int, error) {
	indicators, err := s.dashboard.Indicators(ctx)
	if err != nil {
		return 0, err
	}

	saved := 0
	var errs []error

	for _, period := range periods {
		month, err := time.Parse(monthLayout, period)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMonth, period))
			continue
		}

		for _, indicator := range indicators {
			if err := ctx.Err(); err != nil {
				return saved, err
			}

			items, err := s.SnapshotMonth(ctx, indicator.Name, month)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"indicator": indicator.Name,
					"month":     period,
				}).Error("Erro ao gravar ranking de concessionárias")
				errs = append(errs, err)
				continue
			}
			saved += len(items)
		}
	}

	return saved, errors.Join(errs...)
}

// updatePositions ordena por valor (empates pela chave) e compara com as posições do mês anterior
func updatePositions(
	updatedRankings []*domain.RankingSnapshotItem,
	rankingsBeforeUpdate map[string]*domain.RankingSnapshotItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		if updatedRankings[i].Value != updatedRankings[j].Value {
			return updatedRankings[i].Value > updatedRankings[j].Value
		}
		return updatedRankings[i].DealerKey < updatedRankings[j].DealerKey
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		rankingBefore, exists := rankingsBeforeUpdate[ranking.DealerKey]
		if exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}
