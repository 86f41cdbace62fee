package dashboarding

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

// ResolveMode valida o modo escolhido contra o tipo do indicador; vazio assume o padrão do tipo
func ResolveMode(kind domain.IndicatorKind, mode domain.AggregationMode) (domain.AggregationMode, error) {
	if mode == "" {
		return kind.DefaultMode(), nil
	}

	if !kind.Allows(mode) {
		return "", fmt.Errorf("%w: %q não se aplica a indicadores %s", ErrInvalidAggregationMode, mode, kind)
	}

	return mode, nil
}

// reduceSeries reduz a série mensal conforme o modo; série vazia não tem valor
func reduceSeries(series []domain.MonthlyBucket, mode domain.AggregationMode) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}

	switch mode {
	case domain.AggregationLast:
		return series[len(series)-1].Total, true

	case domain.AggregationMax:
		highest := series[0].Total
		for _, b := range series[1:] {
			if b.Total > highest {
				highest = b.Total
			}
		}
		return highest, true

	case domain.AggregationSum:
		sum := 0.0
		for _, b := range series {
			sum += b.Total
		}
		return sum, true
	}

	sum := 0.0
	for _, b := range series {
		sum += b.Total
	}
	return sum / float64(len(series)), true
}

// BuildHeadline calcula o valor principal do indicador. Estoques nunca são somados entre meses.
func BuildHeadline(def domain.IndicatorDefinition, series []domain.MonthlyBucket, mode domain.AggregationMode) (domain.Headline, error) {
	mode, err := ResolveMode(def.Kind, mode)
	if err != nil {
		return domain.Headline{}, err
	}

	headline := domain.Headline{
		Label:     def.DisplayLabel() + mode.Label(def.Kind),
		Mode:      mode,
		Formatted: noData,
	}

	value, ok := reduceSeries(series, mode)
	if !ok {
		return headline, nil
	}

	headline.Value = value
	headline.Available = true
	headline.Formatted = utils.FormatBRL(value)

	return headline, nil
}

// RankDealers agrega por concessionária. Estoque: soma por (dealer, mês) e média entre os meses.
// Fluxo: soma no período. Ordem decrescente de valor, empates pela chave em ordem crescente.
func RankDealers(records []domain.ServiceRecord, kind domain.IndicatorKind) []domain.DealerRanking {
	values := make(map[string]float64)

	if kind == domain.IndicatorFlow {
		for _, r := range records {
			if !r.HasPeriod() {
				continue
			}
			values[r.DealerKey] += r.Amount
		}
	} else {
		cells := make(map[string]map[time.Time]float64)
		for _, r := range records {
			if !r.HasPeriod() {
				continue
			}
			if cells[r.DealerKey] == nil {
				cells[r.DealerKey] = make(map[time.Time]float64)
			}
			cells[r.DealerKey][domain.MonthStart(r.Period)] += r.Amount
		}

		for dealer, months := range cells {
			sum := 0.0
			for _, v := range months {
				sum += v
			}
			values[dealer] = sum / float64(len(months))
		}
	}

	ranking := make([]domain.DealerRanking, 0, len(values))
	for dealer, v := range values {
		ranking = append(ranking, domain.DealerRanking{DealerKey: dealer, Value: v})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Value != ranking[j].Value {
			return ranking[i].Value > ranking[j].Value
		}
		return ranking[i].DealerKey < ranking[j].DealerKey
	})

	return ranking
}

// TopN limita o ranking às n primeiras posições; n <= 0 mantém todas
func TopN(ranking []domain.DealerRanking, n int) []domain.DealerRanking {
	if n <= 0 || len(ranking) <= n {
		return ranking
	}
	return ranking[:n]
}
