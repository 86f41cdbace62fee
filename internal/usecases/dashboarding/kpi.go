package dashboarding

import (
	"math"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

const noData = "—"

// MonthOverMonthChange compara os dois últimos meses da série.
// Indefinida com menos de dois meses ou quando o mês anterior é zero.
func MonthOverMonthChange(series []domain.MonthlyBucket) domain.MonthOverMonth {
	undefined := domain.MonthOverMonth{Formatted: noData}

	if len(series) < 2 {
		return undefined
	}

	prev := series[len(series)-2].Total
	cur := series[len(series)-1].Total

	if prev == 0 || math.IsNaN(prev) || math.IsInf(prev, 0) {
		return undefined
	}

	change := (cur - prev) / prev
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return undefined
	}

	return domain.MonthOverMonth{
		Change:    change,
		Formatted: formatPercent(change),
		Defined:   true,
	}
}

// DerivedRatio calcula numerador/denominador; denominador não positivo resulta em 0 sinalizado
func DerivedRatio(def domain.DerivedKPIDefinition, numerator, denominator float64) domain.DerivedKPI {
	kpi := domain.DerivedKPI{
		Name:            def.Name,
		Label:           def.Label,
		Numerator:       numerator,
		Denominator:     denominator,
		Value:           utils.Ratio(numerator, denominator),
		ZeroDenominator: !(denominator > 0),
	}

	if def.Percent {
		kpi.Formatted = formatPercent(kpi.Value)
	} else {
		kpi.Formatted = utils.FormatBRL(kpi.Value)
	}

	return kpi
}

func formatPercent(v float64) string {
	return utils.FormatBRL(v*100) + "%"
}
