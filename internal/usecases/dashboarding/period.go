package dashboarding

import (
	"sort"
	"time"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

// BucketByMonth soma os valores por mês (primeiro dia do mês), em ordem cronológica.
// Linhas sem data não entram na série.
func BucketByMonth(records []domain.ServiceRecord) []domain.MonthlyBucket {
	totals := make(map[time.Time]float64)
	for _, r := range records {
		if !r.HasPeriod() {
			continue
		}
		totals[domain.MonthStart(r.Period)] += r.Amount
	}

	series := make([]domain.MonthlyBucket, 0, len(totals))
	for month, total := range totals {
		series = append(series, domain.MonthlyBucket{MonthStart: month, Total: total})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].MonthStart.Before(series[j].MonthStart)
	})

	return series
}

// countUndated conta as linhas que ficaram fora da série por falta de data
func countUndated(records []domain.ServiceRecord) int {
	n := 0
	for _, r := range records {
		if !r.HasPeriod() {
			n++
		}
	}
	return n
}
