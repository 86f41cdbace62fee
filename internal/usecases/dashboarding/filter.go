package dashboarding

import (
	"strings"
	"time"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

// FilterRecords aplica indicador, intervalo de datas (inclusivo) e as seleções de dealer, região e grupo.
// Seleções vazias significam "todos". Com intervalo de datas, linhas sem data ficam de fora.
func FilterRecords(records []domain.ServiceRecord, params domain.FilterParams) []domain.ServiceRecord {
	indicator := domain.NormalizeIndicatorName(params.Indicator)
	dealers := toSet(params.Dealers)
	regions := toSet(params.Regions)
	groups := toSet(params.Groups)

	var start, end time.Time
	if params.StartDate != nil && !params.StartDate.IsZero() {
		start = dayOf(*params.StartDate)
	}
	if params.EndDate != nil && !params.EndDate.IsZero() {
		end = dayOf(*params.EndDate)
	}

	out := make([]domain.ServiceRecord, 0)
	for _, r := range records {
		if indicator != "" && domain.NormalizeIndicatorName(r.Indicator) != indicator {
			continue
		}

		if !start.IsZero() || !end.IsZero() {
			if !r.HasPeriod() {
				continue
			}
			day := dayOf(r.Period)
			if !start.IsZero() && day.Before(start) {
				continue
			}
			if !end.IsZero() && day.After(end) {
				continue
			}
		}

		if !matches(dealers, r.DealerKey) || !matches(regions, r.Region) || !matches(groups, r.Group) {
			continue
		}

		out = append(out, r)
	}

	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	return set
}

func matches(set map[string]bool, value string) bool {
	return len(set) == 0 || set[value]
}
