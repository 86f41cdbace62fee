package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

// DashboardOptions são os valores usados quando a requisição não informa o filtro
type DashboardOptions struct {
	DefaultIndicator string
	ExcludeOutliers  bool
}

// parseFilterParams converte a query string em FilterParams.
// Listas aceitam valores repetidos (?dealer=A&dealer=B) ou separados por vírgula (?dealer=A,B).
func parseFilterParams(query url.Values, options DashboardOptions) (domain.FilterParams, error) {
	indicator := strings.TrimSpace(query.Get("indicator"))
	if indicator == "" {
		indicator = options.DefaultIndicator
	}

	params := domain.NewFilterParams(indicator)
	params.ExcludeOutliers = options.ExcludeOutliers
	params.Dealers = queryList(query, "dealer")
	params.Regions = queryList(query, "region")
	params.Groups = queryList(query, "group")

	startDate, err := utils.ParseDate(query.Get("start"))
	if err != nil {
		return params, fmt.Errorf("start: %w", err)
	}
	params.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get("end"))
	if err != nil {
		return params, fmt.Errorf("end: %w", err)
	}
	params.EndDate = endDate

	if raw := query.Get("outliers"); raw != "" {
		exclude, err := strconv.ParseBool(raw)
		if err != nil {
			return params, fmt.Errorf("outliers: valor booleano inválido %q", raw)
		}
		params.ExcludeOutliers = exclude
	}

	if raw := query.Get("mode"); raw != "" {
		params.Mode = domain.AggregationMode(strings.ToLower(strings.TrimSpace(raw)))
	}

	if raw := query.Get("top"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("top: número inválido %q", raw)
		}
		params.TopN = top
	}

	return params, nil
}

func queryList(query url.Values, key string) []string {
	var values []string
	for _, raw := range query[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}
