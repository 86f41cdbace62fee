package domain

import "time"

// FilterParams reúne todas as seleções do usuário; cada etapa do pipeline recebe esse valor explicitamente
type FilterParams struct {
	Indicator       string
	StartDate       *time.Time
	EndDate         *time.Time
	Dealers         []string
	Regions         []string
	Groups          []string
	ExcludeOutliers bool
	Mode            AggregationMode
	TopN            int
}

// NewFilterParams cria os parâmetros padrão para um indicador: todos os dealers e exclusão de outliers ligada
func NewFilterParams(indicator string) FilterParams {
	return FilterParams{
		Indicator:       indicator,
		ExcludeOutliers: true,
	}
}

// FilterOptions são os valores distintos disponíveis para os filtros de seleção
type FilterOptions struct {
	Dealers []string `json:"dealers"`
	Regions []string `json:"regions"`
	Groups  []string `json:"groups"`
}
