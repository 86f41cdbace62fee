package domain

import "time"

// MonthlyBucket é o total de um mês, identificado pelo primeiro dia do mês
type MonthlyBucket struct {
	MonthStart time.Time `json:"month_start"`
	Total      float64   `json:"total"`
}

// DealerRanking é o valor agregado de uma concessionária no período filtrado
type DealerRanking struct {
	DealerKey string  `json:"dealer_key"`
	Value     float64 `json:"value"`
}

// Headline é o valor principal do indicador conforme o modo de agregação.
// Available falso significa "sem dados", nunca zero.
type Headline struct {
	Label     string          `json:"label"`
	Value     float64         `json:"value"`
	Formatted string          `json:"formatted"`
	Mode      AggregationMode `json:"mode"`
	Available bool            `json:"available"`
}

// MonthOverMonth é a variação entre os dois últimos meses da série
type MonthOverMonth struct {
	Change    float64 `json:"change"`
	Formatted string  `json:"formatted"`
	Defined   bool    `json:"defined"`
}

// DerivedKPI é uma razão entre dois escalares já agregados
type DerivedKPI struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Value       float64 `json:"value"`
	Formatted   string  `json:"formatted"`
	// ZeroDenominator sinaliza que o valor 0 veio da convenção de divisão por zero
	ZeroDenominator bool `json:"zero_denominator"`
}

// OutlierAudit registra o que o filtro IQR removeu da fatia atual
type OutlierAudit struct {
	Applied    bool     `json:"applied"`
	Removed    int      `json:"removed"`
	LowerBound *float64 `json:"lower_bound,omitempty"`
	UpperBound *float64 `json:"upper_bound,omitempty"`
}

// DashboardResult é a saída completa do pipeline para uma seleção de filtros
type DashboardResult struct {
	Indicator      IndicatorDefinition `json:"indicator"`
	Headline       Headline            `json:"headline"`
	MonthOverMonth MonthOverMonth      `json:"month_over_month"`
	MonthCount     int                 `json:"month_count"`
	Series         []MonthlyBucket     `json:"series"`
	Ranking        []DealerRanking     `json:"ranking"`
	DerivedKPIs    []DerivedKPI        `json:"derived_kpis,omitempty"`
	Outliers       OutlierAudit        `json:"outliers"`
	RowCount       int                 `json:"row_count"`
	Notes          []string            `json:"notes,omitempty"`
	Rows           []ServiceRecord     `json:"-"`
}
