package catalog

import "github.com/vfg2006/dealer-kpi-api/internal/domain"

const (
	ObsoleteStock = "R$ Estoque Obsoleto"
	TotalStock    = "Estoque Total R$"
	Revenue       = "Faturamento"
	PassCount     = "Qtd. Passagens"
)

// DefaultIndicators é a classificação usada pelo painel de serviços
func DefaultIndicators() []domain.IndicatorDefinition {
	return []domain.IndicatorDefinition{
		// Estoque / capacidade no mês: média, último mês ou máximo
		{Name: ObsoleteStock, Kind: domain.IndicatorSnapshot},
		{Name: TotalStock, Kind: domain.IndicatorSnapshot},
		{Name: "Dias Espera", Kind: domain.IndicatorSnapshot},
		{Name: "Qtd. Atual", Kind: domain.IndicatorSnapshot},
		{Name: "Box (S/Elevador)", Kind: domain.IndicatorSnapshot},
		{Name: "Box (C/Elevador)", Kind: domain.IndicatorSnapshot},
		{Name: "Box Quick Service", Kind: domain.IndicatorSnapshot},
		{Name: "Qtd. Pneus", Kind: domain.IndicatorSnapshot},

		// Fluxo do mês: soma no período
		{Name: Revenue, Kind: domain.IndicatorFlow},
		{Name: "Faturamento Car Care", Kind: domain.IndicatorFlow},
		{Name: "Faturamento de Peças", Kind: domain.IndicatorFlow},
		{Name: "Faturamento de MDO", Kind: domain.IndicatorFlow},
		{Name: "Qtd. Revisões", Kind: domain.IndicatorFlow},
		{Name: PassCount, Kind: domain.IndicatorFlow},
		{Name: "Qtd. Passagens CPUS", Kind: domain.IndicatorFlow},
		{Name: "Qtd. Passagens Internas", Kind: domain.IndicatorFlow},
		{Name: "Qtd. de Sanitização / Hig. Ar-Cond.", Kind: domain.IndicatorFlow},
		{Name: "Qtd de Alinh. e/ou", Kind: domain.IndicatorFlow},
		{Name: "Qtd. Car Care", Kind: domain.IndicatorFlow},
	}
}

// DefaultDerivedKPIs são as razões exibidas junto ao painel
func DefaultDerivedKPIs() []domain.DerivedKPIDefinition {
	return []domain.DerivedKPIDefinition{
		{Name: "ticket_medio", Label: "Ticket Médio", Numerator: Revenue, Denominator: PassCount},
		{Name: "obsolescencia", Label: "% Obsolescência", Numerator: ObsoleteStock, Denominator: TotalStock, Percent: true},
	}
}
