package domain

import (
	"fmt"
	"strings"
)

// IndicatorKind classifica o indicador como estoque (snapshot) ou fluxo (flow)
type IndicatorKind string

const (
	// IndicatorSnapshot representa um estoque em um ponto do tempo; somar entre meses é inválido
	IndicatorSnapshot IndicatorKind = "snapshot"
	// IndicatorFlow representa a atividade do período; a soma é a agregação natural
	IndicatorFlow IndicatorKind = "flow"
)

// ParseIndicatorKind interpreta o tipo do indicador vindo de configuração
func ParseIndicatorKind(s string) (IndicatorKind, error) {
	switch IndicatorKind(strings.ToLower(strings.TrimSpace(s))) {
	case IndicatorSnapshot, "estoque":
		return IndicatorSnapshot, nil
	case IndicatorFlow, "fluxo":
		return IndicatorFlow, nil
	}

	return "", fmt.Errorf("tipo de indicador inválido: %q", s)
}

// AggregationMode define como a série mensal é reduzida ao valor principal
type AggregationMode string

const (
	AggregationMean AggregationMode = "mean"
	AggregationLast AggregationMode = "last"
	AggregationMax  AggregationMode = "max"
	AggregationSum  AggregationMode = "sum"
)

// AllowedModes retorna os modos de agregação aceitos para o tipo de indicador.
// O primeiro modo da lista é o padrão.
func (k IndicatorKind) AllowedModes() []AggregationMode {
	if k == IndicatorFlow {
		return []AggregationMode{AggregationSum, AggregationMean}
	}

	return []AggregationMode{AggregationMean, AggregationLast, AggregationMax}
}

// DefaultMode retorna o modo padrão do tipo de indicador
func (k IndicatorKind) DefaultMode() AggregationMode {
	return k.AllowedModes()[0]
}

// Allows indica se o modo é válido para o tipo de indicador
func (k IndicatorKind) Allows(mode AggregationMode) bool {
	for _, m := range k.AllowedModes() {
		if m == mode {
			return true
		}
	}
	return false
}

// Label retorna o sufixo exibido junto ao valor principal
func (m AggregationMode) Label(kind IndicatorKind) string {
	switch m {
	case AggregationMean:
		if kind == IndicatorFlow {
			return " (média mensal)"
		}
		return " (média)"
	case AggregationLast:
		return " (último mês)"
	case AggregationMax:
		return " (máximo)"
	case AggregationSum:
		return " (soma período)"
	}
	return ""
}

// IndicatorDefinition descreve um indicador conhecido do catálogo
type IndicatorDefinition struct {
	ID    string        `json:"id,omitempty" mapstructure:"id"`
	Name  string        `json:"name" mapstructure:"name"`
	Label string        `json:"label" mapstructure:"label"`
	Kind  IndicatorKind `json:"kind" mapstructure:"kind"`
}

// DisplayLabel retorna o rótulo de exibição, caindo para o nome quando não configurado
func (d IndicatorDefinition) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// DerivedKPIDefinition descreve uma razão entre dois indicadores (ex.: ticket médio)
type DerivedKPIDefinition struct {
	Name        string `json:"name" mapstructure:"name"`
	Label       string `json:"label" mapstructure:"label"`
	Numerator   string `json:"numerator" mapstructure:"numerator"`
	Denominator string `json:"denominator" mapstructure:"denominator"`
	Percent     bool   `json:"percent" mapstructure:"percent"`
}
