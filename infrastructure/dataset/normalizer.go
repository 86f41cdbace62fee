package dataset

import (
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

// IndicatorCatalog resolve nomes e IDs numéricos de indicadores
type IndicatorCatalog interface {
	Lookup(name string) (domain.IndicatorDefinition, bool)
	LookupID(id string) (domain.IndicatorDefinition, bool)
	Validate(indicators []string) []string
}

// LoadReport resume os problemas por linha encontrados na carga; nenhum deles descarta a linha
type LoadReport struct {
	Rows              int      `json:"rows"`
	InvalidAmounts    int      `json:"invalid_amounts"`
	InvalidDates      int      `json:"invalid_dates"`
	EmptyDealers      int      `json:"empty_dealers"`
	UnknownIndicators []string `json:"unknown_indicators,omitempty"`
	Encoding          string   `json:"encoding"`
	Delimiter         string   `json:"delimiter"`
}

// Normalizer transforma linhas brutas do CSV em ServiceRecord
type Normalizer struct {
	columns          columnIndex
	catalog          IndicatorCatalog
	decimalSeparator rune
	width            int
}

func newNormalizer(columns columnIndex, catalog IndicatorCatalog, decimalSeparator rune, width int) *Normalizer {
	if decimalSeparator == 0 {
		decimalSeparator = ','
	}

	return &Normalizer{
		columns:          columns,
		catalog:          catalog,
		decimalSeparator: decimalSeparator,
		width:            width,
	}
}

// Normalize converte uma linha. Valor inválido vira 0 e data inválida fica vazia;
// a linha é sempre mantida e o problema contabilizado no relatório.
func (n *Normalizer) Normalize(line int, row []string, report *LoadReport) domain.ServiceRecord {
	raw := make([]string, n.width)
	copy(raw, row)

	record := domain.ServiceRecord{
		Line:         line,
		DealerKey:    n.columns.value(row, FieldDealer),
		Indicator:    n.resolveIndicator(n.columns.value(row, FieldIndicator)),
		SubIndicator: n.columns.value(row, FieldSubIndicator),
		Group:        n.columns.value(row, FieldGroup),
		Region:       n.columns.value(row, FieldRegion),
		Raw:          raw,
	}

	amount, ok := utils.ParseAmount(n.columns.value(row, FieldAmount), n.decimalSeparator)
	if !ok {
		report.InvalidAmounts++
		amount = 0
	}
	record.Amount = amount

	if period, err := utils.ParseDayFirstDate(n.columns.value(row, FieldPeriod)); err == nil {
		record.Period = period
	} else {
		report.InvalidDates++
	}

	if record.DealerKey == "" {
		report.EmptyDealers++
	}

	return record
}

// resolveIndicator troca IDs numéricos (metrica_id) e grafias alternativas pelo nome do catálogo
func (n *Normalizer) resolveIndicator(value string) string {
	if value == "" || n.catalog == nil {
		return value
	}

	if def, ok := n.catalog.LookupID(value); ok {
		return def.Name
	}

	if def, ok := n.catalog.Lookup(value); ok {
		return def.Name
	}

	return value
}
