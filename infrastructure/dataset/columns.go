package dataset

import (
	"strings"

	"github.com/vfg2006/dealer-kpi-api/internal/config"
)

// Field é um campo lógico do registro de serviço
type Field string

const (
	FieldPeriod       Field = "period"
	FieldIndicator    Field = "indicator"
	FieldSubIndicator Field = "sub_indicator"
	FieldAmount       Field = "amount"
	FieldDealer       Field = "dealer"
	FieldGroup        Field = "group"
	FieldRegion       Field = "region"
)

var requiredFields = []Field{FieldPeriod, FieldIndicator, FieldAmount, FieldDealer}

// dotDecimalColumns são colunas de valor já limpas pela exportação, sempre com ponto decimal
var dotDecimalColumns = map[string]bool{"realizado_num": true}

// ColumnMapping associa cada campo aos nomes de coluna aceitos, em ordem de preferência
type ColumnMapping map[Field][]string

// DefaultColumnMapping cobre os nomes observados nas exportações conhecidas
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		FieldPeriod:       {"periodo_dt", "periodo"},
		FieldIndicator:    {"titulo", "metrica_id"},
		FieldSubIndicator: {"sub_titulo"},
		FieldAmount:       {"realizado_num", "realizado"},
		FieldDealer:       {"chave", "descr_dealer"},
		FieldGroup:        {"grupo"},
		FieldRegion:       {"REGIAO", "STATE"},
	}
}

// ColumnMappingFromConfig monta o mapeamento a partir da configuração, mantendo o padrão para campos vazios
func ColumnMappingFromConfig(cols config.Columns) ColumnMapping {
	m := DefaultColumnMapping()

	set := func(f Field, names []string) {
		if len(names) > 0 {
			m[f] = names
		}
	}

	set(FieldPeriod, cols.Period)
	set(FieldIndicator, cols.Indicator)
	set(FieldSubIndicator, cols.SubIndicator)
	set(FieldAmount, cols.Amount)
	set(FieldDealer, cols.Dealer)
	set(FieldGroup, cols.Group)
	set(FieldRegion, cols.Region)

	return m
}

// columnIndex guarda a posição de cada campo no cabeçalho; -1 quando ausente
type columnIndex map[Field]int

func (ci columnIndex) value(row []string, f Field) string {
	idx, ok := ci[f]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Resolve localiza as colunas no cabeçalho sem diferenciar maiúsculas.
// Retorna os campos obrigatórios que não foram encontrados.
func (m ColumnMapping) Resolve(header []string) (columnIndex, []Field) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	idx := make(columnIndex, len(m))
	for field, names := range m {
		idx[field] = -1
		for _, name := range names {
			if pos, ok := positions[strings.ToLower(strings.TrimSpace(name))]; ok {
				idx[field] = pos
				break
			}
		}
	}

	missing := make([]Field, 0)
	for _, f := range requiredFields {
		if idx[f] < 0 {
			missing = append(missing, f)
		}
	}

	return idx, missing
}

// amountSeparator retorna o separador decimal da coluna de valor encontrada no cabeçalho
func amountSeparator(header []string, columns columnIndex, configured rune) rune {
	idx, ok := columns[FieldAmount]
	if ok && idx >= 0 && idx < len(header) && dotDecimalColumns[strings.ToLower(strings.TrimSpace(header[idx]))] {
		return '.'
	}
	return configured
}
