// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"

	"github.com/vfg2006/dealer-kpi-api/pkg/utils"
)

// ServiceRecord representa uma observação normalizada da exportação de serviços das concessionárias
type ServiceRecord struct {
	Line         int       `json:"line"`
	DealerKey    string    `json:"dealer_key"`
	Indicator    string    `json:"indicator"`
	SubIndicator string    `json:"sub_indicator,omitempty"`
	Region       string    `json:"region,omitempty"`
	Group        string    `json:"group,omitempty"`
	Period       time.Time `json:"period"`
	Amount       float64   `json:"amount"`
	IsOutlier    bool      `json:"is_outlier"`

	// Raw guarda os valores originais da linha, na ordem do cabeçalho do arquivo
	Raw []string `json:"-"`
}

// HasPeriod indica se a data da linha pôde ser interpretada
func (r ServiceRecord) HasPeriod() bool {
	return !r.Period.IsZero()
}

// NormalizeIndicatorName remove espaços nas pontas e converte para maiúsculas
func NormalizeIndicatorName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// MonthStart retorna o balde mensal da data: o primeiro dia do mês
func MonthStart(t time.Time) time.Time {
	return utils.FirstDayOfMonth(t)
}
