package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos do painel
var (
	// Erros de validação
	ErrIndicatorRequired      = errors.New("indicator is required")
	ErrInvalidAggregationMode = errors.New("invalid aggregation mode for indicator kind")
	ErrInvalidDateRange       = errors.New("start date after end date")
	ErrUnsupportedFormat      = errors.New("unsupported export format")

	// Erros da base
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
)

// DashboardError é um erro com contexto adicional para a API
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
