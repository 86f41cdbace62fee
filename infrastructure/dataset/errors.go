// Package dataset carrega, normaliza e exporta a base de registros de serviço das concessionárias
package dataset

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnreadableSource     = errors.New("arquivo de dados ilegível")
	ErrUnrecognizedEncoding = errors.New("codificação de texto não reconhecida")
	ErrEmptySource          = errors.New("arquivo de dados vazio")
	ErrMissingColumns       = errors.New("colunas obrigatórias ausentes")
	ErrMalformedFile        = errors.New("arquivo de dados mal formado")
)

// LoadError é um erro fatal de carga: o pipeline é interrompido e o erro é reportado uma única vez
type LoadError struct {
	Err     error
	Source  string
	Details string
}

func (e *LoadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("dataset %s: %s: %s", e.Source, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("dataset %s: %s", e.Source, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError indica se o erro é uma falha fatal de carga
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

func newLoadError(source string, err error, details string) error {
	return &LoadError{Err: err, Source: source, Details: details}
}
