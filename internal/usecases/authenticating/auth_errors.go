package authenticating

import (
	"errors"

	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
)

var (
	ErrMissingToken = errors.New("token ausente")
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
)

// ErrorCode traduz um erro de ValidateToken para o código da API
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return apiErrors.ErrMissingToken
	case errors.Is(err, ErrExpiredToken):
		return apiErrors.ErrExpiredToken
	default:
		return apiErrors.ErrInvalidToken
	}
}
