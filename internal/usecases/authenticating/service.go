package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/dealer-kpi-api/internal/config"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/token_validator.go -package=mocks

// TokenValidator valida os tokens de acesso emitidos pelo portal da rede.
// Os usuários e senhas vivem no portal; a API só confere assinatura e validade.
type TokenValidator interface {
	Enabled() bool
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) TokenValidator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
	}
}

// Enabled indica se a autenticação está ligada (AUTH_SECRET configurado)
func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidas", ErrInvalidToken)
	}

	return claims, nil
}
