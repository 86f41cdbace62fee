package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
)

// Constantes para identificar os roles
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// ErrDealerOutOfScope indica uma seleção de concessionárias fora das liberadas no token
var ErrDealerOutOfScope = errors.New("concessionária fora do escopo do usuário")

// RoleMiddleware restringe o acesso com base nos roles.
// allowedRoles é a lista de IDs de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id": userClaims.UserID,
					"role":    userClaims.UserRoleID,
					"path":    r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrSupervisor permite acesso para administradores e supervisores
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleSupervisor})
}

// AllRoles permite acesso para qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleSupervisor, RoleClient})
}

// ScopeDealers restringe a seleção de concessionárias de um cliente às liberadas no token.
// Admin, supervisor e clientes sem lista no token mantêm a seleção pedida.
// Seleção vazia de um cliente vira a lista liberada.
func ScopeDealers(ctx context.Context, requested []string) ([]string, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.UserRoleID != RoleClient || len(claims.Dealers) == 0 {
		return requested, nil
	}

	allowed := make(map[string]bool, len(claims.Dealers))
	for _, dealer := range claims.Dealers {
		allowed[strings.ToUpper(strings.TrimSpace(dealer))] = true
	}

	if len(requested) == 0 {
		return append([]string(nil), claims.Dealers...), nil
	}

	for _, dealer := range requested {
		if !allowed[strings.ToUpper(strings.TrimSpace(dealer))] {
			return nil, ErrDealerOutOfScope
		}
	}

	return requested, nil
}
