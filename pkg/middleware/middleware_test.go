package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dealer-kpi-api/internal/domain"
	"github.com/vfg2006/dealer-kpi-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/dealer-kpi-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/dealer-kpi-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		json.NewEncoder(w).Encode(claims)
	})
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("autenticação desligada injeta admin anônimo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := authmocks.NewMockTokenValidator(ctrl)
		validator.EXPECT().Enabled().Return(false)

		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(claimsEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var claims domain.Claims
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claims))
		assert.Equal(t, RoleAdmin, claims.UserRoleID)
	})

	t.Run("healthcheck é público", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := authmocks.NewMockTokenValidator(ctrl)

		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(claimsEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("sem header Authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := authmocks.NewMockTokenValidator(ctrl)
		validator.EXPECT().Enabled().Return(true)

		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(claimsEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, decodeAPIError(t, rec).Code)
	})

	t.Run("token sem prefixo Bearer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := authmocks.NewMockTokenValidator(ctrl)
		validator.EXPECT().Enabled().Return(true)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "abc")
		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token expirado devolve o código do validador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := authmocks.NewMockTokenValidator(ctrl)
		validator.EXPECT().Enabled().Return(true)
		validator.EXPECT().ValidateToken("velho").Return(nil,
			fmt.Errorf("%w: token is expired", authenticating.ErrExpiredToken))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer velho")
		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(claimsEcho()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, decodeAPIError(t, rec).Code)
	})

	t.Run("token válido coloca as claims no contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := authmocks.NewMockTokenValidator(ctrl)
		validator.EXPECT().Enabled().Return(true)
		validator.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: 9, UserRoleID: RoleSupervisor}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer bom")
		rec := httptest.NewRecorder()
		AuthMiddleware(validator)(claimsEcho()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var claims domain.Claims
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claims))
		assert.Equal(t, 9, claims.UserID)
	})
}

func TestRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{"admin em rota de admin", &domain.Claims{UserRoleID: RoleAdmin}, AdminOnly(), http.StatusOK},
		{"supervisor em rota de admin", &domain.Claims{UserRoleID: RoleSupervisor}, AdminOnly(), http.StatusForbidden},
		{"supervisor em rota de supervisor", &domain.Claims{UserRoleID: RoleSupervisor}, AdminOrSupervisor(), http.StatusOK},
		{"cliente em rota de supervisor", &domain.Claims{UserRoleID: RoleClient}, AdminOrSupervisor(), http.StatusForbidden},
		{"cliente em rota aberta", &domain.Claims{UserRoleID: RoleClient}, AllRoles(), http.StatusOK},
		{"sem claims", nil, AllRoles(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/export", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestScopeDealers(t *testing.T) {
	client := &domain.Claims{UserRoleID: RoleClient, Dealers: []string{"D01", "D02"}}
	ctx := WithClaims(httptest.NewRequest(http.MethodGet, "/", nil).Context(), client)

	t.Run("seleção vazia vira a lista liberada", func(t *testing.T) {
		dealers, err := ScopeDealers(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"D01", "D02"}, dealers)
	})

	t.Run("seleção dentro do escopo", func(t *testing.T) {
		dealers, err := ScopeDealers(ctx, []string{" d02 "})
		require.NoError(t, err)
		assert.Equal(t, []string{" d02 "}, dealers)
	})

	t.Run("seleção fora do escopo", func(t *testing.T) {
		_, err := ScopeDealers(ctx, []string{"D01", "D09"})
		assert.ErrorIs(t, err, ErrDealerOutOfScope)
	})

	t.Run("supervisor não é restringido", func(t *testing.T) {
		supervisor := WithClaims(ctx, &domain.Claims{UserRoleID: RoleSupervisor, Dealers: []string{"D01"}})
		dealers, err := ScopeDealers(supervisor, []string{"D09"})
		require.NoError(t, err)
		assert.Equal(t, []string{"D09"}, dealers)
	})
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Cors([]string{"http://localhost:3000"})(next)

	t.Run("origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/indicators", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/indicators", nil)
		req.Header.Set("Origin", "http://malicioso.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/indicators", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/indicators", nil)
		req.Header.Set("Origin", "http://qualquer.com")
		rec := httptest.NewRecorder()
		Cors([]string{"*"})(next).ServeHTTP(rec, req)

		assert.Equal(t, "http://qualquer.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingAndPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
}
