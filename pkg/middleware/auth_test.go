package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GomesTenorio/Hanami2025/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func signedToken(t *testing.T, role string, expiresIn time.Duration, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analista@hanami",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "Sem segredo a autenticação é ignorada", secret: "", header: "", wantStatus: http.StatusOK},
		{name: "Header ausente", secret: testSecret, header: "", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "Sem prefixo Bearer", secret: testSecret, header: "Token abc", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "Token malformado", secret: testSecret, header: "Bearer abc", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "Token válido", secret: testSecret, header: "Bearer " + signedToken(t, RoleAnalyst, time.Hour, testSecret), wantStatus: http.StatusOK},
		{name: "Token expirado", secret: testSecret, header: "Bearer " + signedToken(t, RoleAnalyst, -time.Hour, testSecret), wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrExpiredToken},
		{name: "Assinado com outro segredo", secret: testSecret, header: "Bearer " + signedToken(t, RoleAdmin, time.Hour, "outro"), wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				if tt.secret != "" {
					claims, ok := ClaimsFromContext(r.Context())
					require.True(t, ok)
					assert.Equal(t, RoleAnalyst, claims.Role)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/upload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.secret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		token      string
		wantStatus int
	}{
		{name: "Administrador acessa", secret: testSecret, token: signedToken(t, RoleAdmin, time.Hour, testSecret), wantStatus: http.StatusOK},
		{name: "Analista é bloqueado", secret: testSecret, token: signedToken(t, RoleAnalyst, time.Hour, testSecret), wantStatus: http.StatusForbidden},
		{name: "Sem segredo não há restrição", secret: "", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
			handler := AuthMiddleware(tt.secret)(AdminOnly(tt.secret)(ok))

			req := httptest.NewRequest(http.MethodPost, "/cron/retention/run", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware_WithoutClaims(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	rec := httptest.NewRecorder()

	RoleMiddleware(testSecret, RoleAdmin)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
}
