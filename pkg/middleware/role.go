package middleware

import (
	"net/http"
	"slices"

	"github.com/GomesTenorio/Hanami2025/pkg/apiErrors"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
)

// RoleMiddleware restringe a rota aos papéis informados. Deve vir depois do AuthMiddleware.
// Com secret vazio não há autenticação e a restrição também fica desabilitada.
func RoleMiddleware(secret string, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"subject": claims.Subject,
					"role":    claims.Role,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly(secret string) func(http.Handler) http.Handler {
	return RoleMiddleware(secret, RoleAdmin)
}
