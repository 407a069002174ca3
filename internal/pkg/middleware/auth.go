package middleware

import (
	"context"
	"net/http"
	"strings"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
type ContextKey int

const (
	ClaimsKey ContextKey = iota
	RequestIDKey
)

// Claims são os dados do portador extraídos do JWT e anexados ao contexto.
type Claims struct {
	Subject string
	Role    domain.Role
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida o Bearer token e anexa as Claims ao contexto da requisição.
func NewAuthMiddleware(tokenSvc TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				writeError(w, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado."))
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				writeError(w, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, Claims{
				Subject: claims.Subject,
				Role:    domain.Role(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext extrai as claims anexadas por NewAuthMiddleware.
func GetClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(Claims)
	return claims, ok
}

// PermissionMiddleware exige que o portador tenha um dos papéis informados.
// Deve ser encadeado depois de NewAuthMiddleware.
func PermissionMiddleware(requiredRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaimsFromContext(r.Context())
			if !ok {
				writeError(w, apperror.NewUnauthorizedError("Autorização necessária. Token não processado."))
				return
			}

			for _, role := range requiredRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, apperror.NewForbiddenError("Acesso negado. Você não tem a permissão necessária."))
		})
	}
}
