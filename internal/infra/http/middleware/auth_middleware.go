package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// Claims é o payload esperado no token. A emissão do token fica fora desta API.
type Claims struct {
	UserID int64       `json:"id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type claimsKeyType string

const claimsKey claimsKeyType = "claims"

// ClaimsFromContext devolve o usuário autenticado pelo middleware Authenticate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// Authenticate exige "Authorization: Bearer <token>" assinado com HS256.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (interface{}, error) { return secret, nil }
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				writeError(w, http.StatusUnauthorized, "Token não fornecido")
				return
			}

			claims := &Claims{}
			if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, keyFunc); err != nil {
				msg := "Token inválido"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "Token expirado"
				}
				log.Debug().Err(err).Msg("Token rejeitado")
				writeError(w, http.StatusUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireRole deixa passar apenas os perfis informados.
// Sem usuário no contexto a resposta é 401; perfil fora da lista, 403.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Usuário não autenticado")
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				writeError(w, http.StatusForbidden, "Acesso negado: perfil não autorizado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Error().Err(err).Msg("Falha ao escrever resposta de erro")
	}
}
