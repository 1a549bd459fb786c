package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const IdempotencyHeader = "Idempotency-Key"

// capturingWriter repassa a resposta ao cliente e guarda uma cópia para o cache.
type capturingWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (c *capturingWriter) WriteHeader(status int) {
	c.status = status
	c.ResponseWriter.WriteHeader(status)
}

func (c *capturingWriter) Write(b []byte) (int, error) {
	c.buf.Write(b)
	return c.ResponseWriter.Write(b)
}

// scopedKey amarra a chave à rota: a mesma chave em endpoints diferentes não colide.
func scopedKey(r *http.Request, key string) string {
	return r.Method + " " + r.URL.Path + ":" + key
}

// cacheable: 5xx fica de fora para o cliente poder tentar de novo.
func cacheable(status int) bool {
	return status < http.StatusInternalServerError
}

func replay(w http.ResponseWriter, cached *gateway.CachedResponse, logger zerolog.Logger) {
	contentType := cached.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Idempotency-Hit", "true")
	w.WriteHeader(cached.StatusCode)
	if _, err := w.Write(cached.Body); err != nil {
		logger.Error().Err(err).Msg("Falha ao reenviar resposta cacheada")
	}
}

// reservationTTL limita quanto tempo uma chave fica presa se o processo cair no meio do movimento.
const reservationTTL = 2 * time.Minute

// Idempotency devolve a resposta gravada quando a mesma Idempotency-Key chega de novo
// para o mesmo movimento. A chave é reservada antes do handler rodar: uma segunda
// requisição concorrente recebe 409 em vez de executar o movimento outra vez.
// Sem a chave, a requisição segue direto.
func Idempotency(store gateway.IdempotencyRepository, ttl time.Duration) func(http.Handler) http.Handler {
	lockTTL := reservationTTL
	if ttl > 0 && ttl < lockTTL {
		lockTTL = ttl
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cacheKey := scopedKey(r, key)
			logger := log.With().Str("idempotency_key", key).Str("path", r.URL.Path).Logger()

			reserved, err := store.Reserve(ctx, cacheKey, lockTTL)
			if err != nil {
				// Fail open: a constraint única de idempotency_key no ledger ainda barra a duplicata.
				logger.Error().Err(err).Msg("Cache de idempotência indisponível")
				next.ServeHTTP(w, r)
				return
			}

			if !reserved {
				cached, err := store.Get(ctx, cacheKey)
				if err != nil {
					logger.Error().Err(err).Msg("Falha ao ler cache de idempotência")
					next.ServeHTTP(w, r)
					return
				}
				if cached == nil || cached.Pending {
					// Reserva de outra requisição ainda aberta (ou expirou agora há pouco).
					logger.Warn().Msg("Movimento com a mesma chave ainda em processamento")
					writeError(w, http.StatusConflict, "Requisição com esta Idempotency-Key ainda em processamento")
					return
				}
				logger.Info().Int("status", cached.StatusCode).Msg("Movimento repetido, devolvendo resposta gravada")
				replay(w, cached, logger)
				return
			}

			capture := &capturingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(capture, r)

			// O contexto da requisição pode ter expirado; a reserva precisa ser resolvida mesmo assim.
			storeCtx := context.WithoutCancel(ctx)
			if !cacheable(capture.status) {
				if err := store.Release(storeCtx, cacheKey); err != nil {
					logger.Error().Err(err).Msg("Falha ao liberar reserva de idempotência")
				}
				return
			}
			response := gateway.CachedResponse{
				StatusCode:  capture.status,
				ContentType: capture.Header().Get("Content-Type"),
				Body:        capture.buf.Bytes(),
			}
			if err := store.Save(storeCtx, cacheKey, response, ttl); err != nil {
				logger.Error().Err(err).Msg("Falha ao gravar resposta no cache de idempotência")
			}
		})
	}
}
