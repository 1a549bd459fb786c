package gateway

import (
	"context"
	"time"
)

// CachedResponse é a resposta HTTP guardada para uma Idempotency-Key.
// Pending marca a chave reservada cujo movimento ainda não terminou.
type CachedResponse struct {
	StatusCode  int    `json:"status_code,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body,omitempty"`
	Pending     bool   `json:"pending,omitempty"`
}

type IdempotencyRepository interface {
	// Reserve grava o marcador pendente só se a chave não existir.
	// false significa que outra requisição já reservou ou concluiu a chave.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Get retorna a entrada da chave. Cache miss devolve (nil, nil).
	Get(ctx context.Context, key string) (*CachedResponse, error)

	// Save troca a reserva pela resposta final.
	Save(ctx context.Context, key string, response CachedResponse, ttl time.Duration) error

	// Release apaga a reserva quando a resposta não deve ser guardada.
	Release(ctx context.Context, key string) error
}
