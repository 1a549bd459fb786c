package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/redis/go-redis/v9"
)

// Chaves ficam em "movement:idem:<método> <rota>:<Idempotency-Key>".
const keyPrefix = "movement:idem:"

var pendingMarker = mustEncode(gateway.CachedResponse{Pending: true})

// IdempotencyRepository guarda no Redis a reserva e depois a resposta de cada movimento.
type IdempotencyRepository struct {
	client redis.UniversalClient
}

func NewIdempotencyRepository(client redis.UniversalClient) *IdempotencyRepository {
	return &IdempotencyRepository{client: client}
}

func mustEncode(resp gateway.CachedResponse) []byte {
	raw, err := json.Marshal(resp)
	if err != nil {
		panic(err)
	}
	return raw
}

// Reserve usa SET NX: só uma requisição por chave consegue o marcador.
func (r *IdempotencyRepository) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, keyPrefix+key, pendingMarker, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key %q: %w", key, err)
	}
	return ok, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*gateway.CachedResponse, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read idempotency key %q: %w", key, err)
	}

	entry := &gateway.CachedResponse{}
	if err := json.Unmarshal(raw, entry); err != nil {
		return nil, fmt.Errorf("decode idempotency entry %q: %w", key, err)
	}
	return entry, nil
}

// Save sobrescreve o marcador pendente com a resposta final e o TTL de retenção.
func (r *IdempotencyRepository) Save(ctx context.Context, key string, response gateway.CachedResponse, ttl time.Duration) error {
	response.Pending = false
	raw, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode idempotency entry %q: %w", key, err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("store idempotency entry %q: %w", key, err)
	}
	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key %q: %w", key, err)
	}
	return nil
}
