package gateway

import (
	"context"
	"time"
)

// AuditEntry é a cópia de um evento do ledger guardada fora do Postgres.
type AuditEntry struct {
	Event      LedgerEvent
	RoutingKey string
	ReceivedAt time.Time
}

type AuditRepository interface {
	Save(ctx context.Context, entry AuditEntry) error
}
