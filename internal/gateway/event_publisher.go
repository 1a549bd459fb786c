package gateway

import "context"

const LedgerExchange = "ledger_events"

type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}

// LedgerEvent é o payload publicado após o commit de cada movimento.
type LedgerEvent struct {
	TransactionID        int64  `json:"transaction_id"`
	Kind                 string `json:"kind"`
	SourceAccountID      int64  `json:"source_account_id"`
	DestinationAccountID int64  `json:"destination_account_id"`
	Amount               string `json:"amount"`
	CorrespondentID      *int64 `json:"correspondent_id,omitempty"`
	TransactionTypeID    *int64 `json:"transaction_type_id,omitempty"`
	OccurredAt           string `json:"occurred_at"`
}
