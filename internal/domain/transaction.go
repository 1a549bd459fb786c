package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
	KindTransfer   TransactionKind = "Transfer"
)

// RoutingKey é a chave usada para publicar o movimento no exchange de eventos.
func (k TransactionKind) RoutingKey() string {
	return "transaction." + strings.ToLower(string(k))
}

// Transaction é uma entrada imutável do ledger.
// Depósitos e saques usam a mesma conta como origem e destino.
type Transaction struct {
	ID                   int64
	Kind                 TransactionKind
	Amount               decimal.Decimal
	SourceAccountID      int64
	DestinationAccountID int64
	CorrespondentID      *int64
	TransactionTypeID    *int64
	IdempotencyKey       *string
	CreatedAt            time.Time
}

func (t *Transaction) Involves(accountID int64) bool {
	return t.SourceAccountID == accountID || t.DestinationAccountID == accountID
}
