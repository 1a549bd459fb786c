package gateway

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

// TransactionRepository é o ledger: só existe append e leitura.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// ListByAccount traz os movimentos em que a conta é origem ou destino, mais recentes primeiro.
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
	// WithTx segue o mesmo padrão da Account para participar da transação atômica
	WithTx(tx TransactionObject) TransactionRepository
}
