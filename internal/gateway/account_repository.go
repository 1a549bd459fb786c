package gateway

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository define o contrato para persistência de contas.
// O Usecase só interage com isso, sem saber se é Postgres ou memória.
type AccountRepository interface {
	// Create gera ID, número e data de abertura e devolve tudo no próprio objeto.
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)

	// Lock Pessimista: Retorna a conta travando a linha no banco
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)

	// Métodos Atômicos. Devolvem o saldo resultante.
	Debit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)

	// UpdateDetails altera apenas status e tipo. Saldo só muda por Debit/Credit.
	UpdateDetails(ctx context.Context, account *domain.Account) error

	// Delete só remove conta sem lançamentos no ledger (ErrAccountHasTransactions).
	Delete(ctx context.Context, id int64) error

	// WithTx permite que o repositório participe de uma transação iniciada no nível superior
	WithTx(tx TransactionObject) AccountRepository
}
