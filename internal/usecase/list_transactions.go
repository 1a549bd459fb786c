package usecase

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

type ListTransactionsUseCase struct {
	accountRepository     gateway.AccountRepository
	transactionRepository gateway.TransactionRepository
}

func NewListTransactions(accountRepo gateway.AccountRepository, transactionRepo gateway.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		accountRepository:     accountRepo,
		transactionRepository: transactionRepo,
	}
}

// Execute devolve o extrato da conta, mais recentes primeiro.
func (u *ListTransactionsUseCase) Execute(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	if _, err := u.accountRepository.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.transactionRepository.ListByAccount(ctx, accountID)
}

func (u *ListTransactionsUseCase) Get(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return u.transactionRepository.GetByID(ctx, transactionID)
}
