package usecase

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

type GetAccountUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewGetAccount(accountRepo gateway.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepository: accountRepo,
	}
}

func (u *GetAccountUseCase) Execute(ctx context.Context, accountID int64) (*domain.Account, error) {
	return u.accountRepository.GetByID(ctx, accountID)
}

// ByCustomer é a consulta de saldo do caixa: a conta única do cliente.
func (u *GetAccountUseCase) ByCustomer(ctx context.Context, customerID int64) (*domain.Account, error) {
	return u.accountRepository.GetByCustomerID(ctx, customerID)
}

func (u *GetAccountUseCase) List(ctx context.Context) ([]*domain.Account, error) {
	return u.accountRepository.List(ctx)
}
