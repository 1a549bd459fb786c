package usecase

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// DeleteAccountUseCase apaga conta aberta por engano. Conta com lançamentos
// fica: o ledger é imutável e continua apontando para ela.
type DeleteAccountUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewDeleteAccount(accountRepo gateway.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepository: accountRepo}
}

func (u *DeleteAccountUseCase) Execute(ctx context.Context, accountID int64) error {
	return u.accountRepository.Delete(ctx, accountID)
}
