package usecase

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// UpdateAccountInput só carrega os campos editáveis; nil mantém o valor atual.
type UpdateAccountInput struct {
	AccountID int64
	Status    *string
	Type      *string
}

type UpdateAccountUseCase struct {
	accountRepository gateway.AccountRepository
}

func NewUpdateAccount(accountRepo gateway.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepository: accountRepo}
}

func (u *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	account, err := u.accountRepository.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if input.Status != nil {
		status, err := domain.ParseAccountStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		account.Status = status
	}
	if input.Type != nil {
		accountType, err := domain.ParseAccountType(*input.Type)
		if err != nil {
			return nil, err
		}
		account.Type = accountType
	}
	if err := u.accountRepository.UpdateDetails(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
