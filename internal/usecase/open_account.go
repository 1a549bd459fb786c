package usecase

import (
	"context"
	"errors"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/shopspring/decimal"
)

type OpenAccountInput struct {
	CustomerID     int64
	Type           string
	InitialBalance decimal.Decimal
}

type OpenAccountUseCase struct {
	accountRepo  gateway.AccountRepository
	customerRepo gateway.CustomerRepository
}

func NewOpenAccount(accountRepo gateway.AccountRepository, customerRepo gateway.CustomerRepository) *OpenAccountUseCase {
	return &OpenAccountUseCase{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

// Execute abre a conta do cliente. Cada cliente tem no máximo uma conta;
// a constraint única do banco cobre a corrida entre duas aberturas simultâneas.
func (uc *OpenAccountUseCase) Execute(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	accountType, err := domain.ParseAccountType(input.Type)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateOpeningBalance(input.InitialBalance); err != nil {
		return nil, err
	}

	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	_, err = uc.accountRepo.GetByCustomerID(ctx, input.CustomerID)
	switch {
	case err == nil:
		return nil, domain.ErrAccountAlreadyExists
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, err
	}

	account := &domain.Account{
		CustomerID: input.CustomerID,
		Balance:    input.InitialBalance,
		Status:     domain.AccountActive,
		Type:       accountType,
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
