package usecase

import (
	"context"
	"fmt"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

type DepositUseCase struct {
	movementRunner
}

func NewDeposit(deps MovementDeps) *DepositUseCase {
	return &DepositUseCase{movementRunner: newMovementRunner(deps)}
}

// Execute credita o valor na conta e registra um Deposit com origem = destino.
func (u *DepositUseCase) Execute(ctx context.Context, input MovementInput) (*MovementOutput, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Account.IsZero() {
		return nil, domain.ErrAccountSelectorRequired
	}
	if err := u.validateClassification(ctx, input.CorrespondentID, input.TransactionTypeID); err != nil {
		return nil, err
	}

	var output MovementOutput
	err := u.transactionManager.Run(ctx, func(ctxTx context.Context) error {
		accountRepoTx, transactionRepoTx, err := u.repositoriesFor(ctxTx)
		if err != nil {
			return err
		}

		accountID, err := resolveAccountID(ctxTx, accountRepoTx, input.Account)
		if err != nil {
			return err
		}
		if _, err := lockActive(ctxTx, accountRepoTx, accountID); err != nil {
			return err
		}

		newBalance, err := accountRepoTx.Credit(ctxTx, accountID, input.Amount)
		if err != nil {
			return fmt.Errorf("falha no crédito (conta %d): %w", accountID, err)
		}

		record := &domain.Transaction{
			Kind:                 domain.KindDeposit,
			Amount:               input.Amount,
			SourceAccountID:      accountID,
			DestinationAccountID: accountID,
			CorrespondentID:      input.CorrespondentID,
			TransactionTypeID:    input.TransactionTypeID,
			IdempotencyKey:       input.IdempotencyKey,
		}
		if err := transactionRepoTx.Create(ctxTx, record); err != nil {
			return fmt.Errorf("falha ao salvar histórico do depósito: %w", err)
		}

		output = MovementOutput{NewBalance: newBalance, Transaction: record}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, output.Transaction)
	return &output, nil
}
