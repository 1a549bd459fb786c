package usecase

import (
	"context"
	"fmt"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

type WithdrawUseCase struct {
	movementRunner
}

func NewWithdraw(deps MovementDeps) *WithdrawUseCase {
	return &WithdrawUseCase{movementRunner: newMovementRunner(deps)}
}

// Execute debita o valor da conta e registra um Withdrawal com origem = destino.
func (u *WithdrawUseCase) Execute(ctx context.Context, input MovementInput) (*MovementOutput, error) {
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

		// A partir daqui a linha está travada: ninguém mais lê o saldo para sacar até o Commit.
		account, err := lockActive(ctxTx, accountRepoTx, accountID)
		if err != nil {
			return err
		}
		if !account.HasSufficientFunds(input.Amount) {
			return domain.ErrInsufficientFunds
		}

		// O Debit do repositório ainda confere balance >= amount no próprio UPDATE.
		newBalance, err := accountRepoTx.Debit(ctxTx, accountID, input.Amount)
		if err != nil {
			return fmt.Errorf("falha no débito (conta %d): %w", accountID, err)
		}

		record := &domain.Transaction{
			Kind:                 domain.KindWithdrawal,
			Amount:               input.Amount,
			SourceAccountID:      accountID,
			DestinationAccountID: accountID,
			CorrespondentID:      input.CorrespondentID,
			TransactionTypeID:    input.TransactionTypeID,
			IdempotencyKey:       input.IdempotencyKey,
		}
		if err := transactionRepoTx.Create(ctxTx, record); err != nil {
			return fmt.Errorf("falha ao salvar histórico do saque: %w", err)
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
