package usecase

import (
	"context"
	"fmt"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// TransferMoneyInput define os dados necessários para realizar uma transferência.
// Usamos DTOs (Data Transfer Objects) para não acoplar a API HTTP ao UseCase.
type TransferMoneyInput struct {
	// Source é a conta de origem; normalmente só o CustomerID (dono) é informado.
	Source               AccountSelector
	DestinationAccountID int64
	Amount               decimal.Decimal
	CorrespondentID      *int64
	TransactionTypeID    *int64
	IdempotencyKey       *string
}

// TransferMoneyOutput define o que devolvemos para quem chamou.
// NewBalance é o saldo da origem, como nos demais movimentos.
type TransferMoneyOutput struct {
	NewBalance         decimal.Decimal
	DestinationBalance decimal.Decimal
	Transaction        *domain.Transaction
}

// TransferMoneyUseCase contém as dependências necessárias.
type TransferMoneyUseCase struct {
	movementRunner
}

// NewTransferMoney cria uma nova instância do UseCase.
func NewTransferMoney(deps MovementDeps) *TransferMoneyUseCase {
	return &TransferMoneyUseCase{movementRunner: newMovementRunner(deps)}
}

// Execute roda a lógica de negócio.
func (u *TransferMoneyUseCase) Execute(ctx context.Context, input TransferMoneyInput) (*TransferMoneyOutput, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.Source.IsZero() || input.DestinationAccountID == 0 {
		return nil, domain.ErrAccountSelectorRequired
	}
	if err := u.validateClassification(ctx, input.CorrespondentID, input.TransactionTypeID); err != nil {
		return nil, err
	}

	var output TransferMoneyOutput

	// u.transactionManager.Run inicia uma transação no banco (BEGIN).
	// Se a função anônima retornar erro, ele faz ROLLBACK automático.
	// Se retornar nil, ele faz COMMIT.
	err := u.transactionManager.Run(ctx, func(ctxTx context.Context) error {
		accountRepoTx, transactionRepoTx, err := u.repositoriesFor(ctxTx)
		if err != nil {
			return err
		}

		sourceID, err := resolveAccountID(ctxTx, accountRepoTx, input.Source)
		if err != nil {
			return fmt.Errorf("conta de origem: %w", err)
		}
		if _, err := accountRepoTx.GetByID(ctxTx, input.DestinationAccountID); err != nil {
			return fmt.Errorf("conta de destino %d: %w", input.DestinationAccountID, err)
		}
		if sourceID == input.DestinationAccountID {
			return domain.ErrSameAccount
		}

		// Ordenação de IDs para evitar Deadlock (Lock Pessimista)
		// Se a Transferência A->B e B->A acontecerem ao mesmo tempo,
		// ordenamos para que ambas travem sempre o ID menor primeiro.
		firstID, secondID := sourceID, input.DestinationAccountID
		if firstID > secondID {
			firstID, secondID = secondID, firstID
		}

		// Lock nas Contas (SELECT ... FOR UPDATE)
		locked := make(map[int64]*domain.Account, 2)
		for _, id := range []int64{firstID, secondID} {
			account, err := lockActive(ctxTx, accountRepoTx, id)
			if err != nil {
				return err
			}
			locked[id] = account
		}

		if !locked[sourceID].HasSufficientFunds(input.Amount) {
			return domain.ErrInsufficientFunds
		}

		// Operação de Débito (Quem envia)
		sourceBalance, err := accountRepoTx.Debit(ctxTx, sourceID, input.Amount)
		if err != nil {
			// Se falhar (saldo insuficiente), retornamos erro e o txManager faz Rollback.
			return fmt.Errorf("falha no débito (origem %d): %w", sourceID, err)
		}

		// Operação de Crédito (Quem recebe)
		destinationBalance, err := accountRepoTx.Credit(ctxTx, input.DestinationAccountID, input.Amount)
		if err != nil {
			return fmt.Errorf("falha no crédito (destino %d): %w", input.DestinationAccountID, err)
		}

		// Registrar o Histórico (uma única entrada referenciando as duas contas)
		record := &domain.Transaction{
			Kind:                 domain.KindTransfer,
			Amount:               input.Amount,
			SourceAccountID:      sourceID,
			DestinationAccountID: input.DestinationAccountID,
			CorrespondentID:      input.CorrespondentID,
			TransactionTypeID:    input.TransactionTypeID,
			IdempotencyKey:       input.IdempotencyKey,
		}
		if err := transactionRepoTx.Create(ctxTx, record); err != nil {
			return fmt.Errorf("falha ao salvar histórico da transação: %w", err)
		}

		output = TransferMoneyOutput{
			NewBalance:         sourceBalance,
			DestinationBalance: destinationBalance,
			Transaction:        record,
		}
		return nil // Sucesso! O Commit será executado agora.
	})
	if err != nil {
		return nil, err
	}

	u.publish(ctx, output.Transaction)
	return &output, nil
}
