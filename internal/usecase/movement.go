package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AccountSelector identifica a conta alvo de um movimento.
// AccountID tem prioridade; sem ele, a conta é a única do cliente CustomerID.
type AccountSelector struct {
	AccountID  int64
	CustomerID int64
}

func (s AccountSelector) IsZero() bool {
	return s.AccountID == 0 && s.CustomerID == 0
}

// MovementInput é o DTO comum de depósito e saque.
type MovementInput struct {
	Account           AccountSelector
	Amount            decimal.Decimal
	CorrespondentID   *int64
	TransactionTypeID *int64
	IdempotencyKey    *string
}

// MovementOutput devolve o novo saldo da conta movimentada e a entrada do ledger.
type MovementOutput struct {
	NewBalance  decimal.Decimal
	Transaction *domain.Transaction
}

// movementRunner concentra as dependências e passos compartilhados por
// depósito, saque e transferência.
type movementRunner struct {
	accountRepository     gateway.AccountRepository
	transactionRepository gateway.TransactionRepository
	catalogRepository     gateway.CatalogRepository
	transactionManager    gateway.TransactionManager // Nosso "Unit of Work"
	eventPublisher        gateway.EventPublisher
}

// MovementDeps agrupa o que os usecases de movimento precisam.
type MovementDeps struct {
	AccountRepository     gateway.AccountRepository
	TransactionRepository gateway.TransactionRepository
	CatalogRepository     gateway.CatalogRepository
	TransactionManager    gateway.TransactionManager
	EventPublisher        gateway.EventPublisher // opcional
}

func newMovementRunner(deps MovementDeps) movementRunner {
	return movementRunner{
		accountRepository:     deps.AccountRepository,
		transactionRepository: deps.TransactionRepository,
		catalogRepository:     deps.CatalogRepository,
		transactionManager:    deps.TransactionManager,
		eventPublisher:        deps.EventPublisher,
	}
}

// validateClassification confere o corresponsal e o tipo de transação informados.
func (m *movementRunner) validateClassification(ctx context.Context, correspondentID, transactionTypeID *int64) error {
	if correspondentID != nil {
		if _, err := m.catalogRepository.GetCorrespondent(ctx, *correspondentID); err != nil {
			return err
		}
	}
	if transactionTypeID != nil {
		if _, err := m.catalogRepository.GetTransactionType(ctx, *transactionTypeID); err != nil {
			return err
		}
	}
	return nil
}

// repositoriesFor cria cópias dos repositórios que usam a transação do contexto.
func (m *movementRunner) repositoriesFor(ctx context.Context) (gateway.AccountRepository, gateway.TransactionRepository, error) {
	// Recuperar o "crachá" da transação que foi injetado pelo TransactionManager.Run
	transactionObject, ok := gateway.TxFromContext(ctx)
	if !ok {
		return nil, nil, fmt.Errorf("%w: transação não encontrada no contexto", domain.ErrTransactionFailed)
	}
	return m.accountRepository.WithTx(transactionObject), m.transactionRepository.WithTx(transactionObject), nil
}

func resolveAccountID(ctx context.Context, accounts gateway.AccountRepository, selector AccountSelector) (int64, error) {
	if selector.AccountID != 0 {
		return selector.AccountID, nil
	}
	if selector.CustomerID == 0 {
		return 0, domain.ErrAccountSelectorRequired
	}
	account, err := accounts.GetByCustomerID(ctx, selector.CustomerID)
	if err != nil {
		return 0, err
	}
	return account.ID, nil
}

// lockActive trava a linha da conta e recusa contas inativas.
func lockActive(ctx context.Context, accounts gateway.AccountRepository, id int64) (*domain.Account, error) {
	account, err := accounts.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("falha ao travar conta %d: %w", id, err)
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("conta %d: %w", id, domain.ErrAccountInactive)
	}
	return account, nil
}

// publish envia o evento depois do commit. Falha aqui não desfaz o movimento.
func (m *movementRunner) publish(ctx context.Context, transaction *domain.Transaction) {
	if m.eventPublisher == nil {
		return
	}
	event := gateway.LedgerEvent{
		TransactionID:        transaction.ID,
		Kind:                 string(transaction.Kind),
		SourceAccountID:      transaction.SourceAccountID,
		DestinationAccountID: transaction.DestinationAccountID,
		Amount:               domain.FormatMoney(transaction.Amount),
		CorrespondentID:      transaction.CorrespondentID,
		TransactionTypeID:    transaction.TransactionTypeID,
		OccurredAt:           transaction.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := m.eventPublisher.Publish(ctx, gateway.LedgerExchange, transaction.Kind.RoutingKey(), event); err != nil {
		// Apenas logamos o erro, não falhamos a request HTTP
		log.Error().Err(err).Int64("transaction_id", transaction.ID).Msg("Falha ao publicar evento do ledger")
	}
}
