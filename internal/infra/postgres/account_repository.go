package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres/db"
	"github.com/shopspring/decimal"
)

// AccountRepository implementa gateway.AccountRepository usando pgx/v5
type AccountRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

// Create insere a conta; número e data de abertura vêm dos defaults do schema.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	row, err := r.queries.CreateAccount(ctx, db.CreateAccountParams{
		CustomerID: account.CustomerID,
		Balance:    account.Balance,
		Status:     string(account.Status),
		Type:       string(account.Type),
	})
	if err != nil {
		switch {
		case isUniqueViolation(err, "accounts_customer_id_key"):
			return domain.ErrAccountAlreadyExists
		case isForeignKeyViolation(err):
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	*account = *toDomainAccount(row)
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row, err := r.queries.GetAccount(ctx, id)
	if err != nil {
		// pgx retorna pgx.ErrNoRows, diferente de sql.ErrNoRows
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return toDomainAccount(row), nil
}

func (r *AccountRepository) GetByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error) {
	row, err := r.queries.GetAccountByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by customer: %w", err)
	}
	return toDomainAccount(row), nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, toDomainAccount(row))
	}
	return accounts, nil
}

// GetByIDForUpdate trava a linha até o fim da transação (SELECT ... FOR UPDATE).
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	row, err := r.queries.GetAccountForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return toDomainAccount(row), nil
}

// Débito Atômico (Valida saldo no banco)
func (r *AccountRepository) Debit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := r.queries.DebitAccount(ctx, db.DebitAccountParams{
		Amount: amount,
		ID:     id,
	})
	if err != nil {
		// Nenhuma linha: a cláusula "AND balance >= amount" falhou
		if errors.Is(err, pgx.ErrNoRows) || isCheckViolation(err, "accounts_balance_non_negative") {
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		return decimal.Zero, fmt.Errorf("failed to debit account: %w", err)
	}
	return balance, nil
}

// Crédito Atômico
func (r *AccountRepository) Credit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := r.queries.CreditAccount(ctx, db.CreditAccountParams{
		Amount: amount,
		ID:     id,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return decimal.Zero, domain.ErrAccountNotFound
		case isNumericOverflow(err):
			// Saldo passaria de NUMERIC(15,2)
			return decimal.Zero, domain.ErrBalanceLimitExceeded
		}
		return decimal.Zero, fmt.Errorf("failed to credit account: %w", err)
	}
	return balance, nil
}

func (r *AccountRepository) UpdateDetails(ctx context.Context, account *domain.Account) error {
	row, err := r.queries.UpdateAccountDetails(ctx, db.UpdateAccountDetailsParams{
		ID:     account.ID,
		Status: string(account.Status),
		Type:   string(account.Type),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	*account = *toDomainAccount(row)
	return nil
}

// WithTx retorna uma cópia do repositório usando uma transação específica
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteAccount(ctx, id)
	if err != nil {
		// transactions.source/destination_account_id apontam para accounts sem ON DELETE
		if isForeignKeyViolation(err) {
			return domain.ErrAccountHasTransactions
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &AccountRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}

// Mapper: pgtype -> Go types
func toDomainAccount(a db.Account) *domain.Account {
	return &domain.Account{
		ID:         a.ID,
		Number:     a.Number,
		CustomerID: a.CustomerID,
		Balance:    a.Balance,
		Status:     domain.AccountStatus(a.Status),
		Type:       domain.AccountType(a.Type),
		OpenedAt:   a.OpenedAt.Time,
		UpdatedAt:  a.UpdatedAt.Time,
	}
}
