package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres/db"
)

type TransactionRepository struct {
	db      *pgxpool.Pool
	queries *db.Queries
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		db:      pool,
		queries: db.New(pool),
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	// Conversão do domínio para o formato do SQLC
	params := db.CreateTransactionParams{
		Kind:                 string(tx.Kind),
		Amount:               tx.Amount,
		SourceAccountID:      tx.SourceAccountID,
		DestinationAccountID: tx.DestinationAccountID,
		CorrespondentID:      int8ToPgType(tx.CorrespondentID),
		TransactionTypeID:    int8ToPgType(tx.TransactionTypeID),
		// IdempotencyKey é *string no domínio, mas pgtype.Text no banco
		IdempotencyKey: textToPgType(tx.IdempotencyKey),
	}

	row, err := r.queries.CreateTransaction(ctx, params)
	if err != nil {
		if isUniqueViolation(err, "transactions_idempotency_key_idx") {
			return domain.ErrIdempotencyKey
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	// Atualiza o ID e CreatedAt gerados pelo banco de volta no objeto de domínio
	tx.ID = row.ID
	tx.CreatedAt = row.CreatedAt.Time

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row, err := r.queries.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return toDomainTransaction(row), nil
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	out := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainTransaction(row))
	}
	return out, nil
}

func (r *TransactionRepository) WithTx(tx gateway.TransactionObject) gateway.TransactionRepository {
	pgTx, ok := tx.(pgx.Tx)
	if !ok {
		return r
	}
	return &TransactionRepository{
		db:      r.db,
		queries: r.queries.WithTx(pgTx),
	}
}

func toDomainTransaction(t db.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:                   t.ID,
		Kind:                 domain.TransactionKind(t.Kind),
		Amount:               t.Amount,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		CorrespondentID:      pgTypeToInt8(t.CorrespondentID),
		TransactionTypeID:    pgTypeToInt8(t.TransactionTypeID),
		IdempotencyKey:       pgTypeToText(t.IdempotencyKey),
		CreatedAt:            t.CreatedAt.Time,
	}
}

// Helper para converter *string -> pgtype.Text
func textToPgType(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTypeToText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func int8ToPgType(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func pgTypeToInt8(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
