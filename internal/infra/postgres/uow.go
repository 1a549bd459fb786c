package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// Uow implementa gateway.TransactionManager
type Uow struct {
	pool *pgxpool.Pool
}

func NewUow(pool *pgxpool.Pool) *Uow {
	return &Uow{pool: pool}
}

// Run executa uma função dentro de uma transação ACID.
// Se a função retornar erro, faz Rollback. Se sucesso, Commit.
// Chamadas aninhadas reaproveitam a transação que já está no contexto.
func (u *Uow) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := gateway.TxFromContext(ctx); ok {
		if _, isPgx := tx.(pgx.Tx); isPgx {
			return fn(ctx)
		}
	}

	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted, // Os locks FOR UPDATE garantem a serialização dos saldos
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Defer Rollback: Se commit não for chamado (pânico ou erro), garante rollback
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Injeta a transação
	ctxWithTx := context.WithValue(ctx, gateway.TransactionKey, tx)

	if err := fn(ctxWithTx); err != nil {
		return err // Rollback automático pelo defer
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
