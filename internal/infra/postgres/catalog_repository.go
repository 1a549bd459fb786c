package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres/db"
	"github.com/shopspring/decimal"
)

// CatalogRepository guarda correspondentes e tipos de transação.
type CatalogRepository struct {
	queries *db.Queries
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{queries: db.New(pool)}
}

func (r *CatalogRepository) CreateCorrespondent(ctx context.Context, c *domain.Correspondent) error {
	id, err := r.queries.CreateCorrespondent(ctx, db.CreateCorrespondentParams{
		Kind:           c.Kind,
		Address:        textToPgType(c.Address),
		Latitude:       decimalToNull(c.Latitude),
		Longitude:      decimalToNull(c.Longitude),
		Active:         c.Active,
		NeighborhoodID: c.NeighborhoodID,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err, "correspondents_kind_key"):
			return domain.ErrCatalogAlreadyExists
		case isForeignKeyViolation(err):
			return domain.ErrRegionNotFound
		}
		return fmt.Errorf("failed to create correspondent: %w", err)
	}
	c.ID = id
	return nil
}

func (r *CatalogRepository) GetCorrespondent(ctx context.Context, id int64) (*domain.Correspondent, error) {
	row, err := r.queries.GetCorrespondent(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCorrespondentNotFound
		}
		return nil, fmt.Errorf("failed to get correspondent: %w", err)
	}
	return toDomainCorrespondent(row), nil
}

func (r *CatalogRepository) ListCorrespondents(ctx context.Context) ([]*domain.Correspondent, error) {
	rows, err := r.queries.ListCorrespondents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list correspondents: %w", err)
	}
	out := make([]*domain.Correspondent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainCorrespondent(row))
	}
	return out, nil
}

func (r *CatalogRepository) DeleteCorrespondent(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteCorrespondent(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCatalogInUse
		}
		return fmt.Errorf("failed to delete correspondent: %w", err)
	}
	if affected == 0 {
		return domain.ErrCorrespondentNotFound
	}
	return nil
}

func (r *CatalogRepository) CreateTransactionType(ctx context.Context, t *domain.TransactionType) error {
	id, err := r.queries.CreateTransactionType(ctx, t.Name)
	if err != nil {
		return fmt.Errorf("failed to create transaction type: %w", err)
	}
	t.ID = id
	return nil
}

func (r *CatalogRepository) GetTransactionType(ctx context.Context, id int64) (*domain.TransactionType, error) {
	row, err := r.queries.GetTransactionType(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionTypeNotFound
		}
		return nil, fmt.Errorf("failed to get transaction type: %w", err)
	}
	return &domain.TransactionType{ID: row.ID, Name: row.Name}, nil
}

func (r *CatalogRepository) ListTransactionTypes(ctx context.Context) ([]*domain.TransactionType, error) {
	rows, err := r.queries.ListTransactionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}
	out := make([]*domain.TransactionType, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.TransactionType{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *CatalogRepository) DeleteTransactionType(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteTransactionType(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCatalogInUse
		}
		return fmt.Errorf("failed to delete transaction type: %w", err)
	}
	if affected == 0 {
		return domain.ErrTransactionTypeNotFound
	}
	return nil
}

func toDomainCorrespondent(c db.Correspondent) *domain.Correspondent {
	return &domain.Correspondent{
		ID:             c.ID,
		Kind:           c.Kind,
		Address:        pgTypeToText(c.Address),
		Latitude:       nullToDecimal(c.Latitude),
		Longitude:      nullToDecimal(c.Longitude),
		Active:         c.Active,
		NeighborhoodID: c.NeighborhoodID,
	}
}

func decimalToNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullToDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
