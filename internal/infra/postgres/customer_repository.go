package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres/db"
)

type CustomerRepository struct {
	queries *db.Queries
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{queries: db.New(pool)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	id, err := r.queries.CreateCustomer(ctx, db.CreateCustomerParams{
		FirstName:      c.FirstName,
		LastName:       textToPgType(c.LastName),
		Document:       c.Document,
		Phone:          textToPgType(c.Phone),
		Email:          textToPgType(c.Email),
		Address:        textToPgType(c.Address),
		NeighborhoodID: int8ToPgType(c.NeighborhoodID),
	})
	if err != nil {
		return mapCustomerError("create", err)
	}
	c.ID = id
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row, err := r.queries.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return toDomainCustomer(row), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := r.queries.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	out := make([]*domain.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainCustomer(row))
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	affected, err := r.queries.UpdateCustomer(ctx, db.UpdateCustomerParams{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       textToPgType(c.LastName),
		Document:       c.Document,
		Phone:          textToPgType(c.Phone),
		Email:          textToPgType(c.Email),
		Address:        textToPgType(c.Address),
		NeighborhoodID: int8ToPgType(c.NeighborhoodID),
	})
	if err != nil {
		return mapCustomerError("update", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteCustomer(ctx, id)
	if err != nil {
		// A única FK que aponta para customers é accounts.customer_id
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerHasAccount
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func mapCustomerError(op string, err error) error {
	switch {
	case isUniqueViolation(err, "customers_document_key"):
		return domain.ErrCustomerAlreadyExists
	case isForeignKeyViolation(err):
		return domain.ErrRegionNotFound
	}
	return fmt.Errorf("failed to %s customer: %w", op, err)
}

func toDomainCustomer(c db.Customer) *domain.Customer {
	return &domain.Customer{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       pgTypeToText(c.LastName),
		Document:       c.Document,
		Phone:          pgTypeToText(c.Phone),
		Email:          pgTypeToText(c.Email),
		Address:        pgTypeToText(c.Address),
		NeighborhoodID: pgTypeToInt8(c.NeighborhoodID),
	}
}
