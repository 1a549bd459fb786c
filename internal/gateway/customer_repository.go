package gateway

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	// Delete falha com domain.ErrCustomerHasAccount enquanto houver conta vinculada.
	Delete(ctx context.Context, id int64) error
}
