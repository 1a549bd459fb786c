package usecase

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// CustomerUseCase é o CRUD de clientes.
type CustomerUseCase struct {
	customerRepo gateway.CustomerRepository
	regionRepo   gateway.RegionRepository
}

func NewCustomerUseCase(customerRepo gateway.CustomerRepository, regionRepo gateway.RegionRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, regionRepo: regionRepo}
}

func (uc *CustomerUseCase) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := uc.validate(ctx, customer); err != nil {
		return nil, err
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

func (uc *CustomerUseCase) List(ctx context.Context) ([]*domain.Customer, error) {
	return uc.customerRepo.List(ctx)
}

func (uc *CustomerUseCase) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if _, err := uc.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return nil, err
	}
	if err := uc.validate(ctx, customer); err != nil {
		return nil, err
	}
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.customerRepo.Delete(ctx, id)
}

func (uc *CustomerUseCase) validate(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if customer.NeighborhoodID != nil {
		if _, err := uc.regionRepo.GetByID(ctx, domain.LevelNeighborhood, *customer.NeighborhoodID); err != nil {
			return err
		}
	}
	return nil
}
