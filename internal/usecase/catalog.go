package usecase

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// CatalogUseCase administra corresponsais e tipos de transação.
type CatalogUseCase struct {
	catalogRepo gateway.CatalogRepository
	regionRepo  gateway.RegionRepository
}

func NewCatalogUseCase(catalogRepo gateway.CatalogRepository, regionRepo gateway.RegionRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo, regionRepo: regionRepo}
}

func (uc *CatalogUseCase) CreateCorrespondent(ctx context.Context, c *domain.Correspondent) (*domain.Correspondent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.regionRepo.GetByID(ctx, domain.LevelNeighborhood, c.NeighborhoodID); err != nil {
		return nil, err
	}
	if err := uc.catalogRepo.CreateCorrespondent(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CatalogUseCase) GetCorrespondent(ctx context.Context, id int64) (*domain.Correspondent, error) {
	return uc.catalogRepo.GetCorrespondent(ctx, id)
}

func (uc *CatalogUseCase) ListCorrespondents(ctx context.Context) ([]*domain.Correspondent, error) {
	return uc.catalogRepo.ListCorrespondents(ctx)
}

func (uc *CatalogUseCase) DeleteCorrespondent(ctx context.Context, id int64) error {
	return uc.catalogRepo.DeleteCorrespondent(ctx, id)
}

func (uc *CatalogUseCase) CreateTransactionType(ctx context.Context, t *domain.TransactionType) (*domain.TransactionType, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := uc.catalogRepo.CreateTransactionType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *CatalogUseCase) GetTransactionType(ctx context.Context, id int64) (*domain.TransactionType, error) {
	return uc.catalogRepo.GetTransactionType(ctx, id)
}

func (uc *CatalogUseCase) ListTransactionTypes(ctx context.Context) ([]*domain.TransactionType, error) {
	return uc.catalogRepo.ListTransactionTypes(ctx)
}

func (uc *CatalogUseCase) DeleteTransactionType(ctx context.Context, id int64) error {
	return uc.catalogRepo.DeleteTransactionType(ctx, id)
}
