package gateway

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

type RegionRepository interface {
	// Create usa region.ID quando informado; caso contrário o banco gera.
	Create(ctx context.Context, region *domain.Region) error
	// Upsert é usado pela importação de CSV.
	Upsert(ctx context.Context, region *domain.Region) error
	GetByID(ctx context.Context, level domain.RegionLevel, id int64) (*domain.Region, error)
	// List filtra por pai quando parentID não é nil.
	List(ctx context.Context, level domain.RegionLevel, parentID *int64) ([]*domain.Region, error)
	Update(ctx context.Context, region *domain.Region) error
	Delete(ctx context.Context, level domain.RegionLevel, id int64) error
	WithTx(tx TransactionObject) RegionRepository
}
