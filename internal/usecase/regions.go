package usecase

import (
	"context"
	"errors"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

// RegionUseCase é o CRUD dos quatro níveis geográficos.
type RegionUseCase struct {
	regionRepo gateway.RegionRepository
}

func NewRegionUseCase(regionRepo gateway.RegionRepository) *RegionUseCase {
	return &RegionUseCase{regionRepo: regionRepo}
}

func (uc *RegionUseCase) Create(ctx context.Context, region *domain.Region) (*domain.Region, error) {
	if err := checkRegion(ctx, uc.regionRepo, region); err != nil {
		return nil, err
	}
	if err := uc.regionRepo.Create(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (uc *RegionUseCase) Get(ctx context.Context, level domain.RegionLevel, id int64) (*domain.Region, error) {
	return uc.regionRepo.GetByID(ctx, level, id)
}

func (uc *RegionUseCase) List(ctx context.Context, level domain.RegionLevel, parentID *int64) ([]*domain.Region, error) {
	return uc.regionRepo.List(ctx, level, parentID)
}

func (uc *RegionUseCase) Update(ctx context.Context, region *domain.Region) (*domain.Region, error) {
	if _, err := uc.regionRepo.GetByID(ctx, region.Level, region.ID); err != nil {
		return nil, err
	}
	if err := checkRegion(ctx, uc.regionRepo, region); err != nil {
		return nil, err
	}
	if err := uc.regionRepo.Update(ctx, region); err != nil {
		return nil, err
	}
	return region, nil
}

func (uc *RegionUseCase) Delete(ctx context.Context, level domain.RegionLevel, id int64) error {
	return uc.regionRepo.Delete(ctx, level, id)
}

// checkRegion valida os campos e a existência do pai no nível de cima.
func checkRegion(ctx context.Context, repo gateway.RegionRepository, region *domain.Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	parentLevel, ok := region.Level.Parent()
	if !ok {
		return nil
	}
	if _, err := repo.GetByID(ctx, parentLevel, *region.ParentID); err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) {
			return domain.ErrParentRegionNotFound
		}
		return err
	}
	return nil
}
