package memory

import (
	"context"
	"sort"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

type RegionRepository struct {
	store *Store
	inTx  bool
}

func NewRegionRepository(store *Store) *RegionRepository {
	return &RegionRepository{store: store}
}

func (r *RegionRepository) rows(level domain.RegionLevel) map[int64]domain.Region {
	rows, ok := r.store.st.regions[level]
	if !ok {
		rows = make(map[int64]domain.Region)
		r.store.st.regions[level] = rows
	}
	return rows
}

func (r *RegionRepository) Create(_ context.Context, region *domain.Region) error {
	defer r.store.lock(r.inTx)()
	rows := r.rows(region.Level)
	if region.ID == 0 {
		for id := range rows {
			if id > region.ID {
				region.ID = id
			}
		}
		region.ID++
	}
	if _, exists := rows[region.ID]; exists {
		return domain.ErrRegionAlreadyExists
	}
	rows[region.ID] = *region
	return nil
}

func (r *RegionRepository) Upsert(_ context.Context, region *domain.Region) error {
	defer r.store.lock(r.inTx)()
	r.rows(region.Level)[region.ID] = *region
	return nil
}

func (r *RegionRepository) GetByID(_ context.Context, level domain.RegionLevel, id int64) (*domain.Region, error) {
	defer r.store.lock(r.inTx)()
	region, ok := r.rows(level)[id]
	if !ok {
		return nil, domain.ErrRegionNotFound
	}
	return &region, nil
}

func (r *RegionRepository) List(_ context.Context, level domain.RegionLevel, parentID *int64) ([]*domain.Region, error) {
	defer r.store.lock(r.inTx)()
	out := make([]*domain.Region, 0)
	for _, region := range r.rows(level) {
		if parentID != nil && (region.ParentID == nil || *region.ParentID != *parentID) {
			continue
		}
		region := region
		out = append(out, &region)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RegionRepository) Update(_ context.Context, region *domain.Region) error {
	defer r.store.lock(r.inTx)()
	rows := r.rows(region.Level)
	if _, ok := rows[region.ID]; !ok {
		return domain.ErrRegionNotFound
	}
	rows[region.ID] = *region
	return nil
}

func (r *RegionRepository) Delete(_ context.Context, level domain.RegionLevel, id int64) error {
	defer r.store.lock(r.inTx)()
	rows := r.rows(level)
	if _, ok := rows[id]; !ok {
		return domain.ErrRegionNotFound
	}
	if r.referenced(level, id) {
		return domain.ErrRegionInUse
	}
	delete(rows, id)
	return nil
}

// referenced imita as foreign keys do schema Postgres.
func (r *RegionRepository) referenced(level domain.RegionLevel, id int64) bool {
	st := r.store.st
	for childLevel, rows := range st.regions {
		if parent, ok := childLevel.Parent(); !ok || parent != level {
			continue
		}
		for _, child := range rows {
			if child.ParentID != nil && *child.ParentID == id {
				return true
			}
		}
	}
	if level != domain.LevelNeighborhood {
		return false
	}
	for _, c := range st.customers {
		if c.NeighborhoodID != nil && *c.NeighborhoodID == id {
			return true
		}
	}
	for _, c := range st.correspondents {
		if c.NeighborhoodID == id {
			return true
		}
	}
	return false
}

func (r *RegionRepository) WithTx(tx gateway.TransactionObject) gateway.RegionRepository {
	if !r.store.joins(tx) {
		return r
	}
	return &RegionRepository{store: r.store, inTx: true}
}
