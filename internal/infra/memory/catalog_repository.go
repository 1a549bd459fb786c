package memory

import (
	"context"
	"sort"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

type CatalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) CreateCorrespondent(_ context.Context, c *domain.Correspondent) error {
	defer r.store.lock(false)()
	st := r.store.st
	for _, existing := range st.correspondents {
		if existing.Kind == c.Kind {
			return domain.ErrCatalogAlreadyExists
		}
	}
	st.nextCorrespondentID++
	c.ID = st.nextCorrespondentID
	st.correspondents[c.ID] = *c
	return nil
}

func (r *CatalogRepository) GetCorrespondent(_ context.Context, id int64) (*domain.Correspondent, error) {
	defer r.store.lock(false)()
	c, ok := r.store.st.correspondents[id]
	if !ok {
		return nil, domain.ErrCorrespondentNotFound
	}
	return &c, nil
}

func (r *CatalogRepository) ListCorrespondents(_ context.Context) ([]*domain.Correspondent, error) {
	defer r.store.lock(false)()
	out := make([]*domain.Correspondent, 0, len(r.store.st.correspondents))
	for _, c := range r.store.st.correspondents {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) DeleteCorrespondent(_ context.Context, id int64) error {
	defer r.store.lock(false)()
	st := r.store.st
	if _, ok := st.correspondents[id]; !ok {
		return domain.ErrCorrespondentNotFound
	}
	for _, tx := range st.transactions {
		if tx.CorrespondentID != nil && *tx.CorrespondentID == id {
			return domain.ErrCatalogInUse
		}
	}
	delete(st.correspondents, id)
	return nil
}

func (r *CatalogRepository) CreateTransactionType(_ context.Context, t *domain.TransactionType) error {
	defer r.store.lock(false)()
	st := r.store.st
	st.nextTransactionTypeID++
	t.ID = st.nextTransactionTypeID
	st.transactionTypes[t.ID] = *t
	return nil
}

func (r *CatalogRepository) GetTransactionType(_ context.Context, id int64) (*domain.TransactionType, error) {
	defer r.store.lock(false)()
	t, ok := r.store.st.transactionTypes[id]
	if !ok {
		return nil, domain.ErrTransactionTypeNotFound
	}
	return &t, nil
}

func (r *CatalogRepository) ListTransactionTypes(_ context.Context) ([]*domain.TransactionType, error) {
	defer r.store.lock(false)()
	out := make([]*domain.TransactionType, 0, len(r.store.st.transactionTypes))
	for _, t := range r.store.st.transactionTypes {
		t := t
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) DeleteTransactionType(_ context.Context, id int64) error {
	defer r.store.lock(false)()
	st := r.store.st
	if _, ok := st.transactionTypes[id]; !ok {
		return domain.ErrTransactionTypeNotFound
	}
	for _, tx := range st.transactions {
		if tx.TransactionTypeID != nil && *tx.TransactionTypeID == id {
			return domain.ErrCatalogInUse
		}
	}
	delete(st.transactionTypes, id)
	return nil
}
