package memory

import (
	"context"
	"sort"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

type TransactionRepository struct {
	store *Store
	inTx  bool
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) Create(_ context.Context, tx *domain.Transaction) error {
	defer r.store.lock(r.inTx)()
	st := r.store.st
	if tx.IdempotencyKey != nil {
		for _, existing := range st.transactions {
			if existing.IdempotencyKey != nil && *existing.IdempotencyKey == *tx.IdempotencyKey {
				return domain.ErrIdempotencyKey
			}
		}
	}
	st.nextTransactionID++
	tx.ID = st.nextTransactionID
	tx.CreatedAt = r.store.now()
	st.transactions[tx.ID] = *tx
	return nil
}

func (r *TransactionRepository) GetByID(_ context.Context, id int64) (*domain.Transaction, error) {
	defer r.store.lock(r.inTx)()
	tx, ok := r.store.st.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return &tx, nil
}

func (r *TransactionRepository) ListByAccount(_ context.Context, accountID int64) ([]*domain.Transaction, error) {
	defer r.store.lock(r.inTx)()
	out := make([]*domain.Transaction, 0)
	for _, tx := range r.store.st.transactions {
		if tx.Involves(accountID) {
			tx := tx
			out = append(out, &tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *TransactionRepository) WithTx(tx gateway.TransactionObject) gateway.TransactionRepository {
	if !r.store.joins(tx) {
		return r
	}
	return &TransactionRepository{store: r.store, inTx: true}
}
