// Package memory implementa os gateways sem banco de dados.
//
// Um único mutex é dono de todas as linhas: dentro de Uow.Run os repositórios
// ligados à transação (WithTx) operam sem travar de novo, e qualquer erro
// devolvido pela função restaura o estado anterior.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
)

type state struct {
	accounts         map[int64]domain.Account
	transactions     map[int64]domain.Transaction
	customers        map[int64]domain.Customer
	regions          map[domain.RegionLevel]map[int64]domain.Region
	correspondents   map[int64]domain.Correspondent
	transactionTypes map[int64]domain.TransactionType

	nextAccountID         int64
	nextAccountNumber     int64
	nextTransactionID     int64
	nextCustomerID        int64
	nextCorrespondentID   int64
	nextTransactionTypeID int64
}

func newState() *state {
	return &state{
		accounts:         make(map[int64]domain.Account),
		transactions:     make(map[int64]domain.Transaction),
		customers:        make(map[int64]domain.Customer),
		regions:          make(map[domain.RegionLevel]map[int64]domain.Region),
		correspondents:   make(map[int64]domain.Correspondent),
		transactionTypes: make(map[int64]domain.TransactionType),
	}
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	cp := *s
	cp.accounts = cloneMap(s.accounts)
	cp.transactions = cloneMap(s.transactions)
	cp.customers = cloneMap(s.customers)
	cp.correspondents = cloneMap(s.correspondents)
	cp.transactionTypes = cloneMap(s.transactionTypes)
	cp.regions = make(map[domain.RegionLevel]map[int64]domain.Region, len(s.regions))
	for level, rows := range s.regions {
		cp.regions[level] = cloneMap(rows)
	}
	return &cp
}

// Store é o "banco" em memória compartilhado pelos repositórios.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

func NewStore() *Store {
	return &Store{st: newState(), now: time.Now}
}

// txMarker é o TransactionObject entregue por Uow.Run.
type txMarker struct {
	store *Store
}

// joins diz se tx é uma transação aberta neste mesmo Store.
func (s *Store) joins(tx gateway.TransactionObject) bool {
	marker, ok := tx.(*txMarker)
	return ok && marker.store == s
}

// lock trava o Store, exceto quando o chamador já está dentro de Run.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Uow implementa gateway.TransactionManager
type Uow struct {
	store *Store
}

func NewUow(store *Store) *Uow {
	return &Uow{store: store}
}

// Run executa fn segurando o Store inteiro. Se fn falhar, o estado volta ao snapshot.
func (u *Uow) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := gateway.TxFromContext(ctx); ok && u.store.joins(tx) {
		return fn(ctx)
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snapshot := u.store.st.clone()
	ctxWithTx := context.WithValue(ctx, gateway.TransactionKey, &txMarker{store: u.store})
	if err := fn(ctxWithTx); err != nil {
		u.store.st = snapshot
		return err
	}
	return nil
}
