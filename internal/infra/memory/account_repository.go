package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/shopspring/decimal"
)

// AccountRepository implementa gateway.AccountRepository em memória
type AccountRepository struct {
	store *Store
	inTx  bool
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	defer r.store.lock(r.inTx)()
	st := r.store.st

	for _, existing := range st.accounts {
		if existing.CustomerID == account.CustomerID {
			return domain.ErrAccountAlreadyExists
		}
	}

	st.nextAccountID++
	st.nextAccountNumber++
	now := r.store.now()
	account.ID = st.nextAccountID
	account.Number = domain.FormatAccountNumber(st.nextAccountNumber)
	account.Balance = account.Balance.Round(domain.MoneyScale)
	account.OpenedAt = now.Truncate(24 * time.Hour)
	account.UpdatedAt = now
	st.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	defer r.store.lock(r.inTx)()
	account, ok := r.store.st.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

// GetByIDForUpdate devolve o mesmo que GetByID: o mutex de Run já é o lock.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) GetByCustomerID(_ context.Context, customerID int64) (*domain.Account, error) {
	defer r.store.lock(r.inTx)()
	for _, account := range r.store.st.accounts {
		if account.CustomerID == customerID {
			return &account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	defer r.store.lock(r.inTx)()
	out := make([]*domain.Account, 0, len(r.store.st.accounts))
	for _, account := range r.store.st.accounts {
		account := account
		out = append(out, &account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepository) Debit(_ context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	defer r.store.lock(r.inTx)()
	account, ok := r.store.st.accounts[id]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	if err := account.Debit(amount); err != nil {
		return decimal.Zero, err
	}
	account.UpdatedAt = r.store.now()
	r.store.st.accounts[id] = account
	return account.Balance, nil
}

func (r *AccountRepository) Credit(_ context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	defer r.store.lock(r.inTx)()
	account, ok := r.store.st.accounts[id]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	if err := account.Credit(amount); err != nil {
		return decimal.Zero, err
	}
	account.UpdatedAt = r.store.now()
	r.store.st.accounts[id] = account
	return account.Balance, nil
}

func (r *AccountRepository) UpdateDetails(_ context.Context, account *domain.Account) error {
	defer r.store.lock(r.inTx)()
	current, ok := r.store.st.accounts[account.ID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	current.Status = account.Status
	current.Type = account.Type
	current.UpdatedAt = r.store.now()
	r.store.st.accounts[account.ID] = current
	*account = current
	return nil
}

// Delete recusa conta citada no ledger, como a FK de transactions no Postgres.
func (r *AccountRepository) Delete(_ context.Context, id int64) error {
	defer r.store.lock(r.inTx)()
	st := r.store.st
	if _, ok := st.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	for _, tx := range st.transactions {
		if tx.Involves(id) {
			return domain.ErrAccountHasTransactions
		}
	}
	delete(st.accounts, id)
	return nil
}

func (r *AccountRepository) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	if !r.store.joins(tx) {
		return r
	}
	return &AccountRepository{store: r.store, inTx: true}
}
