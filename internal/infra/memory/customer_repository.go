package memory

import (
	"context"
	"sort"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(_ context.Context, customer *domain.Customer) error {
	defer r.store.lock(false)()
	st := r.store.st
	for _, existing := range st.customers {
		if existing.Document == customer.Document {
			return domain.ErrCustomerAlreadyExists
		}
	}
	st.nextCustomerID++
	customer.ID = st.nextCustomerID
	st.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	defer r.store.lock(false)()
	customer, ok := r.store.st.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &customer, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	defer r.store.lock(false)()
	out := make([]*domain.Customer, 0, len(r.store.st.customers))
	for _, customer := range r.store.st.customers {
		customer := customer
		out = append(out, &customer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *domain.Customer) error {
	defer r.store.lock(false)()
	st := r.store.st
	if _, ok := st.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	for _, existing := range st.customers {
		if existing.ID != customer.ID && existing.Document == customer.Document {
			return domain.ErrCustomerAlreadyExists
		}
	}
	st.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id int64) error {
	defer r.store.lock(false)()
	st := r.store.st
	if _, ok := st.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	for _, account := range st.accounts {
		if account.CustomerID == id {
			return domain.ErrCustomerHasAccount
		}
	}
	delete(st.customers, id)
	return nil
}
