package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/ledgerflow/corresponsal-api/internal/infra/memory"
	"github.com/shopspring/decimal"
)

type publishedEvent struct {
	exchange   string
	routingKey string
	event      gateway.LedgerEvent
}

// recordingPublisher guarda os eventos em vez de mandar para o RabbitMQ.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, exchange, routingKey string, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	event, ok := body.(gateway.LedgerEvent)
	if !ok {
		return errors.New("payload inesperado")
	}
	p.events = append(p.events, publishedEvent{exchange: exchange, routingKey: routingKey, event: event})
	return nil
}

func (p *recordingPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

// testEnv monta os usecases sobre o store em memória.
type testEnv struct {
	store        *memory.Store
	accounts     *memory.AccountRepository
	transactions *memory.TransactionRepository
	customers    *memory.CustomerRepository
	regions      *memory.RegionRepository
	catalog      *memory.CatalogRepository
	uow          *memory.Uow
	publisher    *recordingPublisher

	deposit     *DepositUseCase
	withdraw    *WithdrawUseCase
	transfer    *TransferMoneyUseCase
	openAccount *OpenAccountUseCase
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	env := &testEnv{
		store:        store,
		accounts:     memory.NewAccountRepository(store),
		transactions: memory.NewTransactionRepository(store),
		customers:    memory.NewCustomerRepository(store),
		regions:      memory.NewRegionRepository(store),
		catalog:      memory.NewCatalogRepository(store),
		uow:          memory.NewUow(store),
		publisher:    &recordingPublisher{},
	}
	deps := MovementDeps{
		AccountRepository:     env.accounts,
		TransactionRepository: env.transactions,
		CatalogRepository:     env.catalog,
		TransactionManager:    env.uow,
		EventPublisher:        env.publisher,
	}
	env.deposit = NewDeposit(deps)
	env.withdraw = NewWithdraw(deps)
	env.transfer = NewTransferMoney(deps)
	env.openAccount = NewOpenAccount(env.accounts, env.customers)
	return env
}

// newAccount cria um cliente e a conta dele com o saldo inicial informado.
func (e *testEnv) newAccount(document, balance string) *domain.Account {
	ctx := context.Background()
	customer := &domain.Customer{FirstName: "Cliente " + document, Document: document}
	if err := e.customers.Create(ctx, customer); err != nil {
		panic(err)
	}
	account, err := e.openAccount.Execute(ctx, OpenAccountInput{
		CustomerID:     customer.ID,
		Type:           "Savings",
		InitialBalance: decimal.RequireFromString(balance),
	})
	if err != nil {
		panic(err)
	}
	return account
}

func (e *testEnv) balance(id int64) decimal.Decimal {
	account, err := e.accounts.GetByID(context.Background(), id)
	if err != nil {
		panic(err)
	}
	return account.Balance
}

func (e *testEnv) ledger(accountID int64) []*domain.Transaction {
	list, err := e.transactions.ListByAccount(context.Background(), accountID)
	if err != nil {
		panic(err)
	}
	return list
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}
