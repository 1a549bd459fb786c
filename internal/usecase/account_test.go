package usecase

import (
	"context"
	"testing"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	customer := &domain.Customer{FirstName: "Ana", Document: "1094"}
	require.NoError(t, env.customers.Create(ctx, customer))

	account, err := env.openAccount.Execute(ctx, OpenAccountInput{
		CustomerID:     customer.ID,
		Type:           "Checking",
		InitialBalance: amount("20.50"),
	})
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, domain.AccountActive, account.Status)
	assert.Equal(t, domain.AccountChecking, account.Type)
	assert.Len(t, account.Number, 7)
	assert.False(t, account.OpenedAt.IsZero())
	assert.True(t, account.Balance.Equal(amount("20.50")))

	t.Run("cliente com conta", func(t *testing.T) {
		_, err := env.openAccount.Execute(ctx, OpenAccountInput{CustomerID: customer.ID, Type: "Savings"})
		assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
	})
	t.Run("cliente inexistente", func(t *testing.T) {
		_, err := env.openAccount.Execute(ctx, OpenAccountInput{CustomerID: 999, Type: "Savings"})
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})
	t.Run("tipo inválido", func(t *testing.T) {
		_, err := env.openAccount.Execute(ctx, OpenAccountInput{CustomerID: customer.ID, Type: "Crypto"})
		assert.ErrorIs(t, err, domain.ErrInvalidAccountType)
	})
	t.Run("saldo negativo", func(t *testing.T) {
		_, err := env.openAccount.Execute(ctx, OpenAccountInput{CustomerID: customer.ID, Type: "Savings", InitialBalance: amount("-1")})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestOpenAccount_NumbersAreSequential(t *testing.T) {
	env := newTestEnv()
	first := env.newAccount("1", "0")
	second := env.newAccount("2", "0")

	assert.NotEqual(t, first.Number, second.Number)
	assert.Less(t, first.Number, second.Number)
}

func TestUpdateAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	account := env.newAccount("1", "80")
	update := NewUpdateAccount(env.accounts)

	updated, err := update.Execute(ctx, UpdateAccountInput{
		AccountID: account.ID,
		Status:    ptr("inactive"),
		Type:      ptr("Checking"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountInactive, updated.Status)
	assert.Equal(t, domain.AccountChecking, updated.Type)

	// Saldo e número não mudam por aqui
	stored, err := env.accounts.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(amount("80")))
	assert.Equal(t, account.Number, stored.Number)

	_, err = update.Execute(ctx, UpdateAccountInput{AccountID: account.ID, Status: ptr("frozen")})
	assert.ErrorIs(t, err, domain.ErrInvalidAccountStatus)

	_, err = update.Execute(ctx, UpdateAccountInput{AccountID: 404, Status: ptr("active")})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	account := env.newAccount("1", "5")
	env.newAccount("2", "6")
	get := NewGetAccount(env.accounts)

	byCustomer, err := get.ByCustomer(ctx, account.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, byCustomer.ID)
	assert.True(t, byCustomer.Balance.Equal(amount("5")))

	_, err = get.ByCustomer(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	list, err := get.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListTransactions_NewestFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	a := env.newAccount("1", "100")
	b := env.newAccount("2", "0")

	_, err := env.deposit.Execute(ctx, MovementInput{Account: AccountSelector{AccountID: a.ID}, Amount: amount("1")})
	require.NoError(t, err)
	transfer, err := env.transfer.Execute(ctx, TransferMoneyInput{
		Source:               AccountSelector{AccountID: a.ID},
		DestinationAccountID: b.ID,
		Amount:               amount("2"),
	})
	require.NoError(t, err)

	list := NewListTransactions(env.accounts, env.transactions)

	entries, err := list.Execute(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.KindTransfer, entries[0].Kind)
	assert.Equal(t, domain.KindDeposit, entries[1].Kind)

	entries, err = list.Execute(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got, err := list.Get(ctx, transfer.Transaction.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(amount("2")))

	_, err = list.Execute(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = list.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	unused := env.newAccount("1", "0")
	used := env.newAccount("2", "10")
	remove := NewDeleteAccount(env.accounts)

	_, err := env.withdraw.Execute(ctx, MovementInput{Account: AccountSelector{AccountID: used.ID}, Amount: amount("1")})
	require.NoError(t, err)

	assert.ErrorIs(t, remove.Execute(ctx, used.ID), domain.ErrAccountHasTransactions)
	assert.Len(t, env.ledger(used.ID), 1)

	require.NoError(t, remove.Execute(ctx, unused.ID))
	_, err = env.accounts.GetByID(ctx, unused.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorIs(t, remove.Execute(ctx, unused.ID), domain.ErrAccountNotFound)

	// A vaga de conta única do cliente volta a ficar livre
	reopened, err := env.openAccount.Execute(ctx, OpenAccountInput{CustomerID: unused.CustomerID, Type: "Checking"})
	require.NoError(t, err)
	assert.NotEqual(t, unused.ID, reopened.ID)
}
