package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccount_DebitCredit(t *testing.T) {
	a := &Account{Balance: money("100"), Status: AccountActive}

	require.NoError(t, a.Credit(money("50")))
	assert.True(t, a.Balance.Equal(money("150")))

	require.ErrorIs(t, a.Debit(money("200")), ErrInsufficientFunds)
	assert.True(t, a.Balance.Equal(money("150")), "débito recusado não altera o saldo")

	require.NoError(t, a.Debit(money("150")))
	assert.True(t, a.Balance.IsZero())

	assert.ErrorIs(t, a.Credit(money("0")), ErrInvalidAmount)
	assert.ErrorIs(t, a.Debit(money("-5")), ErrInvalidAmount)
}

func TestAccount_CreditRespectsBalanceLimit(t *testing.T) {
	a := &Account{Balance: money("9999999999999.00"), Status: AccountActive}

	require.ErrorIs(t, a.Credit(money("1")), ErrBalanceLimitExceeded)
	assert.True(t, a.Balance.Equal(money("9999999999999.00")), "crédito recusado não altera o saldo")

	require.NoError(t, a.Credit(money("0.99")))
	assert.True(t, a.Balance.Equal(MaxMoney))

	assert.ErrorIs(t, a.Credit(money("1e2000000")), ErrInvalidAmount)
}

func TestAccount_HasSufficientFunds(t *testing.T) {
	a := &Account{Balance: money("10.50")}
	assert.True(t, a.HasSufficientFunds(money("10.50")))
	assert.False(t, a.HasSufficientFunds(money("10.51")))
}

func TestParseAccountType(t *testing.T) {
	got, err := ParseAccountType(" savings ")
	require.NoError(t, err)
	assert.Equal(t, AccountSavings, got)

	got, err = ParseAccountType("Checking")
	require.NoError(t, err)
	assert.Equal(t, AccountChecking, got)

	_, err = ParseAccountType("Crypto")
	assert.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestParseAccountStatus(t *testing.T) {
	got, err := ParseAccountStatus("INACTIVE")
	require.NoError(t, err)
	assert.Equal(t, AccountInactive, got)

	_, err = ParseAccountStatus("frozen")
	assert.ErrorIs(t, err, ErrInvalidAccountStatus)
}

func TestFormatAccountNumber(t *testing.T) {
	assert.Equal(t, "0000042", FormatAccountNumber(42))
	assert.Equal(t, "1234567", FormatAccountNumber(1234567))
	assert.Len(t, FormatAccountNumber(1), AccountNumberWidth)
}

func TestTransactionKind_RoutingKey(t *testing.T) {
	assert.Equal(t, "transaction.deposit", KindDeposit.RoutingKey())
	assert.Equal(t, "transaction.withdrawal", KindWithdrawal.RoutingKey())
	assert.Equal(t, "transaction.transfer", KindTransfer.RoutingKey())
}
