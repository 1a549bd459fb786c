package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(strings.ToLower(strings.TrimSpace(s))) {
	case AccountActive:
		return AccountActive, nil
	case AccountInactive:
		return AccountInactive, nil
	}
	return "", ErrInvalidAccountStatus
}

type AccountType string

const (
	AccountSavings  AccountType = "Savings"
	AccountChecking AccountType = "Checking"
)

func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return AccountSavings, nil
	case "checking":
		return AccountChecking, nil
	}
	return "", ErrInvalidAccountType
}

// AccountNumberWidth é a largura fixa do número de conta exibido ao cliente.
const AccountNumberWidth = 7

// FormatAccountNumber transforma o valor da sequence no número de conta ("0000042").
func FormatAccountNumber(seq int64) string {
	return fmt.Sprintf("%0*d", AccountNumberWidth, seq)
}

// Account representa a conta bancária de um cliente.
// Clean Architecture: esta entidade não sabe o que é JSON nem SQL.
type Account struct {
	ID         int64
	Number     string
	CustomerID int64
	Balance    decimal.Decimal
	Status     AccountStatus
	Type       AccountType
	OpenedAt   time.Time
	UpdatedAt  time.Time
}

func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// HasSufficientFunds valida se a conta pode pagar antes mesmo de tocar no DB
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

func (a *Account) Debit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !a.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	newBalance := a.Balance.Add(amount)
	if newBalance.GreaterThan(MaxMoney) {
		return ErrBalanceLimitExceeded
	}
	a.Balance = newBalance
	return nil
}
