package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MovementTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (s *MovementTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.ctx = context.Background()
}

func (s *MovementTestSuite) assertBalance(id int64, want string) {
	s.T().Helper()
	got := s.env.balance(id)
	s.True(got.Equal(amount(want)), "saldo da conta %d: got %s want %s", id, got, want)
}

func (s *MovementTestSuite) TestDeposit() {
	account := s.env.newAccount("1", "100")

	out, err := s.env.deposit.Execute(s.ctx, MovementInput{
		Account: AccountSelector{AccountID: account.ID},
		Amount:  amount("50"),
	})
	s.Require().NoError(err)

	s.True(out.NewBalance.Equal(amount("150")))
	s.assertBalance(account.ID, "150")

	s.Equal(domain.KindDeposit, out.Transaction.Kind)
	s.Equal(account.ID, out.Transaction.SourceAccountID)
	s.Equal(account.ID, out.Transaction.DestinationAccountID)
	s.True(out.Transaction.Amount.Equal(amount("50")))
	s.NotZero(out.Transaction.ID)
	s.Len(s.env.ledger(account.ID), 1)
}

func (s *MovementTestSuite) TestDeposit_ByCustomer() {
	account := s.env.newAccount("1", "0")

	out, err := s.env.deposit.Execute(s.ctx, MovementInput{
		Account: AccountSelector{CustomerID: account.CustomerID},
		Amount:  amount("12.34"),
	})
	s.Require().NoError(err)
	s.Equal(account.ID, out.Transaction.DestinationAccountID)
	s.assertBalance(account.ID, "12.34")
}

func (s *MovementTestSuite) TestWithdraw() {
	account := s.env.newAccount("1", "150")

	out, err := s.env.withdraw.Execute(s.ctx, MovementInput{
		Account: AccountSelector{AccountID: account.ID},
		Amount:  amount("30.50"),
	})
	s.Require().NoError(err)
	s.True(out.NewBalance.Equal(amount("119.50")))
	s.Equal(domain.KindWithdrawal, out.Transaction.Kind)
	s.Equal(out.Transaction.SourceAccountID, out.Transaction.DestinationAccountID)
}

func (s *MovementTestSuite) TestWithdraw_InsufficientFunds() {
	account := s.env.newAccount("1", "150")

	_, err := s.env.withdraw.Execute(s.ctx, MovementInput{
		Account: AccountSelector{AccountID: account.ID},
		Amount:  amount("200"),
	})
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.assertBalance(account.ID, "150")
	s.Empty(s.env.ledger(account.ID))
	s.Empty(s.env.publisher.published())
}

func (s *MovementTestSuite) TestWithdraw_WholeBalance() {
	account := s.env.newAccount("1", "75.25")

	out, err := s.env.withdraw.Execute(s.ctx, MovementInput{
		Account: AccountSelector{AccountID: account.ID},
		Amount:  amount("75.25"),
	})
	s.Require().NoError(err)
	s.True(out.NewBalance.IsZero())
}

func (s *MovementTestSuite) TestTransfer() {
	source := s.env.newAccount("1", "150")
	destination := s.env.newAccount("2", "20")

	out, err := s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{CustomerID: source.CustomerID},
		DestinationAccountID: destination.ID,
		Amount:               amount("100"),
	})
	s.Require().NoError(err)

	s.True(out.NewBalance.Equal(amount("50")))
	s.True(out.DestinationBalance.Equal(amount("120")))
	s.assertBalance(source.ID, "50")
	s.assertBalance(destination.ID, "120")

	s.Equal(domain.KindTransfer, out.Transaction.Kind)
	s.Equal(source.ID, out.Transaction.SourceAccountID)
	s.Equal(destination.ID, out.Transaction.DestinationAccountID)

	// Uma única entrada, visível no extrato das duas contas
	s.Len(s.env.ledger(source.ID), 1)
	s.Len(s.env.ledger(destination.ID), 1)
	s.Equal(out.Transaction.ID, s.env.ledger(destination.ID)[0].ID)
}

func (s *MovementTestSuite) TestTransfer_InsufficientFundsChangesNothing() {
	source := s.env.newAccount("1", "10")
	destination := s.env.newAccount("2", "20")

	_, err := s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{AccountID: source.ID},
		DestinationAccountID: destination.ID,
		Amount:               amount("10.01"),
	})
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.assertBalance(source.ID, "10")
	s.assertBalance(destination.ID, "20")
	s.Empty(s.env.ledger(source.ID))
}

func (s *MovementTestSuite) TestTransfer_SameAccount() {
	account := s.env.newAccount("1", "100")

	_, err := s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{CustomerID: account.CustomerID},
		DestinationAccountID: account.ID,
		Amount:               amount("10"),
	})
	s.ErrorIs(err, domain.ErrSameAccount)
	s.assertBalance(account.ID, "100")
}

func (s *MovementTestSuite) TestTransfer_UnknownDestination() {
	source := s.env.newAccount("1", "100")

	_, err := s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{AccountID: source.ID},
		DestinationAccountID: 999,
		Amount:               amount("10"),
	})
	s.ErrorIs(err, domain.ErrAccountNotFound)
	s.assertBalance(source.ID, "100")
}

func (s *MovementTestSuite) TestInvalidAmounts() {
	account := s.env.newAccount("1", "100")
	other := s.env.newAccount("2", "0")

	for _, raw := range []string{"0", "-5", "0.001"} {
		_, err := s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount(raw)})
		s.ErrorIs(err, domain.ErrInvalidAmount, raw)

		_, err = s.env.withdraw.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount(raw)})
		s.ErrorIs(err, domain.ErrInvalidAmount, raw)

		_, err = s.env.transfer.Execute(s.ctx, TransferMoneyInput{
			Source:               AccountSelector{AccountID: account.ID},
			DestinationAccountID: other.ID,
			Amount:               amount(raw),
		})
		s.ErrorIs(err, domain.ErrInvalidAmount, raw)
	}

	s.assertBalance(account.ID, "100")
	s.Empty(s.env.ledger(account.ID))
}

func (s *MovementTestSuite) TestSelectorRequired() {
	_, err := s.env.deposit.Execute(s.ctx, MovementInput{Amount: amount("1")})
	s.ErrorIs(err, domain.ErrAccountSelectorRequired)

	_, err = s.env.transfer.Execute(s.ctx, TransferMoneyInput{Amount: amount("1"), DestinationAccountID: 1})
	s.ErrorIs(err, domain.ErrAccountSelectorRequired)
}

func (s *MovementTestSuite) TestAccountNotFound() {
	_, err := s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: 42}, Amount: amount("1")})
	s.ErrorIs(err, domain.ErrAccountNotFound)

	_, err = s.env.withdraw.Execute(s.ctx, MovementInput{Account: AccountSelector{CustomerID: 42}, Amount: amount("1")})
	s.ErrorIs(err, domain.ErrAccountNotFound)
}

func (s *MovementTestSuite) TestInactiveAccount() {
	account := s.env.newAccount("1", "100")
	other := s.env.newAccount("2", "100")

	_, err := NewUpdateAccount(s.env.accounts).Execute(s.ctx, UpdateAccountInput{
		AccountID: account.ID,
		Status:    ptr("inactive"),
	})
	s.Require().NoError(err)

	_, err = s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("1")})
	s.ErrorIs(err, domain.ErrAccountInactive)

	_, err = s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{AccountID: other.ID},
		DestinationAccountID: account.ID,
		Amount:               amount("1"),
	})
	s.ErrorIs(err, domain.ErrAccountInactive)
	s.assertBalance(other.ID, "100")
}

func (s *MovementTestSuite) TestClassification() {
	account := s.env.newAccount("1", "100")
	neighborhood := s.seedNeighborhood()

	correspondent := &domain.Correspondent{Kind: "Tienda", Active: true, NeighborhoodID: neighborhood}
	s.Require().NoError(s.env.catalog.CreateCorrespondent(s.ctx, correspondent))
	txType := &domain.TransactionType{Name: "Pago de servicios"}
	s.Require().NoError(s.env.catalog.CreateTransactionType(s.ctx, txType))

	out, err := s.env.deposit.Execute(s.ctx, MovementInput{
		Account:           AccountSelector{AccountID: account.ID},
		Amount:            amount("5"),
		CorrespondentID:   &correspondent.ID,
		TransactionTypeID: &txType.ID,
	})
	s.Require().NoError(err)
	s.Equal(correspondent.ID, *out.Transaction.CorrespondentID)
	s.Equal(txType.ID, *out.Transaction.TransactionTypeID)

	_, err = s.env.deposit.Execute(s.ctx, MovementInput{
		Account:         AccountSelector{AccountID: account.ID},
		Amount:          amount("5"),
		CorrespondentID: ptr(int64(999)),
	})
	s.ErrorIs(err, domain.ErrCorrespondentNotFound)

	_, err = s.env.withdraw.Execute(s.ctx, MovementInput{
		Account:           AccountSelector{AccountID: account.ID},
		Amount:            amount("5"),
		TransactionTypeID: ptr(int64(999)),
	})
	s.ErrorIs(err, domain.ErrTransactionTypeNotFound)
	s.assertBalance(account.ID, "105")
}

func (s *MovementTestSuite) seedNeighborhood() int64 {
	for _, r := range []*domain.Region{
		{ID: 63, Level: domain.LevelDepartment, Name: "Quindío"},
		{ID: 1, Level: domain.LevelMunicipality, Name: "Armenia", ParentID: ptr(int64(63))},
		{ID: 1, Level: domain.LevelCommune, Name: "Comuna 1", ParentID: ptr(int64(1))},
		{ID: 10, Level: domain.LevelNeighborhood, Name: "Centro", ParentID: ptr(int64(1))},
	} {
		s.Require().NoError(s.env.regions.Create(s.ctx, r))
	}
	return 10
}

func (s *MovementTestSuite) TestIdempotencyKeyReuseRollsBack() {
	account := s.env.newAccount("1", "100")
	key := "dep-1"

	_, err := s.env.deposit.Execute(s.ctx, MovementInput{
		Account:        AccountSelector{AccountID: account.ID},
		Amount:         amount("10"),
		IdempotencyKey: &key,
	})
	s.Require().NoError(err)

	_, err = s.env.deposit.Execute(s.ctx, MovementInput{
		Account:        AccountSelector{AccountID: account.ID},
		Amount:         amount("10"),
		IdempotencyKey: &key,
	})
	s.ErrorIs(err, domain.ErrIdempotencyKey)
	s.assertBalance(account.ID, "110")
	s.Len(s.env.ledger(account.ID), 1)
}

func (s *MovementTestSuite) TestRoundTrip() {
	account := s.env.newAccount("1", "37.10")

	_, err := s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("12.90")})
	s.Require().NoError(err)
	_, err = s.env.withdraw.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("12.90")})
	s.Require().NoError(err)

	s.assertBalance(account.ID, "37.10")
	s.Len(s.env.ledger(account.ID), 2)
}

func (s *MovementTestSuite) TestEventsPublishedAfterCommit() {
	source := s.env.newAccount("1", "100")
	destination := s.env.newAccount("2", "0")

	_, err := s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: source.ID}, Amount: amount("1")})
	s.Require().NoError(err)
	_, err = s.env.withdraw.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: source.ID}, Amount: amount("2")})
	s.Require().NoError(err)
	out, err := s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{AccountID: source.ID},
		DestinationAccountID: destination.ID,
		Amount:               amount("3"),
	})
	s.Require().NoError(err)

	events := s.env.publisher.published()
	s.Require().Len(events, 3)
	s.Equal("transaction.deposit", events[0].routingKey)
	s.Equal("transaction.withdrawal", events[1].routingKey)
	s.Equal("transaction.transfer", events[2].routingKey)
	for _, e := range events {
		s.Equal(gateway.LedgerExchange, e.exchange)
	}
	s.Equal(out.Transaction.ID, events[2].event.TransactionID)
	s.Equal("3.00", events[2].event.Amount)
	s.Equal(destination.ID, events[2].event.DestinationAccountID)
}

func (s *MovementTestSuite) TestPublishFailureDoesNotFailMovement() {
	account := s.env.newAccount("1", "100")
	s.env.publisher.err = errors.New("rabbit fora")

	out, err := s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("1")})
	s.Require().NoError(err)
	s.True(out.NewBalance.Equal(amount("101")))
}

func (s *MovementTestSuite) TestNilPublisher() {
	env := s.env
	deposit := NewDeposit(MovementDeps{
		AccountRepository:     env.accounts,
		TransactionRepository: env.transactions,
		CatalogRepository:     env.catalog,
		TransactionManager:    env.uow,
	})
	account := env.newAccount("1", "0")

	_, err := deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("1")})
	s.NoError(err)
}

// Vários saques do saldo inteiro ao mesmo tempo: exatamente um passa.
func (s *MovementTestSuite) TestConcurrentFullWithdrawals() {
	account := s.env.newAccount("1", "100")
	const workers = 20

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.env.withdraw.Execute(context.Background(), MovementInput{
				Account: AccountSelector{AccountID: account.ID},
				Amount:  amount("100"),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientFunds):
			insufficient++
		default:
			s.Failf("erro inesperado", "%v", err)
		}
	}
	s.Equal(1, ok)
	s.Equal(workers-1, insufficient)
	s.assertBalance(account.ID, "0")
	s.Len(s.env.ledger(account.ID), 1)
}

// Transferências cruzadas concorrentes não criam nem destroem dinheiro.
func (s *MovementTestSuite) TestConcurrentTransfersConserveTotal() {
	a := s.env.newAccount("1", "500")
	b := s.env.newAccount("2", "500")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		from, to := a, b
		if i%2 == 1 {
			from, to = b, a
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.env.transfer.Execute(context.Background(), TransferMoneyInput{
				Source:               AccountSelector{AccountID: from.ID},
				DestinationAccountID: to.ID,
				Amount:               amount("7.77"),
			})
		}()
	}
	wg.Wait()

	total := s.env.balance(a.ID).Add(s.env.balance(b.ID))
	s.True(total.Equal(decimal.NewFromInt(1000)), "total %s", total)
	s.False(s.env.balance(a.ID).IsNegative())
	s.False(s.env.balance(b.ID).IsNegative())
}

func (s *MovementTestSuite) TestDeposit_AboveBalanceLimit() {
	account := s.env.newAccount("1", "9999999999999.00")

	_, err := s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("1")})
	s.ErrorIs(err, domain.ErrBalanceLimitExceeded)
	s.assertBalance(account.ID, "9999999999999.00")
	s.Empty(s.env.ledger(account.ID))

	_, err = s.env.deposit.Execute(s.ctx, MovementInput{Account: AccountSelector{AccountID: account.ID}, Amount: amount("0.99")})
	s.Require().NoError(err)
	s.assertBalance(account.ID, "9999999999999.99")
}

func (s *MovementTestSuite) TestTransfer_DestinationLimitRollsBackDebit() {
	source := s.env.newAccount("1", "100")
	destination := s.env.newAccount("2", "9999999999999.99")

	_, err := s.env.transfer.Execute(s.ctx, TransferMoneyInput{
		Source:               AccountSelector{AccountID: source.ID},
		DestinationAccountID: destination.ID,
		Amount:               amount("10"),
	})
	s.ErrorIs(err, domain.ErrBalanceLimitExceeded)
	s.assertBalance(source.ID, "100")
	s.assertBalance(destination.ID, "9999999999999.99")
	s.Empty(s.env.ledger(source.ID))
	s.Empty(s.env.publisher.published())
}

func TestMovementTestSuite(t *testing.T) {
	suite.Run(t, new(MovementTestSuite))
}
