package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/infra/http/middleware"
	"github.com/ledgerflow/corresponsal-api/internal/infra/memory"
	redisRepo "github.com/ledgerflow/corresponsal-api/internal/infra/redis"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

var testSecret = []byte("segredo-de-teste")

type RouterTestSuite struct {
	suite.Suite
	router http.Handler
	store  *memory.Store
	redis  *miniredis.Miniredis
}

func (s *RouterTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	accounts := memory.NewAccountRepository(s.store)
	transactions := memory.NewTransactionRepository(s.store)
	customers := memory.NewCustomerRepository(s.store)
	regions := memory.NewRegionRepository(s.store)
	catalog := memory.NewCatalogRepository(s.store)
	uow := memory.NewUow(s.store)

	deps := usecase.MovementDeps{
		AccountRepository:     accounts,
		TransactionRepository: transactions,
		CatalogRepository:     catalog,
		TransactionManager:    uow,
	}

	s.router = NewRouter(RouterDeps{
		Accounts: NewAccountHandler(
			usecase.NewOpenAccount(accounts, customers),
			usecase.NewGetAccount(accounts),
			usecase.NewUpdateAccount(accounts),
			usecase.NewListTransactions(accounts, transactions),
			usecase.NewDeleteAccount(accounts),
		),
		Movements: NewMovementHandler(usecase.NewDeposit(deps), usecase.NewWithdraw(deps), usecase.NewTransferMoney(deps)),
		Customers: NewCustomerHandler(usecase.NewCustomerUseCase(customers, regions)),
		Regions:   NewRegionHandler(usecase.NewRegionUseCase(regions)),
		Catalog:   NewCatalogHandler(usecase.NewCatalogUseCase(catalog, regions)),

		Idempotency:    redisRepo.NewIdempotencyRepository(client),
		IdempotencyTTL: time.Hour,
		JWTSecret:      testSecret,
		RequestTimeout: 5 * time.Second,
	})
}

func token(role domain.Role, ttl time.Duration) string {
	return signedToken(role, 1, ttl)
}

// customerToken é o token de CLIENTE: o claim id é o customer_id.
func customerToken(customerID int64) string {
	return signedToken(domain.RoleCustomer, customerID, time.Hour)
}

func signedToken(role domain.Role, userID int64, ttl time.Duration) string {
	claims := middleware.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		panic(err)
	}
	return signed
}

func (s *RouterTestSuite) do(method, path, bearer string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder, dst interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

// openAccount cadastra cliente e conta pela API e devolve a conta criada.
func (s *RouterTestSuite) openAccount(document, balance string) AccountResponse {
	admin := token(domain.RoleAdmin, time.Hour)

	rec := s.do(http.MethodPost, "/api/customers", admin, map[string]string{"first_name": "Cliente", "document": document})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var customer CustomerResponse
	s.decode(rec, &customer)

	rec = s.do(http.MethodPost, "/api/accounts", admin, map[string]interface{}{
		"customer_id":     customer.ID,
		"type":            "Savings",
		"initial_balance": balance,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var account AccountResponse
	s.decode(rec, &account)
	return account
}

func (s *RouterTestSuite) TestHealthIsPublic() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OK", rec.Body.String())
}

func (s *RouterTestSuite) TestAuth() {
	rec := s.do(http.MethodGet, "/api/accounts", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/accounts", "lixo", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/accounts", token(domain.RoleAuditor, -time.Minute), nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Token expirado")

	rec = s.do(http.MethodGet, "/api/accounts", token(domain.RoleAuditor, time.Hour), nil)
	s.Equal(http.StatusOK, rec.Code)

	// Auditor só lê
	rec = s.do(http.MethodPost, "/api/movements/deposit", token(domain.RoleAuditor, time.Hour), map[string]interface{}{"account_id": 1, "amount": "1"})
	s.Equal(http.StatusForbidden, rec.Code)

	// Cliente não cadastra regiões
	rec = s.do(http.MethodPost, "/api/regions/departments", token(domain.RoleCustomer, time.Hour), map[string]interface{}{"id": 5, "name": "Antioquia"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/regions/departments", token(domain.RoleDBAdmin, time.Hour), map[string]interface{}{"id": 5, "name": "Antioquia"})
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) TestMovementFlow() {
	source := s.openAccount("1", "100")
	destination := s.openAccount("2", "20")
	client := token(domain.RoleAdvisor, time.Hour)

	rec := s.do(http.MethodPost, "/api/movements/deposit", client, map[string]interface{}{"account_id": source.ID, "amount": "50"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var deposit MovementResponse
	s.decode(rec, &deposit)
	s.Equal("150.00", deposit.NewBalance)
	s.Equal("Deposit", deposit.Transaction.Kind)
	s.Equal("50.00", deposit.Transaction.Amount)

	rec = s.do(http.MethodPost, "/api/movements/withdrawal", client, map[string]interface{}{"account_id": source.ID, "amount": 200})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.JSONEq(`{"error":"Saldo insuficiente"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/movements/transfer", client, map[string]interface{}{
		"customer_id":            source.CustomerID,
		"destination_account_id": destination.ID,
		"amount":                 "100",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var transfer MovementResponse
	s.decode(rec, &transfer)
	s.Equal("50.00", transfer.NewBalance)
	s.Equal("120.00", transfer.DestinationBalance)

	rec = s.do(http.MethodGet, "/api/customers/"+itoa(destination.CustomerID)+"/balance", client, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var balance BalanceResponse
	s.decode(rec, &balance)
	s.Equal("120.00", balance.Balance)
	s.Equal(destination.Number, balance.AccountNumber)

	rec = s.do(http.MethodGet, "/api/accounts/"+itoa(source.ID)+"/transactions", client, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var ledger []TransactionResponse
	s.decode(rec, &ledger)
	s.Require().Len(ledger, 2)
	s.Equal("Transfer", ledger[0].Kind)

	rec = s.do(http.MethodGet, "/api/transactions/"+itoa(ledger[0].ID), client, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestErrorMapping() {
	account := s.openAccount("1", "10")
	staff := token(domain.RoleBackoffice, time.Hour)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"valor zero", http.MethodPost, "/api/movements/deposit", map[string]interface{}{"account_id": account.ID, "amount": "0"}, http.StatusBadRequest},
		{"três casas", http.MethodPost, "/api/movements/deposit", map[string]interface{}{"account_id": account.ID, "amount": "0.001"}, http.StatusBadRequest},
		{"sem conta", http.MethodPost, "/api/movements/deposit", map[string]interface{}{"amount": "1"}, http.StatusBadRequest},
		{"campo desconhecido", http.MethodPost, "/api/movements/deposit", map[string]interface{}{"account_id": account.ID, "amount": "1", "foo": 1}, http.StatusBadRequest},
		{"conta inexistente", http.MethodPost, "/api/movements/withdrawal", map[string]interface{}{"account_id": 999, "amount": "1"}, http.StatusNotFound},
		{"mesma conta", http.MethodPost, "/api/movements/transfer", map[string]interface{}{"source_account_id": account.ID, "destination_account_id": account.ID, "amount": "1"}, http.StatusUnprocessableEntity},
		{"segunda conta", http.MethodPost, "/api/accounts", map[string]interface{}{"customer_id": account.CustomerID, "type": "Savings"}, http.StatusConflict},
		{"cliente com conta", http.MethodDelete, "/api/customers/" + itoa(account.CustomerID), nil, http.StatusConflict},
		{"id inválido", http.MethodGet, "/api/accounts/abc", nil, http.StatusBadRequest},
		{"nível inválido", http.MethodGet, "/api/regions/planets", nil, http.StatusNotFound},
		{"acima do limite", http.MethodPost, "/api/movements/deposit", map[string]interface{}{"account_id": account.ID, "amount": "1e20"}, http.StatusBadRequest},
		{"expoente gigante", http.MethodPost, "/api/movements/deposit", map[string]interface{}{"account_id": account.ID, "amount": "1e2000000"}, http.StatusBadRequest},
		{"conta inexistente (delete)", http.MethodDelete, "/api/accounts/999", nil, http.StatusNotFound},
		{"status inválido", http.MethodPatch, "/api/accounts/" + itoa(account.ID), map[string]string{"status": "frozen"}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rec := s.do(tc.method, tc.path, staff, tc.body)
		s.Equal(tc.status, rec.Code, "%s: %s", tc.name, rec.Body.String())
	}
}

func (s *RouterTestSuite) TestIdempotentReplay() {
	account := s.openAccount("1", "0")
	client := customerToken(account.CustomerID)
	body := map[string]interface{}{"amount": "10"}

	first := s.do(http.MethodPost, "/api/movements/deposit", client, body, "Idempotency-Key", "abc")
	s.Require().Equal(http.StatusCreated, first.Code)

	second := s.do(http.MethodPost, "/api/movements/deposit", client, body, "Idempotency-Key", "abc")
	s.Equal(http.StatusCreated, second.Code)
	s.Equal("true", second.Header().Get("X-Idempotency-Hit"))
	s.JSONEq(first.Body.String(), second.Body.String())

	rec := s.do(http.MethodGet, "/api/accounts/"+itoa(account.ID), client, nil)
	var got AccountResponse
	s.decode(rec, &got)
	s.Equal("10.00", got.Balance)

	// Sem o cache, a chave única do ledger ainda barra a duplicata.
	s.redis.FlushAll()
	third := s.do(http.MethodPost, "/api/movements/deposit", client, body, "Idempotency-Key", "abc")
	s.Equal(http.StatusConflict, third.Code)
}

func (s *RouterTestSuite) TestBalanceLimit() {
	account := s.openAccount("1", "9999999999999.00")
	staff := token(domain.RoleBackoffice, time.Hour)

	rec := s.do(http.MethodPost, "/api/movements/deposit", staff, map[string]interface{}{"account_id": account.ID, "amount": "1"})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.JSONEq(`{"error":"Saldo ultrapassaria o limite da conta"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/accounts/"+itoa(account.ID), staff, nil)
	var got AccountResponse
	s.decode(rec, &got)
	s.Equal("9999999999999.00", got.Balance)

	rec = s.do(http.MethodPost, "/api/accounts", staff, map[string]interface{}{"customer_id": 999, "type": "Savings", "initial_balance": "1e14"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestOversizedBodyIsRejected() {
	account := s.openAccount("1", "10")
	padding := strings.Repeat("0", 128<<10)
	body := `{"account_id":` + itoa(account.ID) + `,"amount":"1` + padding + `"}`

	req := httptest.NewRequest(http.MethodPost, "/api/movements/deposit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(domain.RoleBackoffice, time.Hour))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodGet, "/api/accounts/"+itoa(account.ID), token(domain.RoleBackoffice, time.Hour), nil)
	var got AccountResponse
	s.decode(rec, &got)
	s.Equal("10.00", got.Balance)
}

func (s *RouterTestSuite) TestCustomerMovesOnlyOwnAccount() {
	own := s.openAccount("1", "100")
	other := s.openAccount("2", "100")
	client := customerToken(own.CustomerID)

	cases := []struct {
		name string
		path string
		body map[string]interface{}
	}{
		{"conta alheia por id", "/api/movements/withdrawal", map[string]interface{}{"account_id": other.ID, "amount": "10"}},
		{"cliente alheio", "/api/movements/withdrawal", map[string]interface{}{"customer_id": other.CustomerID, "amount": "10"}},
		{"transferência de conta alheia", "/api/movements/transfer", map[string]interface{}{"source_account_id": other.ID, "destination_account_id": own.ID, "amount": "10"}},
		{"id da própria conta", "/api/movements/deposit", map[string]interface{}{"account_id": own.ID, "amount": "10"}},
	}
	for _, tc := range cases {
		rec := s.do(http.MethodPost, tc.path, client, tc.body)
		s.Equal(http.StatusForbidden, rec.Code, "%s: %s", tc.name, rec.Body.String())
	}

	rec := s.do(http.MethodGet, "/api/accounts/"+itoa(other.ID), client, nil)
	var untouched AccountResponse
	s.decode(rec, &untouched)
	s.Equal("100.00", untouched.Balance)

	rec = s.do(http.MethodPost, "/api/movements/withdrawal", client, map[string]interface{}{"amount": "30"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var out MovementResponse
	s.decode(rec, &out)
	s.Equal("70.00", out.NewBalance)

	rec = s.do(http.MethodPost, "/api/movements/transfer", client, map[string]interface{}{
		"customer_id":            own.CustomerID,
		"destination_account_id": other.ID,
		"amount":                 "20",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.decode(rec, &out)
	s.Equal("50.00", out.NewBalance)
	s.Equal("120.00", out.DestinationBalance)
}

func (s *RouterTestSuite) TestDeleteAccount() {
	unused := s.openAccount("1", "0")
	used := s.openAccount("2", "10")
	staff := token(domain.RoleBackoffice, time.Hour)

	rec := s.do(http.MethodDelete, "/api/accounts/"+itoa(unused.ID), customerToken(unused.CustomerID), nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/accounts/"+itoa(unused.ID), staff, nil)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/accounts/"+itoa(unused.ID), staff, nil).Code)

	// Sem conta, o cliente pode ser removido
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/customers/"+itoa(unused.CustomerID), staff, nil).Code)

	rec = s.do(http.MethodPost, "/api/movements/deposit", staff, map[string]interface{}{"account_id": used.ID, "amount": "1"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodDelete, "/api/accounts/"+itoa(used.ID), staff, nil)
	s.Equal(http.StatusConflict, rec.Code)
	s.JSONEq(`{"error":"Conta possui movimentos no ledger"}`, rec.Body.String())
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/accounts/"+itoa(used.ID), staff, nil).Code)
}

func (s *RouterTestSuite) TestRegionsAndCatalog() {
	admin := token(domain.RoleAdmin, time.Hour)

	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/regions/departments", admin, map[string]interface{}{"id": 63, "name": "Quindío"}).Code)
	rec := s.do(http.MethodPost, "/api/regions/municipalities", admin, map[string]interface{}{"name": "Armenia", "parent_id": 63})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/regions/communes", admin, map[string]interface{}{"id": 1, "name": "Comuna 1", "parent_id": 99})
	s.Equal(http.StatusBadRequest, rec.Code)

	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/regions/communes", admin, map[string]interface{}{"id": 1, "name": "Comuna 1", "parent_id": 1}).Code)
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/regions/neighborhoods", admin, map[string]interface{}{"id": 10, "name": "Centro", "parent_id": 1}).Code)

	rec = s.do(http.MethodGet, "/api/regions/neighborhoods?parent_id=1", admin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var neighborhoods []RegionResponse
	s.decode(rec, &neighborhoods)
	s.Len(neighborhoods, 1)

	rec = s.do(http.MethodPost, "/api/correspondents", admin, map[string]interface{}{"kind": "Tienda", "neighborhood_id": 10, "latitude": "4.5339"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/transaction-types", admin, map[string]string{"name": "Recaudo"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodDelete, "/api/regions/departments/63", admin, nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
