package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	internalMiddleware "github.com/ledgerflow/corresponsal-api/internal/infra/http/middleware"
	"github.com/rs/zerolog/log"
)

// RouterDeps reúne os handlers e a infraestrutura opcional do roteador.
type RouterDeps struct {
	Accounts  *AccountHandler
	Movements *MovementHandler
	Customers *CustomerHandler
	Regions   *RegionHandler
	Catalog   *CatalogHandler

	// Idempotency nil desliga o cache de respostas dos movimentos.
	Idempotency    gateway.IdempotencyRepository
	IdempotencyTTL time.Duration

	// JWTSecret vazio desliga autenticação e checagem de perfil.
	JWTSecret      []byte
	RequestTimeout time.Duration
}

var (
	staffRoles     = []domain.Role{domain.RoleAdmin, domain.RoleBackoffice, domain.RoleAdvisor}
	// CLIENTE movimenta só a própria conta (ver ownAccount).
	movementRoles  = append([]domain.Role{domain.RoleCustomer}, staffRoles...)
	referenceRoles = []domain.Role{domain.RoleAdmin, domain.RoleDBAdmin}
)

func NewRouter(deps RouterDeps) http.Handler {
	router := chi.NewRouter()

	// Middlewares básicos
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer) // Evita crash se der panic
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	router.Use(middleware.Timeout(timeout))

	// Rota de Health Check (para o Docker saber se estamos vivos)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("Falha ao escrever resposta de health check")
		}
	})

	authEnabled := len(deps.JWTSecret) > 0
	allow := func(roles ...domain.Role) func(http.Handler) http.Handler {
		if !authEnabled {
			return func(next http.Handler) http.Handler { return next }
		}
		return internalMiddleware.RequireRole(roles...)
	}
	idempotency := func(next http.Handler) http.Handler { return next }
	if deps.Idempotency != nil {
		idempotency = internalMiddleware.Idempotency(deps.Idempotency, deps.IdempotencyTTL)
	}

	router.Route("/api", func(r chi.Router) {
		if authEnabled {
			r.Use(internalMiddleware.Authenticate(deps.JWTSecret))
		}

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", deps.Accounts.List)
			r.With(allow(staffRoles...)).Post("/", deps.Accounts.Open)
			r.Get("/{id}", deps.Accounts.Get)
			r.With(allow(staffRoles...)).Patch("/{id}", deps.Accounts.Update)
			r.With(allow(staffRoles...)).Delete("/{id}", deps.Accounts.Delete)
			r.Get("/{id}/transactions", deps.Accounts.Transactions)
		})

		r.Get("/transactions/{id}", deps.Accounts.Transaction)

		r.Route("/movements", func(r chi.Router) {
			r.Use(allow(movementRoles...))
			r.Use(idempotency)
			r.Post("/deposit", deps.Movements.Deposit)
			r.Post("/withdrawal", deps.Movements.Withdraw)
			r.Post("/transfer", deps.Movements.Transfer)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", deps.Customers.List)
			r.With(allow(staffRoles...)).Post("/", deps.Customers.Create)
			r.Get("/{id}", deps.Customers.Get)
			r.With(allow(staffRoles...)).Put("/{id}", deps.Customers.Update)
			r.With(allow(staffRoles...)).Delete("/{id}", deps.Customers.Delete)
			r.Get("/{id}/balance", deps.Accounts.Balance)
		})

		r.Route("/regions/{level}", func(r chi.Router) {
			r.Get("/", deps.Regions.List)
			r.With(allow(referenceRoles...)).Post("/", deps.Regions.Create)
			r.Get("/{id}", deps.Regions.Get)
			r.With(allow(referenceRoles...)).Put("/{id}", deps.Regions.Update)
			r.With(allow(referenceRoles...)).Delete("/{id}", deps.Regions.Delete)
		})

		r.Route("/correspondents", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListCorrespondents)
			r.With(allow(referenceRoles...)).Post("/", deps.Catalog.CreateCorrespondent)
			r.Get("/{id}", deps.Catalog.GetCorrespondent)
			r.With(allow(referenceRoles...)).Delete("/{id}", deps.Catalog.DeleteCorrespondent)
		})

		r.Route("/transaction-types", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListTransactionTypes)
			r.With(allow(referenceRoles...)).Post("/", deps.Catalog.CreateTransactionType)
			r.Get("/{id}", deps.Catalog.GetTransactionType)
			r.With(allow(referenceRoles...)).Delete("/{id}", deps.Catalog.DeleteTransactionType)
		})
	})

	return router
}
