package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/config"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/ledgerflow/corresponsal-api/internal/infra/http/handler"
	"github.com/ledgerflow/corresponsal-api/internal/infra/memory"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres"
	"github.com/ledgerflow/corresponsal-api/internal/infra/rabbitmq"
	redisInfra "github.com/ledgerflow/corresponsal-api/internal/infra/redis"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// repositories é o conjunto de gateways de um driver de armazenamento.
type repositories struct {
	accounts       gateway.AccountRepository
	transactions   gateway.TransactionRepository
	customers      gateway.CustomerRepository
	regions        gateway.RegionRepository
	catalog        gateway.CatalogRepository
	transactionMgr gateway.TransactionManager
	close          func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn().Msg("STORAGE_DRIVER=memory: os dados somem quando o processo termina")
		store := memory.NewStore()
		return &repositories{
			accounts:       memory.NewAccountRepository(store),
			transactions:   memory.NewTransactionRepository(store),
			customers:      memory.NewCustomerRepository(store),
			regions:        memory.NewRegionRepository(store),
			catalog:        memory.NewCatalogRepository(store),
			transactionMgr: memory.NewUow(store),
			close:          func() {},
		}, nil
	}

	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
	}
	dbPool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("✅ Conectado ao PostgreSQL com sucesso!")

	return &repositories{
		accounts:       postgres.NewAccountRepository(dbPool),
		transactions:   postgres.NewTransactionRepository(dbPool),
		customers:      postgres.NewCustomerRepository(dbPool),
		regions:        postgres.NewRegionRepository(dbPool),
		catalog:        postgres.NewCatalogRepository(dbPool),
		transactionMgr: postgres.NewUow(dbPool), //  Unit of Work (Gerenciador de Transações)
		close:          dbPool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	if err := cfg.ValidateAuth(); err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	config.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível abrir o armazenamento")
	}
	defer repos.close()

	var idempotencyRepo gateway.IdempotencyRepository
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Não foi possível conectar ao Redis (Idempotência desabilitada)")
	} else {
		log.Info().Msg("✅ Conectado ao Redis!")
		idempotencyRepo = redisInfra.NewIdempotencyRepository(redisClient)
	}

	var eventPublisher gateway.EventPublisher
	rabbitConn, err := rabbitmq.Dial(cfg.RabbitURL, "CorresponsalAPI_Publisher")
	if err != nil {
		log.Warn().Err(err).Msg("Falha ao conectar no RabbitMQ (Eventos não serão enviados)")
	} else {
		defer rabbitConn.Close()
		ch, err := rabbitConn.Channel()
		if err != nil {
			log.Fatal().Err(err).Msg("Falha ao abrir canal RabbitMQ")
		}
		defer ch.Close()

		if err := rabbitmq.DeclareLedgerExchange(ch); err != nil {
			log.Fatal().Err(err).Msg("Falha ao declarar Exchange")
		}
		log.Info().Msg("✅ Conectado ao RabbitMQ!")
		eventPublisher = rabbitmq.NewPublisher(ch)
	}

	// Inicialização da Camada de UseCase (Regras de Negócio)
	movementDeps := usecase.MovementDeps{
		AccountRepository:     repos.accounts,
		TransactionRepository: repos.transactions,
		CatalogRepository:     repos.catalog,
		TransactionManager:    repos.transactionMgr,
		EventPublisher:        eventPublisher,
	}

	var jwtSecret []byte
	if cfg.AuthEnabled {
		jwtSecret = []byte(cfg.JWTSecret)
	} else {
		log.Warn().Msg("AUTH_ENABLED=false: rotas /api sem autenticação")
	}

	// Handlers
	router := handler.NewRouter(handler.RouterDeps{
		Accounts: handler.NewAccountHandler(
			usecase.NewOpenAccount(repos.accounts, repos.customers),
			usecase.NewGetAccount(repos.accounts),
			usecase.NewUpdateAccount(repos.accounts),
			usecase.NewListTransactions(repos.accounts, repos.transactions),
			usecase.NewDeleteAccount(repos.accounts),
		),
		Movements: handler.NewMovementHandler(
			usecase.NewDeposit(movementDeps),
			usecase.NewWithdraw(movementDeps),
			usecase.NewTransferMoney(movementDeps),
		),
		Customers:      handler.NewCustomerHandler(usecase.NewCustomerUseCase(repos.customers, repos.regions)),
		Regions:        handler.NewRegionHandler(usecase.NewRegionUseCase(repos.regions)),
		Catalog:        handler.NewCatalogHandler(usecase.NewCatalogUseCase(repos.catalog, repos.regions)),
		Idempotency:    idempotencyRepo,
		IdempotencyTTL: cfg.IdempotencyTTL,
		JWTSecret:      jwtSecret,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Falha no shutdown do servidor HTTP")
		}
	}()

	log.Info().Msgf("🚀 Servidor rodando em %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Falha ao iniciar servidor HTTP")
	}
	log.Info().Msg("Servidor encerrado")
}
