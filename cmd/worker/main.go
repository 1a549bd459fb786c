package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerflow/corresponsal-api/internal/config"
	"github.com/ledgerflow/corresponsal-api/internal/infra/mongodb"
	"github.com/ledgerflow/corresponsal-api/internal/infra/rabbitmq"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	config.SetupLogger(cfg)

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao criar client MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Erro ao desconectar Mongo")
		}
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Verifica conexão
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("Erro ao pingar MongoDB")
	}
	log.Info().Msg("✅ Conectado ao MongoDB!")

	recordAudit := usecase.NewRecordAudit(mongodb.NewAuditRepository(mongoClient, cfg.MongoDatabase))

	conn, err := rabbitmq.Dial(cfg.RabbitURL, "AuditWorker_Consumer")
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no RabbitMQ")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar conexão RabbitMQ")
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao abrir canal")
	}

	queue, err := rabbitmq.DeclareAuditQueue(ch)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao declarar fila de auditoria")
	}

	// Graceful Shutdown: o contexto cai com Ctrl+C ou SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := rabbitmq.NewConsumer(ch, queue, "audit_worker-"+uuid.NewString()[:8], recordAudit.Execute)
	if err := consumer.Run(ctx); err != nil {
		// Força o worker a cair para o Docker subir de novo
		log.Fatal().Err(err).Msg("Consumidor interrompido")
	}
	log.Info().Msg("Shutting down worker...")
}
