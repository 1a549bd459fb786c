package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Handler processa o corpo de uma mensagem. Erros com domain.ErrInvalidLedgerEvent
// descartam a mensagem; qualquer outro erro devolve para a fila uma vez.
type Handler func(ctx context.Context, routingKey string, body []byte) error

type Consumer struct {
	channel        *amqp.Channel
	queue          string
	tag            string
	handler        Handler
	handlerTimeout time.Duration
}

func NewConsumer(ch *amqp.Channel, queue, tag string, handler Handler) *Consumer {
	return &Consumer{
		channel:        ch,
		queue:          queue,
		tag:            tag,
		handler:        handler,
		handlerTimeout: 5 * time.Second,
	}
}

// Run consome com ack manual até o contexto ser cancelado ou o canal cair.
func (c *Consumer) Run(ctx context.Context) error {
	// Prefetch 1: o RabbitMQ só manda a próxima depois do Ack
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queue, // queue
		c.tag,   // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	notifyClose := c.channel.NotifyClose(make(chan *amqp.Error, 1))

	log.Info().Str("queue", c.queue).Msg("Worker iniciado. Aguardando mensagens")
	for {
		select {
		case <-ctx.Done():
			return nil
		case amqpErr := <-notifyClose:
			if amqpErr != nil {
				return fmt.Errorf("canal RabbitMQ fechado: %w", amqpErr)
			}
			return errors.New("canal RabbitMQ fechado")
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal de mensagens fechado")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	logger := log.With().Str("routing_key", d.RoutingKey).Str("message_id", d.MessageId).Uint64("delivery_tag", d.DeliveryTag).Logger()

	handlerCtx, cancel := context.WithTimeout(ctx, c.handlerTimeout)
	err := c.handler(handlerCtx, d.RoutingKey, d.Body)
	cancel()

	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			logger.Error().Err(ackErr).Msg("Erro ao enviar Ack")
		}
	case errors.Is(err, domain.ErrInvalidLedgerEvent):
		logger.Warn().Err(err).Bytes("body", d.Body).Msg("Mensagem inválida descartada")
		if nackErr := d.Nack(false, false); nackErr != nil {
			logger.Error().Err(nackErr).Msg("Erro ao enviar Nack")
		}
	default:
		requeue := !d.Redelivered
		logger.Error().Err(err).Bool("requeue", requeue).Msg("Falha ao processar mensagem")
		if nackErr := d.Nack(false, requeue); nackErr != nil {
			logger.Error().Err(nackErr).Msg("Erro ao enviar Nack")
		}
	}
}
