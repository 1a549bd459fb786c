package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher implementa gateway.EventPublisher sobre um canal AMQP.
type Publisher struct {
	mu sync.Mutex // canal AMQP não aceita publishes concorrentes
	ch *amqp.Channel
}

func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish serializa o evento em JSON e envia como mensagem persistente.
func (p *Publisher) Publish(ctx context.Context, exchange, routingKey string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode ledger event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}

	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, exchange, routingKey, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", routingKey, exchange, err)
	}

	log.Debug().Str("routing_key", routingKey).Str("message_id", msg.MessageId).Msg("Evento do ledger publicado")
	return nil
}
