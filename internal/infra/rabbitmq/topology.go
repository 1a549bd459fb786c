package rabbitmq

import (
	"fmt"

	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	AuditQueue      = "audit_queue"
	AuditBindingKey = "transaction.#"
)

// Dial abre a conexão com um nome visível no painel do RabbitMQ.
func Dial(url, connectionName string) (*amqp.Connection, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Properties: amqp.Table{
			"connection_name": connectionName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	return conn, nil
}

// DeclareLedgerExchange garante o exchange de eventos (idempotente).
func DeclareLedgerExchange(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		gateway.LedgerExchange, // name
		"topic",                // type
		true,                   // durable
		false,                  // auto-deleted
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	return nil
}

// DeclareAuditQueue cria a fila durável e liga "transaction.#" a ela.
func DeclareAuditQueue(ch *amqp.Channel) (string, error) {
	if err := DeclareLedgerExchange(ch); err != nil {
		return "", err
	}

	q, err := ch.QueueDeclare(
		AuditQueue, // name
		true,       // durable (sobrevive a restart do server)
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return "", fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, AuditBindingKey, gateway.LedgerExchange, false, nil); err != nil {
		return "", fmt.Errorf("failed to bind queue: %w", err)
	}
	return q.Name, nil
}
