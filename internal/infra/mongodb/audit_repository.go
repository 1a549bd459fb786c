package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const auditCollection = "audit_logs"

// AuditLog representa o documento que será salvo no Mongo.
// Usamos tags 'bson' em vez de 'json'.
type AuditLog struct {
	// _id é o próprio id da transação: reentregas da fila não duplicam o documento
	TransactionID        int64     `bson:"_id"`
	Kind                 string    `bson:"kind"`
	RoutingKey           string    `bson:"routing_key"`
	SourceAccountID      int64     `bson:"source_account_id"`
	DestinationAccountID int64     `bson:"destination_account_id"`
	Amount               string    `bson:"amount"`
	CorrespondentID      *int64    `bson:"correspondent_id,omitempty"`
	TransactionTypeID    *int64    `bson:"transaction_type_id,omitempty"`
	OccurredAt           string    `bson:"occurred_at"`
	ProcessedAt          time.Time `bson:"processed_at"`
}

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(client *mongo.Client, dbName string) *AuditRepository {
	// Cria/Obtém a collection "audit_logs"
	collection := client.Database(dbName).Collection(auditCollection)
	return &AuditRepository{collection: collection}
}

func (r *AuditRepository) Save(ctx context.Context, entry gateway.AuditEntry) error {
	doc := toAuditLog(entry)

	// Upsert pelo _id: a fila entrega "at least once"
	_, err := r.collection.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: doc.TransactionID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert audit log: %w", err)
	}
	return nil
}

func toAuditLog(entry gateway.AuditEntry) AuditLog {
	e := entry.Event
	return AuditLog{
		TransactionID:        e.TransactionID,
		Kind:                 e.Kind,
		RoutingKey:           entry.RoutingKey,
		SourceAccountID:      e.SourceAccountID,
		DestinationAccountID: e.DestinationAccountID,
		Amount:               e.Amount,
		CorrespondentID:      e.CorrespondentID,
		TransactionTypeID:    e.TransactionTypeID,
		OccurredAt:           e.OccurredAt,
		ProcessedAt:          entry.ReceivedAt,
	}
}
