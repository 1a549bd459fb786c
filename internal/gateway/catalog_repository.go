package gateway

import (
	"context"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
)

// CatalogRepository guarda as dimensões de classificação dos movimentos.
type CatalogRepository interface {
	CreateCorrespondent(ctx context.Context, c *domain.Correspondent) error
	GetCorrespondent(ctx context.Context, id int64) (*domain.Correspondent, error)
	ListCorrespondents(ctx context.Context) ([]*domain.Correspondent, error)
	DeleteCorrespondent(ctx context.Context, id int64) error

	CreateTransactionType(ctx context.Context, t *domain.TransactionType) error
	GetTransactionType(ctx context.Context, id int64) (*domain.TransactionType, error)
	ListTransactionTypes(ctx context.Context) ([]*domain.TransactionType, error)
	DeleteTransactionType(ctx context.Context, id int64) error
}
