package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Correspondent é o ponto físico (agente) por onde o movimento entrou.
type Correspondent struct {
	ID             int64
	Kind           string
	Address        *string
	Latitude       *decimal.Decimal
	Longitude      *decimal.Decimal
	Active         bool
	NeighborhoodID int64
}

func (c *Correspondent) Validate() error {
	if strings.TrimSpace(c.Kind) == "" || c.NeighborhoodID <= 0 {
		return ErrInvalidCatalogEntry
	}
	return nil
}

// TransactionType é a classificação livre de um movimento.
type TransactionType struct {
	ID   int64
	Name string
}

func (t *TransactionType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidCatalogEntry
	}
	return nil
}
