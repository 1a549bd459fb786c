package handler

import (
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DTOs de resposta. Valores monetários saem como string com duas casas ("150.00").

type AccountResponse struct {
	ID         int64  `json:"id"`
	Number     string `json:"number"`
	CustomerID int64  `json:"customer_id"`
	Balance    string `json:"balance"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	OpenedAt   string `json:"opened_at"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		Number:     a.Number,
		CustomerID: a.CustomerID,
		Balance:    domain.FormatMoney(a.Balance),
		Status:     string(a.Status),
		Type:       string(a.Type),
		OpenedAt:   a.OpenedAt.Format(time.DateOnly),
	}
}

type TransactionResponse struct {
	ID                   int64     `json:"id"`
	Kind                 string    `json:"kind"`
	Amount               string    `json:"amount"`
	SourceAccountID      int64     `json:"source_account_id"`
	DestinationAccountID int64     `json:"destination_account_id"`
	CorrespondentID      *int64    `json:"correspondent_id"`
	TransactionTypeID    *int64    `json:"transaction_type_id"`
	CreatedAt            time.Time `json:"created_at"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                   t.ID,
		Kind:                 string(t.Kind),
		Amount:               domain.FormatMoney(t.Amount),
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		CorrespondentID:      t.CorrespondentID,
		TransactionTypeID:    t.TransactionTypeID,
		CreatedAt:            t.CreatedAt.UTC(),
	}
}

type CustomerResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       *string `json:"last_name"`
	Document       string  `json:"document"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	NeighborhoodID *int64  `json:"neighborhood_id"`
}

func toCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Document:       c.Document,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		NeighborhoodID: c.NeighborhoodID,
	}
}

type RegionResponse struct {
	ID       int64  `json:"id"`
	Level    string `json:"level"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

func toRegionResponse(r *domain.Region) RegionResponse {
	return RegionResponse{ID: r.ID, Level: string(r.Level), Name: r.Name, ParentID: r.ParentID}
}

type CorrespondentResponse struct {
	ID             int64            `json:"id"`
	Kind           string           `json:"kind"`
	Address        *string          `json:"address"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`
	Active         bool             `json:"active"`
	NeighborhoodID int64            `json:"neighborhood_id"`
}

func toCorrespondentResponse(c *domain.Correspondent) CorrespondentResponse {
	return CorrespondentResponse{
		ID:             c.ID,
		Kind:           c.Kind,
		Address:        c.Address,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		Active:         c.Active,
		NeighborhoodID: c.NeighborhoodID,
	}
}

type TransactionTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// mapSlice converte uma lista do domínio sem devolver null no JSON.
func mapSlice[T any, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
