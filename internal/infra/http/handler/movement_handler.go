package handler

import (
	"net/http"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	internalMiddleware "github.com/ledgerflow/corresponsal-api/internal/infra/http/middleware"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/shopspring/decimal"
)

// MovementHandler expõe depósito, saque e transferência via HTTP
type MovementHandler struct {
	depositUseCase  *usecase.DepositUseCase
	withdrawUseCase *usecase.WithdrawUseCase
	transferUseCase *usecase.TransferMoneyUseCase
}

func NewMovementHandler(deposit *usecase.DepositUseCase, withdraw *usecase.WithdrawUseCase, transfer *usecase.TransferMoneyUseCase) *MovementHandler {
	return &MovementHandler{
		depositUseCase:  deposit,
		withdrawUseCase: withdraw,
		transferUseCase: transfer,
	}
}

// DTOs (Data Transfer Objects) para Request/Response
// Usamos tags JSON para mapear snake_case (padrão de APIs)
// amount aceita número ou string ("50.00").
type MovementRequest struct {
	AccountID         int64           `json:"account_id"`
	CustomerID        int64           `json:"customer_id"`
	Amount            decimal.Decimal `json:"amount"`
	CorrespondentID   *int64          `json:"correspondent_id"`
	TransactionTypeID *int64          `json:"transaction_type_id"`
}

type TransferRequest struct {
	SourceAccountID      int64           `json:"source_account_id"`
	CustomerID           int64           `json:"customer_id"`
	DestinationAccountID int64           `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
	CorrespondentID      *int64          `json:"correspondent_id"`
	TransactionTypeID    *int64          `json:"transaction_type_id"`
}

type MovementResponse struct {
	NewBalance         string              `json:"new_balance"`
	DestinationBalance string              `json:"destination_balance,omitempty"`
	Transaction        TransactionResponse `json:"transaction"`
}

func idempotencyKey(r *http.Request) *string {
	key := r.Header.Get("Idempotency-Key")
	if key == "" {
		return nil
	}
	return &key
}

// ownAccount prende o token de CLIENTE à própria conta: o claim "id" é o customer_id.
// Perfis de funcionário (ou API sem autenticação) escolhem a conta livremente.
func ownAccount(r *http.Request, sel usecase.AccountSelector) (usecase.AccountSelector, error) {
	claims, ok := internalMiddleware.ClaimsFromContext(r.Context())
	if !ok || claims.Role != domain.RoleCustomer {
		return sel, nil
	}
	if sel.AccountID != 0 || (sel.CustomerID != 0 && sel.CustomerID != claims.UserID) {
		return sel, domain.ErrNotOwnAccount
	}
	return usecase.AccountSelector{CustomerID: claims.UserID}, nil
}

func (req MovementRequest) toInput(r *http.Request, account usecase.AccountSelector) usecase.MovementInput {
	return usecase.MovementInput{
		Account:           account,
		Amount:            req.Amount,
		CorrespondentID:   req.CorrespondentID,
		TransactionTypeID: req.TransactionTypeID,
		IdempotencyKey:    idempotencyKey(r),
	}
}

func (h *MovementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req MovementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	account, err := ownAccount(r, usecase.AccountSelector{AccountID: req.AccountID, CustomerID: req.CustomerID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	output, err := h.depositUseCase.Execute(r.Context(), req.toInput(r, account))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, MovementResponse{
		NewBalance:  domain.FormatMoney(output.NewBalance),
		Transaction: toTransactionResponse(output.Transaction),
	})
}

func (h *MovementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req MovementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	account, err := ownAccount(r, usecase.AccountSelector{AccountID: req.AccountID, CustomerID: req.CustomerID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	output, err := h.withdrawUseCase.Execute(r.Context(), req.toInput(r, account))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, MovementResponse{
		NewBalance:  domain.FormatMoney(output.NewBalance),
		Transaction: toTransactionResponse(output.Transaction),
	})
}

// Transfer processa a requisição de transferência
func (h *MovementHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	source, err := ownAccount(r, usecase.AccountSelector{AccountID: req.SourceAccountID, CustomerID: req.CustomerID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	output, err := h.transferUseCase.Execute(r.Context(), usecase.TransferMoneyInput{
		Source:               source,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
		CorrespondentID:      req.CorrespondentID,
		TransactionTypeID:    req.TransactionTypeID,
		IdempotencyKey:       idempotencyKey(r),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, MovementResponse{
		NewBalance:         domain.FormatMoney(output.NewBalance),
		DestinationBalance: domain.FormatMoney(output.DestinationBalance),
		Transaction:        toTransactionResponse(output.Transaction),
	})
}
