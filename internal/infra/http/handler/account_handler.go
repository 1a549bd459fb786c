package handler

import (
	"net/http"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	openAccountUC      *usecase.OpenAccountUseCase
	getAccountUC       *usecase.GetAccountUseCase
	updateAccountUC    *usecase.UpdateAccountUseCase
	listTransactionsUC *usecase.ListTransactionsUseCase
	deleteAccountUC    *usecase.DeleteAccountUseCase
}

func NewAccountHandler(
	openAccountUC *usecase.OpenAccountUseCase,
	getAccountUC *usecase.GetAccountUseCase,
	updateAccountUC *usecase.UpdateAccountUseCase,
	listTransactionsUC *usecase.ListTransactionsUseCase,
	deleteAccountUC *usecase.DeleteAccountUseCase,
) *AccountHandler {
	return &AccountHandler{
		openAccountUC:      openAccountUC,
		getAccountUC:       getAccountUC,
		updateAccountUC:    updateAccountUC,
		listTransactionsUC: listTransactionsUC,
		deleteAccountUC:    deleteAccountUC,
	}
}

type OpenAccountRequest struct {
	CustomerID     int64           `json:"customer_id"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

type UpdateAccountRequest struct {
	Status *string `json:"status"`
	Type   *string `json:"type"`
}

type BalanceResponse struct {
	CustomerID    int64  `json:"customer_id"`
	AccountID     int64  `json:"account_id"`
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
}

func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	account, err := h.openAccountUC.Execute(r.Context(), usecase.OpenAccountInput{
		CustomerID:     req.CustomerID,
		Type:           req.Type,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toAccountResponse(account))
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.getAccountUC.List(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, mapSlice(accounts, toAccountResponse))
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	account, err := h.getAccountUC.Execute(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var req UpdateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	account, err := h.updateAccountUC.Execute(r.Context(), usecase.UpdateAccountInput{
		AccountID: id,
		Status:    req.Status,
		Type:      req.Type,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.deleteAccountUC.Execute(r.Context(), id); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Balance é a consulta de saldo pelo cliente dono da conta.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	account, err := h.getAccountUC.ByCustomer(r.Context(), customerID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{
		CustomerID:    account.CustomerID,
		AccountID:     account.ID,
		AccountNumber: account.Number,
		Balance:       domain.FormatMoney(account.Balance),
	})
}

func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	transactions, err := h.listTransactionsUC.Execute(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, mapSlice(transactions, toTransactionResponse))
}

func (h *AccountHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	transaction, err := h.listTransactionsUC.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toTransactionResponse(transaction))
}
