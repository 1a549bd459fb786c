package handler

import (
	"net/http"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
)

type CustomerHandler struct {
	customerUC *usecase.CustomerUseCase
}

func NewCustomerHandler(customerUC *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC}
}

type CustomerRequest struct {
	FirstName      string  `json:"first_name"`
	LastName       *string `json:"last_name"`
	Document       string  `json:"document"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	NeighborhoodID *int64  `json:"neighborhood_id"`
}

func (req CustomerRequest) toDomain(id int64) *domain.Customer {
	return &domain.Customer{
		ID:             id,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Document:       req.Document,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		NeighborhoodID: req.NeighborhoodID,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	customer, err := h.customerUC.Create(r.Context(), req.toDomain(0))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUC.List(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, mapSlice(customers, toCustomerResponse))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	customer, err := h.customerUC.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var req CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	customer, err := h.customerUC.Update(r.Context(), req.toDomain(id))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.customerUC.Delete(r.Context(), id); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
