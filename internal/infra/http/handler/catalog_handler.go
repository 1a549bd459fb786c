package handler

import (
	"net/http"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/shopspring/decimal"
)

// CatalogHandler atende corresponsais e tipos de transação.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

type CorrespondentRequest struct {
	Kind           string           `json:"kind"`
	Address        *string          `json:"address"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`
	Active         *bool            `json:"active"`
	NeighborhoodID int64            `json:"neighborhood_id"`
}

type TransactionTypeRequest struct {
	Name string `json:"name"`
}

func (h *CatalogHandler) CreateCorrespondent(w http.ResponseWriter, r *http.Request) {
	var req CorrespondentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	c, err := h.catalogUC.CreateCorrespondent(r.Context(), &domain.Correspondent{
		Kind:           req.Kind,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Active:         active,
		NeighborhoodID: req.NeighborhoodID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCorrespondentResponse(c))
}

func (h *CatalogHandler) ListCorrespondents(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogUC.ListCorrespondents(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, mapSlice(list, toCorrespondentResponse))
}

func (h *CatalogHandler) GetCorrespondent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	c, err := h.catalogUC.GetCorrespondent(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCorrespondentResponse(c))
}

func (h *CatalogHandler) DeleteCorrespondent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.catalogUC.DeleteCorrespondent(r.Context(), id); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) CreateTransactionType(w http.ResponseWriter, r *http.Request) {
	var req TransactionTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	t, err := h.catalogUC.CreateTransactionType(r.Context(), &domain.TransactionType{Name: req.Name})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, TransactionTypeResponse{ID: t.ID, Name: t.Name})
}

func (h *CatalogHandler) ListTransactionTypes(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalogUC.ListTransactionTypes(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, mapSlice(list, func(t *domain.TransactionType) TransactionTypeResponse {
		return TransactionTypeResponse{ID: t.ID, Name: t.Name}
	}))
}

func (h *CatalogHandler) GetTransactionType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	t, err := h.catalogUC.GetTransactionType(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, TransactionTypeResponse{ID: t.ID, Name: t.Name})
}

func (h *CatalogHandler) DeleteTransactionType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.catalogUC.DeleteTransactionType(r.Context(), id); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
