package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
)

// RegionHandler atende /api/regions/{level} para os quatro níveis.
type RegionHandler struct {
	regionUC *usecase.RegionUseCase
}

func NewRegionHandler(regionUC *usecase.RegionUseCase) *RegionHandler {
	return &RegionHandler{regionUC: regionUC}
}

type RegionRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

func levelParam(w http.ResponseWriter, r *http.Request) (domain.RegionLevel, bool) {
	level, err := domain.ParseRegionLevel(chi.URLParam(r, "level"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Nível de região inválido")
		return "", false
	}
	return level, true
}

func (h *RegionHandler) Create(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	var req RegionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if req.ID < 0 {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	region, err := h.regionUC.Create(r.Context(), &domain.Region{
		ID:       req.ID,
		Level:    level,
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toRegionResponse(region))
}

// List aceita ?parent_id= para filtrar pelo nível de cima.
func (h *RegionHandler) List(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	var parentID *int64
	if raw := r.URL.Query().Get("parent_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, "parent_id inválido")
			return
		}
		parentID = &id
	}

	regions, err := h.regionUC.List(r.Context(), level, parentID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, mapSlice(regions, toRegionResponse))
}

func (h *RegionHandler) Get(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	region, err := h.regionUC.Get(r.Context(), level, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toRegionResponse(region))
}

func (h *RegionHandler) Update(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var req RegionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	region, err := h.regionUC.Update(r.Context(), &domain.Region{
		ID:       id,
		Level:    level,
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toRegionResponse(region))
}

func (h *RegionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	level, ok := levelParam(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	if err := h.regionUC.Delete(r.Context(), level, id); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
