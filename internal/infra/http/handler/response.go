package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// errorMapping associa um erro de domínio ao status e à mensagem devolvidos.
type errorMapping struct {
	err     error
	status  int
	message string
}

// Mapeamento de Erros de Domínio -> HTTP Status Code
var errorMappings = []errorMapping{
	{domain.ErrAccountNotFound, http.StatusNotFound, "Conta não encontrada"},
	{domain.ErrTransactionNotFound, http.StatusNotFound, "Transação não encontrada"},
	{domain.ErrCustomerNotFound, http.StatusNotFound, "Cliente não encontrado"},
	{domain.ErrRegionNotFound, http.StatusNotFound, "Região não encontrada"},
	{domain.ErrCorrespondentNotFound, http.StatusNotFound, "Corresponsal não encontrado"},
	{domain.ErrTransactionTypeNotFound, http.StatusNotFound, "Tipo de transação não encontrado"},

	{domain.ErrInvalidAmount, http.StatusBadRequest, "Valor inválido"},
	{domain.ErrAccountSelectorRequired, http.StatusBadRequest, "Informe a conta ou o cliente"},
	{domain.ErrInvalidAccountType, http.StatusBadRequest, "Tipo de conta inválido"},
	{domain.ErrInvalidAccountStatus, http.StatusBadRequest, "Status de conta inválido"},
	{domain.ErrInvalidCustomer, http.StatusBadRequest, "Nome e documento do cliente são obrigatórios"},
	{domain.ErrInvalidRegion, http.StatusBadRequest, "Região inválida"},
	{domain.ErrInvalidRegionLevel, http.StatusBadRequest, "Nível de região inválido"},
	{domain.ErrParentRegionNotFound, http.StatusBadRequest, "Região pai não encontrada"},
	{domain.ErrInvalidCatalogEntry, http.StatusBadRequest, "Cadastro inválido"},

	{domain.ErrNotOwnAccount, http.StatusForbidden, "Cliente só pode movimentar a própria conta"},

	{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity, "Saldo insuficiente"},
	{domain.ErrBalanceLimitExceeded, http.StatusUnprocessableEntity, "Saldo ultrapassaria o limite da conta"},
	{domain.ErrAccountInactive, http.StatusUnprocessableEntity, "Conta inativa"},
	{domain.ErrSameAccount, http.StatusUnprocessableEntity, "Origem e destino devem ser contas diferentes"},

	{domain.ErrAccountAlreadyExists, http.StatusConflict, "Cliente já possui conta"},
	{domain.ErrCustomerAlreadyExists, http.StatusConflict, "Documento já cadastrado"},
	{domain.ErrRegionAlreadyExists, http.StatusConflict, "Região já existe"},
	{domain.ErrCatalogAlreadyExists, http.StatusConflict, "Cadastro já existe"},
	{domain.ErrIdempotencyKey, http.StatusConflict, "Idempotency-Key já utilizada"},
	{domain.ErrCustomerHasAccount, http.StatusConflict, "Cliente ainda possui conta"},
	{domain.ErrAccountHasTransactions, http.StatusConflict, "Conta possui movimentos no ledger"},
	{domain.ErrRegionInUse, http.StatusConflict, "Região ainda está em uso"},
	{domain.ErrCatalogInUse, http.StatusConflict, "Cadastro ainda está em uso"},
}

// respondDomainError escolhe o status pelo erro. Erro desconhecido vira 500
// e o detalhe fica só no log.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			respondError(w, m.status, m.message)
			return
		}
	}
	// Erro interno (banco caiu, bug, etc)
	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Erro interno ao processar requisição")
	respondError(w, http.StatusInternalServerError, "Erro interno do servidor")
}

// Helpers para resposta JSON
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Falha ao codificar resposta JSON")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// maxBodyBytes limita o corpo das requisições; os payloads da API são pequenos.
const maxBodyBytes = 64 << 10

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID lê um id numérico positivo da rota.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
