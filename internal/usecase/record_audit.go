package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/gateway"
	"github.com/shopspring/decimal"
)

// RecordAuditUseCase grava no repositório de auditoria os eventos consumidos da fila.
type RecordAuditUseCase struct {
	auditRepository gateway.AuditRepository
	now             func() time.Time
}

func NewRecordAudit(auditRepo gateway.AuditRepository) *RecordAuditUseCase {
	return &RecordAuditUseCase{auditRepository: auditRepo, now: time.Now}
}

// Execute decodifica e valida a mensagem. Erros embrulhando domain.ErrInvalidLedgerEvent
// não adiantam ser reprocessados; os demais (ex: banco fora) podem voltar para a fila.
func (u *RecordAuditUseCase) Execute(ctx context.Context, routingKey string, body []byte) error {
	var event gateway.LedgerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidLedgerEvent, err)
	}
	if err := validateLedgerEvent(event); err != nil {
		return err
	}

	entry := gateway.AuditEntry{
		Event:      event,
		RoutingKey: routingKey,
		ReceivedAt: u.now().UTC(),
	}
	if err := u.auditRepository.Save(ctx, entry); err != nil {
		return fmt.Errorf("falha ao salvar auditoria da transação %d: %w", event.TransactionID, err)
	}
	return nil
}

func validateLedgerEvent(e gateway.LedgerEvent) error {
	if e.TransactionID <= 0 || e.SourceAccountID <= 0 || e.DestinationAccountID <= 0 {
		return fmt.Errorf("%w: ids ausentes", domain.ErrInvalidLedgerEvent)
	}
	switch domain.TransactionKind(e.Kind) {
	case domain.KindDeposit, domain.KindWithdrawal, domain.KindTransfer:
	default:
		return fmt.Errorf("%w: tipo %q", domain.ErrInvalidLedgerEvent, e.Kind)
	}
	amount, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return fmt.Errorf("%w: valor %q", domain.ErrInvalidLedgerEvent, e.Amount)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidLedgerEvent, err)
	}
	return nil
}
