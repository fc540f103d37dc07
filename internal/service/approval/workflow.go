package approval

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"
)

// Workflow согласование групп заявок администратором
type Workflow struct {
	store  ReservationStore
	logger Logger
}

// NewWorkflow создает сервис согласования
func NewWorkflow(store ReservationStore, logger Logger) *Workflow {
	return &Workflow{store: store, logger: logger}
}

// ApproveGroup переводит все записи группы в Approved
// Записи, которые уже не Pending, попадают в отчет как неуспешные
func (w *Workflow) ApproveGroup(ctx context.Context, ids []string) (*models.BatchResult, error) {
	w.logger.Info("ApproveGroup: approving %d reservations", len(ids))

	if len(ids) == 0 {
		return nil, ErrEmptyGroup
	}

	return w.apply(ctx, "ApproveGroup", ids, domain.StatusApproved, "")
}

// RejectGroup переводит все записи группы в Rejected с обязательной причиной
// Отклоненные записи освобождают свои слоты
func (w *Workflow) RejectGroup(ctx context.Context, ids []string, reason string) (*models.BatchResult, error) {
	w.logger.Info("RejectGroup: rejecting %d reservations", len(ids))

	if len(ids) == 0 {
		return nil, ErrEmptyGroup
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		w.logger.Warn("RejectGroup: empty rejection reason")
		return nil, ErrReasonRequired
	}
	if utf8.RuneCountInString(reason) > domain.MaxRejectionReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxRejectionReasonLength)
	}

	return w.apply(ctx, "RejectGroup", ids, domain.StatusRejected, reason)
}

func (w *Workflow) apply(ctx context.Context, op string, ids []string, status domain.ReservationStatus, reason string) (*models.BatchResult, error) {
	result, err := w.store.UpdateStatusBatch(ctx, ids, status, reason)
	if err != nil {
		w.logger.Error("%s: store error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}

	if !result.Complete() {
		for _, f := range result.Failed {
			w.logger.Warn("%s: id=%s not changed: %v", op, f.ID, f.Err)
		}
	}

	w.logger.Info("%s: %d changed to %s, %d failed", op, len(result.Succeeded), status, len(result.Failed))
	return result, nil
}
