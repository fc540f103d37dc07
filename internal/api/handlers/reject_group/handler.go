package reject_group

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/approval"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyGroup         = "список бронирований пуст"
	msgReasonRequired     = "укажите причину отклонения"
	msgReasonTooLong      = "причина отклонения слишком длинная"
	msgNotFound           = "бронирование не найдено"
	msgNotPending         = "бронирование уже рассмотрено"
	msgNotChanged         = "не удалось изменить бронирование"
)

type Handler struct {
	workflow ApprovalWorkflow
	logger   Logger
}

func NewHandler(workflow ApprovalWorkflow, logger Logger) *Handler {
	return &Handler{
		workflow: workflow,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/approvals/reject
// Отклоненные записи освобождают свои слоты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RejectGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/approvals/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.workflow.RejectGroup(r.Context(), req.IDs, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, approval.ErrEmptyGroup):
			handlers.RespondBadRequest(w, msgEmptyGroup)

		case errors.Is(err, approval.ErrReasonRequired):
			h.logger.Warn("POST /admin/approvals/reject - Missing reason: ids=%d", len(req.IDs))
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, approval.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgReasonTooLong)

		default:
			h.logger.Error("POST /admin/approvals/reject - Failed to reject: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/approvals/reject - Rejected %d of %d", len(result.Succeeded), len(req.IDs))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBatchResult(result, describe))
}

func describe(err error) string {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		return msgNotFound
	case errors.Is(err, reservations.ErrInvalidTransition):
		return msgNotPending
	default:
		return msgNotChanged
	}
}
