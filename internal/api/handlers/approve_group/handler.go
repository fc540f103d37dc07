package approve_group

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

// Handle POST /api/v1/admin/approvals/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApproveGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/approvals/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.workflow.ApproveGroup(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, approval.ErrEmptyGroup) {
			handlers.RespondBadRequest(w, msgEmptyGroup)
			return
		}
		h.logger.Error("POST /admin/approvals/approve - Failed to approve: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/approvals/approve - Approved %d of %d", len(result.Succeeded), len(req.IDs))
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
