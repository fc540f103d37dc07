package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgEmptyGroup           = "список бронирований пуст"
	msgMissingUser          = "отсутствует пользователь"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "можно отменить только собственное бронирование"
	msgCannotCancel         = "отменить можно только заявку в статусе pending"
	msgNotCancelled         = "не удалось отменить бронирование"
)

type Handler struct {
	store  ReservationStore
	logger Logger
}

func NewHandler(store ReservationStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	if err := h.store.Cancel(r.Context(), id, user.Username); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: id=%s, user=%s", id, user.Username)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidState):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: id=%s", id)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: id=%s, user=%s", id, user.Username)
	w.WriteHeader(http.StatusNoContent)
}

// HandleGroup POST /api/v1/reservations/cancel
// Возвращает отчет по каждому id; частичная отмена не считается ошибкой
func (h *Handler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CancelGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(req.IDs) == 0 {
		handlers.RespondBadRequest(w, msgEmptyGroup)
		return
	}

	result, err := h.store.CancelBatch(r.Context(), req.IDs, user.Username)
	if err != nil {
		h.logger.Error("POST /reservations/cancel - Failed to cancel group: user=%s, error=%v", user.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations/cancel - Cancelled %d of %d: user=%s",
		len(result.Succeeded), len(req.IDs), user.Username)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBatchResult(result, describe))
}

func describe(err error) string {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		return msgNotFound
	case errors.Is(err, reservations.ErrAccessDenied):
		return msgForbidden
	case errors.Is(err, reservations.ErrInvalidState):
		return msgCannotCancel
	default:
		return msgNotCancelled
	}
}
