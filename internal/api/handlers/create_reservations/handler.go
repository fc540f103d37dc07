package create_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	createReservations "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/create_reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени слота, ожидается HH:MM"
	msgMissingUser        = "отсутствует пользователь"
	msgBookingNotAllowed  = "бронирование доступно только студентам"
	msgEmptySelection     = "не выбран ни один слот"
	msgPastDate           = "нельзя бронировать прошедшие даты"
	msgUnknownSlot        = "помещение или час вне календаря"
	msgSlotUnavailable    = "выбранный слот уже занят"
	msgInvalidInput       = "некорректные данные заявки"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

type Handler struct {
	useCase CreateReservationsUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateReservationsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservations.ErrBookingNotAllowed):
			h.logger.Warn("POST /reservations - Booking not allowed: user=%s, role=%s", user.Username, user.Role)
			handlers.RespondForbidden(w, msgBookingNotAllowed)

		case errors.Is(err, createReservations.ErrEmptySelection):
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createReservations.ErrPastDate):
			h.logger.Warn("POST /reservations - Past date: user=%s, date=%s", user.Username, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservations.ErrUnknownSlot):
			h.logger.Warn("POST /reservations - Unknown slot: user=%s, error=%v", user.Username, err)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createReservations.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: user=%s, error=%v", user.Username, err)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user=%s, error=%v", user.Username, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservations: user=%s, error=%v", user.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Created %d reservations: user=%s, date=%s",
		len(result.Reservations), user.Username, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
