package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/calendar"
	getCalendar "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarUseCase
	clock   Clock
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, clock Clock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?date=YYYY-MM-DD
// Без параметра date возвращается сетка на сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	date := h.clock.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := calendar.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	resp, err := h.useCase.Execute(r.Context(), &getCalendar.Request{User: user, Date: date})
	if err != nil {
		if errors.Is(err, getCalendar.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /calendar - Failed to build calendar: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
