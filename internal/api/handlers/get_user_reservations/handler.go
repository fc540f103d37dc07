package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/history"
)

const (
	msgMissingUser = "отсутствует пользователь"
	msgForbidden   = "доступ запрещен"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{username}/reservations
// Заявки пользователя, сгруппированные в интервалы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	viewer, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	resp, err := h.service.StudentHistory(r.Context(), username, viewer)
	if err != nil {
		if errors.Is(err, history.ErrAccessDenied) {
			h.logger.Warn("GET /users/{username}/reservations - Access denied: viewer=%s, username=%s", viewer.Username, username)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /users/{username}/reservations - Failed to get reservations: username=%s, error=%v", username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{username}/reservations - Found %d groups: username=%s", resp.Total, username)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
