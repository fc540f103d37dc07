package mark_notifications_seen

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
)

const (
	msgMissingUser = "отсутствует пользователь"
	msgForbidden   = "доступ запрещен"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/{username}/notifications/seen
// Запоминает текущие количества approved/rejected как просмотренные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}
	if user.Username != username {
		h.logger.Warn("POST /users/{username}/notifications/seen - Access denied: user=%s, username=%s", user.Username, username)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.MarkSeen(r.Context(), username); err != nil {
		h.logger.Error("POST /users/{username}/notifications/seen - Failed to mark seen: username=%s, error=%v", username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /users/{username}/notifications/seen - Marked seen: username=%s", username)
	w.WriteHeader(http.StatusNoContent)
}
