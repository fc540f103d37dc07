package get_notifications

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

// Handle GET /api/v1/users/{username}/notifications
// Доступно только самому пользователю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}
	if user.Username != username {
		h.logger.Warn("GET /users/{username}/notifications - Access denied: user=%s, username=%s", user.Username, username)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	counts, err := h.service.ComputeUnseen(r.Context(), username)
	if err != nil {
		h.logger.Error("GET /users/{username}/notifications - Failed to compute: username=%s, error=%v", username, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainUnseen(counts))
}
