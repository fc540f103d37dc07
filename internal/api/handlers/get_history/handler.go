package get_history

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/history
// Завершенные (approved/rejected) группы, новые сначала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := h.service.History(r.Context())

	h.logger.Info("GET /admin/history - Found %d groups", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
