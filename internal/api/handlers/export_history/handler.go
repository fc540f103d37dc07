package export_history

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/export"
)

const fileNameLayout = "20060102-150405"

type Handler struct {
	service  HistoryService
	exporter Exporter
	clock    Clock
	logger   Logger
}

func NewHandler(service HistoryService, exporter Exporter, clock Clock, logger Logger) *Handler {
	return &Handler{
		service:  service,
		exporter: exporter,
		clock:    clock,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/history/export
// Отдает историю файлом XLSX
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groups := h.service.HistoryGroups(r.Context())

	// Собираем файл в буфер, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := h.exporter.WriteGroups(&buf, groups); err != nil {
		h.logger.Error("GET /admin/history/export - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	name := fmt.Sprintf("history-%s.xlsx", h.clock.Now().Format(fileNameLayout))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/history/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/history/export - Exported %d groups", len(groups))
}
