package get_history

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/service/history/models"
)

type HistoryService interface {
	History(ctx context.Context) *models.GroupListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
