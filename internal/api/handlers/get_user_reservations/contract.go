package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/history/models"
)

type HistoryService interface {
	StudentHistory(ctx context.Context, username string, viewer *domain.User) (*models.GroupListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
