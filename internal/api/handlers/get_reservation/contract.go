package get_reservation

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/history/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id string, viewer *domain.User) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
