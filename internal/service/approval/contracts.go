package approval

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"
)

// ReservationStore интерфейс хранилища бронирований
type ReservationStore interface {
	UpdateStatusBatch(ctx context.Context, ids []string, status domain.ReservationStatus, reason string) (*models.BatchResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
