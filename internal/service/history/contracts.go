package history

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// ReservationStore интерфейс хранилища бронирований
type ReservationStore interface {
	List(ctx context.Context) []*domain.Reservation
	Get(ctx context.Context, id string) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
