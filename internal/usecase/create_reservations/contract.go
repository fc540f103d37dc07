package create_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// ReservationStore интерфейс хранилища бронирований
type ReservationStore interface {
	IsSlotTaken(slot domain.Slot) bool
	Create(ctx context.Context, batch []*domain.Reservation) ([]*domain.Reservation, error)
}

// Calendar интерфейс календаря помещений
type Calendar interface {
	IsRoom(room string) bool
	IsHour(t types.TimeString) bool
	IsPast(date time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
