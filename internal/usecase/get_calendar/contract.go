package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// ReservationStore интерфейс хранилища бронирований
type ReservationStore interface {
	ListByDate(ctx context.Context, date time.Time) []*domain.Reservation
}

// Calendar интерфейс календаря помещений
type Calendar interface {
	Rooms() []string
	Hours(date time.Time) []types.TimeString
	IsPast(date time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
