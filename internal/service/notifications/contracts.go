package notifications

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// ReservationLister источник записей (Store)
type ReservationLister interface {
	List(ctx context.Context) []*domain.Reservation
}

// SeenRepository хранилище просмотренных счетчиков (Redis, PostgreSQL или память)
type SeenRepository interface {
	Get(ctx context.Context, username string) (domain.SeenCounts, error)
	Set(ctx context.Context, username string, counts domain.SeenCounts) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
