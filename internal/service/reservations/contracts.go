package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// Repository хранилище записей бронирований (PostgreSQL или память)
// Store является единственным писателем, репозиторий только сохраняет изменения
type Repository interface {
	LoadAll(ctx context.Context) ([]*domain.Reservation, error)
	CreateBatch(ctx context.Context, reservations []*domain.Reservation) error
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, reason *string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные счетчики
type Metrics interface {
	ReservationsCreated(n int)
	StatusChanged(status string, n int)
	ReservationsCancelled(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator выдает идентификаторы новых записей
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
