package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"
)

type ReservationStore interface {
	Cancel(ctx context.Context, id string, owner string) error
	CancelBatch(ctx context.Context, ids []string, owner string) (*models.BatchResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
