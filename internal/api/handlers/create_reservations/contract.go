package create_reservations

import (
	"context"

	createReservations "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/create_reservations"
)

type CreateReservationsUseCase interface {
	Execute(ctx context.Context, req *createReservations.Request) (*createReservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
