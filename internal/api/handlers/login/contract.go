package login

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
