package get_notifications

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

type NotificationService interface {
	ComputeUnseen(ctx context.Context, username string) (domain.UnseenCounts, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
