package get_calendar

import (
	"context"
	"time"

	getCalendar "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/get_calendar"
)

type GetCalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
}

// Clock источник текущей даты календаря
type Clock interface {
	Today() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
