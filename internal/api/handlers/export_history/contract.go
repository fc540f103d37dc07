package export_history

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

type HistoryService interface {
	HistoryGroups(ctx context.Context) []*domain.ReservationGroup
}

type Exporter interface {
	WriteGroups(w io.Writer, groups []*domain.ReservationGroup) error
}

// Clock источник текущего времени для имени файла
type Clock interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
