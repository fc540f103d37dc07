package approve_group

import (
	"context"

	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"
)

type ApprovalWorkflow interface {
	ApproveGroup(ctx context.Context, ids []string) (*models.BatchResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
