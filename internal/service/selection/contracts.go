package selection

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// Occupancy источник занятости слотов (Store)
type Occupancy interface {
	IsSlotTaken(slot domain.Slot) bool
}

// Calendar набор помещений и часов
type Calendar interface {
	IsRoom(room string) bool
	IsHour(t types.TimeString) bool
	IsPast(date time.Time) bool
}
