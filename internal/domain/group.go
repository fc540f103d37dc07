package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// ReservationGroup is a contiguous run of hourly reservations sharing room,
// date, requester and status. Derived on read, never stored.
type ReservationGroup struct {
	IDs       []string
	Room      string
	Date      time.Time
	Requester string
	Status    ReservationStatus
	StartTime types.TimeString
	EndTime   types.TimeString // exclusive: last member hour + 1

	// Details of the first member
	RequesterType   string
	Organization    string
	Purpose         string
	Equipment       []string
	RejectionReason *string
}

// Size returns the number of hourly slots in the group
func (g *ReservationGroup) Size() int {
	return len(g.IDs)
}
