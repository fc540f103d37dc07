package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// Slot is the atomic bookable unit: one room, one day, one hour
type Slot struct {
	Room string
	Date time.Time
	Time types.TimeString
}

// Key returns a comparable identity of the slot
func (s Slot) Key() SlotKey {
	return SlotKey{Room: s.Room, Date: s.Date.Format(DateFormat), Time: s.Time}
}

// SlotKey is a map key for a slot
type SlotKey struct {
	Room string
	Date string
	Time types.TimeString
}

// SlotState describes a cell of the booking grid
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotPending   SlotState = "pending"
	SlotApproved  SlotState = "approved"
)

// SlotStateFor maps the blocking reservation status to a grid state
func SlotStateFor(status ReservationStatus) SlotState {
	switch status {
	case StatusPending:
		return SlotPending
	case StatusApproved:
		return SlotApproved
	default:
		return SlotAvailable
	}
}
