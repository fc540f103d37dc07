package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBookingService/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "Pending"
	StatusApproved ReservationStatus = "Approved"
	StatusRejected ReservationStatus = "Rejected"
)

// IsValid returns true for one of the three known statuses
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsTerminal returns true for Approved and Rejected
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// In reports whether the status belongs to set
func (s ReservationStatus) In(set []ReservationStatus) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Reservation is one room booked for one hour of one day
type Reservation struct {
	ID        string
	Room      string
	Date      time.Time // midnight UTC of the booked day
	Time      types.TimeString
	Requester string
	Status    ReservationStatus

	// Request details, copied verbatim from the submission
	RequesterType string
	Organization  string
	Purpose       string
	Equipment     []string

	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the reservation awaits a decision
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// BlocksSlot returns true if the reservation occupies its slot.
// Rejected reservations free the slot.
func (r *Reservation) BlocksSlot() bool {
	return r.Status.In(BlockingStatuses)
}

// CanTransitionTo reports whether the status may change to next.
// Only Pending -> Approved and Pending -> Rejected are allowed.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	return r.IsPending() && next.IsTerminal()
}

// CanBeCancelled returns true if the owner may still withdraw the request
func (r *Reservation) CanBeCancelled() bool {
	return r.IsPending()
}

// Slot returns the (room, date, time) triple the reservation occupies
func (r *Reservation) Slot() Slot {
	return Slot{Room: r.Room, Date: r.Date, Time: r.Time}
}

// Clone returns a deep copy
func (r *Reservation) Clone() *Reservation {
	c := *r
	if r.Equipment != nil {
		c.Equipment = append([]string(nil), r.Equipment...)
	}
	if r.RejectionReason != nil {
		reason := *r.RejectionReason
		c.RejectionReason = &reason
	}
	return &c
}
