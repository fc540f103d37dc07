package domain

// Default calendar configuration
const (
	DefaultOpenHour  = 7
	DefaultCloseHour = 17 // last bookable slot starts at 16:00
	DefaultTimezone  = "Asia/Jakarta"
)

// DefaultRooms is the faculty room list used when config declares none
var DefaultRooms = []string{
	"RUANG KELAS 101",
	"RUANG KELAS 102",
	"RUANG KELAS 201",
	"RUANG KELAS 202",
	"LAB KOMPUTER 1",
	"LAB KOMPUTER 2",
	"AUDITORIUM",
	"HALAMAN DEPAN",
	"LOBBY",
	"TRANSPORTASI (BUS KAMPUS)",
}

// Business validation constants
const (
	MaxPurposeLength         = 500
	MaxRejectionReasonLength = 500
	MaxOrganizationLength    = 200
	MaxEquipmentItems        = 20
	MaxSlotsPerRequest       = 24
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses are the statuses that occupy a slot
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
}

// CompletedStatuses are the statuses shown in history
var CompletedStatuses = []ReservationStatus{
	StatusApproved,
	StatusRejected,
}
