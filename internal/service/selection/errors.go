package selection

import "errors"

var (
	// ErrBookingNotAllowed возвращается, когда роль пользователя не позволяет бронировать
	ErrBookingNotAllowed = errors.New("selection: role cannot book")

	// ErrPastDate возвращается для дат раньше сегодняшней
	ErrPastDate = errors.New("selection: date is in the past")

	// ErrUnknownSlot возвращается для помещения или часа вне календаря
	ErrUnknownSlot = errors.New("selection: unknown room or hour")

	// ErrSlotTaken возвращается, когда слот занят заявкой Pending или Approved
	ErrSlotTaken = errors.New("selection: slot already taken")
)
