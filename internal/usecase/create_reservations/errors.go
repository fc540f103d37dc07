package create_reservations

import "errors"

var (
	// ErrBookingNotAllowed возвращается, когда роль пользователя не позволяет бронировать
	ErrBookingNotAllowed = errors.New("create_reservations: role cannot book")

	// ErrEmptySelection возвращается, когда не выбран ни один слот
	ErrEmptySelection = errors.New("create_reservations: no slots selected")

	// ErrPastDate возвращается для дат раньше сегодняшней
	ErrPastDate = errors.New("create_reservations: date is in the past")

	// ErrUnknownSlot возвращается для помещения или часа вне календаря
	ErrUnknownSlot = errors.New("create_reservations: unknown room or hour")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	ErrSlotUnavailable = errors.New("create_reservations: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservations: internal error")
)
