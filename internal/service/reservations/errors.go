package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("reservations: invalid status transition")

	// ErrInvalidState возвращается, когда операция невозможна в текущем статусе
	ErrInvalidState = errors.New("reservations: operation not allowed in current state")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	ErrSlotUnavailable = errors.New("reservations: slot unavailable")

	// ErrAccessDenied возвращается, когда пользователь не владелец записи
	ErrAccessDenied = errors.New("reservations: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrNotLoaded возвращается при обращении к хранилищу до Load
	ErrNotLoaded = errors.New("reservations: store not loaded")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("reservations: internal error")
)
