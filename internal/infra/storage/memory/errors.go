package memory

import "errors"

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("memory.repository: reservation not found")

	// ErrDuplicateID возвращается при повторной вставке записи с тем же id
	ErrDuplicateID = errors.New("memory.repository: duplicate reservation id")
)
