package calendar

import "errors"

var (
	// ErrNoRooms возвращается, когда список помещений пуст
	ErrNoRooms = errors.New("calendar: room list is empty")

	// ErrInvalidHours возвращается при некорректных рабочих часах
	ErrInvalidHours = errors.New("calendar: invalid operational hours")

	// ErrInvalidTimezone возвращается, когда часовой пояс не найден
	ErrInvalidTimezone = errors.New("calendar: unknown timezone")
)
