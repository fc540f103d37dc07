package notifications

import "errors"

var (
	// ErrInvalidInput возвращается при пустом имени пользователя
	ErrInvalidInput = errors.New("notifications: invalid input data")

	// ErrInternal возвращается при ошибках хранилища счетчиков
	ErrInternal = errors.New("notifications: internal error")
)
