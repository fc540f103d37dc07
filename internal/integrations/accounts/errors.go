package accounts

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("accounts: user not found")

	// ErrInvalidAccount возвращается при некорректной записи в таблице
	ErrInvalidAccount = errors.New("accounts: invalid account")
)
