package approval

import "errors"

var (
	// ErrEmptyGroup возвращается для группы без записей
	ErrEmptyGroup = errors.New("approval: empty group")

	// ErrReasonRequired возвращается при отклонении без причины
	ErrReasonRequired = errors.New("approval: rejection reason is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approval: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("approval: internal error")
)
