package seen

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("seen.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("seen.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения результата
	ErrScanRow = errors.New("seen.repository: failed to scan row")
)
