package export

import "errors"

var (
	// ErrWriteSheet возвращается при ошибке заполнения листа
	ErrWriteSheet = errors.New("export: failed to write sheet")

	// ErrSave возвращается при ошибке сохранения файла
	ErrSave = errors.New("export: failed to save workbook")
)
