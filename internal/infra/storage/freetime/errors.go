package freetime

import "errors"

var (
	// ErrFreeTimeNotFound возвращается, когда у участника нет сохранённого свободного времени
	ErrFreeTimeNotFound = errors.New("freetime.repository: free time not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("freetime.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("freetime.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("freetime.repository: failed to scan row")
)
