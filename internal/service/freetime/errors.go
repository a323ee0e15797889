package freetime

import "errors"

var (
	// ErrFreeTimeNotFound возвращается, когда у участника нет свободного времени
	ErrFreeTimeNotFound = errors.New("free time not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
