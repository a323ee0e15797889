package projectservice

import "errors"

var (
	// ErrProjectNotFound возвращается, когда проект не найден
	ErrProjectNotFound = errors.New("project not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("projectservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("projectservice client: invalid response")
)
