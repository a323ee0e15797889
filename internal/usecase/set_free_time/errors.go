package set_free_time

import "errors"

var (
	// ErrAccessDenied возвращается при попытке изменить чужое свободное время
	ErrAccessDenied = errors.New("set_free_time: access denied")

	// ErrInvalidDay возвращается при неизвестном дне недели
	ErrInvalidDay = errors.New("set_free_time: invalid day of week")

	// ErrInvalidTime возвращается, когда время не в формате "HH:MM"
	ErrInvalidTime = errors.New("set_free_time: invalid time format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_free_time: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_free_time: internal error")
)
