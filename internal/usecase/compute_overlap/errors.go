package compute_overlap

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compute_overlap: invalid input data")

	// ErrInvalidTime возвращается, когда время не в формате "HH:MM"
	ErrInvalidTime = errors.New("compute_overlap: invalid time format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_overlap: internal error")
)
