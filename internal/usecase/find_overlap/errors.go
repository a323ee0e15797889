package find_overlap

import "errors"

var (
	// ErrProjectNotFound возвращается, когда проект не найден
	ErrProjectNotFound = errors.New("find_overlap: project not found")

	// ErrAccessDenied возвращается, когда пользователь не участник проекта
	ErrAccessDenied = errors.New("find_overlap: user is not a project member")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_overlap: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_overlap: internal error")
)
