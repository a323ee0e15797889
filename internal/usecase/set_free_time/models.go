package set_free_time

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса на замену недельного свободного времени участника
type Request struct {
	UserID   int64              // ID пользователя, выполняющего запрос
	MemberID int64              // ID участника, чьё время сохраняется
	Days     map[string][]Range // День недели -> интервалы
}

// Range интервал в формате "HH:MM"
type Range struct {
	Start string
	End   string
}

// Response модель ответа
type Response struct {
	MemberID int64
	Saved    int        // Количество сохранённых интервалов
	Rejected []Rejected // Отброшенные интервалы
}

// Rejected интервал, не прошедший проверку (начало не раньше конца)
type Rejected struct {
	Day    domain.DayOfWeek
	Range  Range
	Reason string
}
