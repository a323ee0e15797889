package find_overlap

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса на поиск общего свободного времени участников проекта
type Request struct {
	UserID             int64             // ID пользователя, который запрашивает
	ProjectID          int64             // ID проекта
	Day                *domain.DayOfWeek // День недели (nil - все дни)
	MinDurationMinutes *int              // Минимальная длительность окна (nil - из настроек проекта)
}

// Response модель ответа с пересечениями по дням
type Response struct {
	ProjectID          int64
	MinDurationMinutes int
	ParticipantIDs     []int64 // Участники, чьё свободное время учтено
	MissingMemberIDs   []int64 // Участники, не заполнившие свободное время
	Days               []DayOverlap
}

// DayOverlap общее свободное время на один день недели
type DayOverlap struct {
	Day       domain.DayOfWeek
	Intervals []domain.Interval
}
