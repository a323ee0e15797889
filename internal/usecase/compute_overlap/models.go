package compute_overlap

import "github.com/m04kA/SMC-SchedulingService/internal/overlap"

// Request модель запроса на вычисление пересечения по переданным спискам
type Request struct {
	Members            [][]overlap.TimeRange // Свободное время участников на один день
	MinDurationMinutes int                   // Минимальная длительность окна
}

// Response модель ответа
type Response struct {
	Intervals []overlap.TimeRange // Общее свободное время, по возрастанию начала
	Rejected  []Rejected          // Отброшенные интервалы (начало не раньше конца)
}

// Rejected отброшенный интервал
type Rejected struct {
	Member int
	Range  overlap.TimeRange
	Reason string
}
