package find_overlap

import (
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	findOverlap "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_overlap"
)

// IntervalResponse интервал общего свободного времени
type IntervalResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// DayOverlapResponse общее свободное время на день недели
type DayOverlapResponse struct {
	Day       string             `json:"day"`
	Intervals []IntervalResponse `json:"intervals"`
}

// FindOverlapResponse HTTP response model
type FindOverlapResponse struct {
	ProjectID          int64                `json:"projectId"`
	MinDurationMinutes int                  `json:"minDurationMinutes"`
	ParticipantIDs     []int64              `json:"participantIds"`
	MissingMemberIDs   []int64              `json:"missingMemberIds"`
	Days               []DayOverlapResponse `json:"days"`
}

// ToUseCaseRequest собирает запрос use case из параметров URL.
// Пустые day и minDuration означают "все дни" и "из настроек проекта".
func ToUseCaseRequest(userID, projectID int64, dayStr, minDurationStr string) (*findOverlap.Request, error) {
	req := &findOverlap.Request{
		UserID:    userID,
		ProjectID: projectID,
	}

	if dayStr != "" {
		day, err := domain.ParseDayOfWeek(dayStr)
		if err != nil {
			return nil, err
		}
		req.Day = &day
	}

	if minDurationStr != "" {
		minDuration, err := strconv.Atoi(minDurationStr)
		if err != nil {
			return nil, err
		}
		req.MinDurationMinutes = &minDuration
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findOverlap.Response) *FindOverlapResponse {
	days := make([]DayOverlapResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		intervals := make([]IntervalResponse, 0, len(d.Intervals))
		for _, iv := range d.Intervals {
			intervals = append(intervals, IntervalResponse{
				Start:           iv.StartTime().String(),
				End:             iv.EndTime().String(),
				DurationMinutes: iv.Duration(),
			})
		}
		days = append(days, DayOverlapResponse{Day: d.Day.String(), Intervals: intervals})
	}

	participants := resp.ParticipantIDs
	if participants == nil {
		participants = []int64{}
	}
	missing := resp.MissingMemberIDs
	if missing == nil {
		missing = []int64{}
	}

	return &FindOverlapResponse{
		ProjectID:          resp.ProjectID,
		MinDurationMinutes: resp.MinDurationMinutes,
		ParticipantIDs:     participants,
		MissingMemberIDs:   missing,
		Days:               days,
	}
}
