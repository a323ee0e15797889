package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// IntervalResponse интервал свободного времени
type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeTimeResponse недельное свободное время участника
type FreeTimeResponse struct {
	MemberID  int64                         `json:"memberId"`
	Days      map[string][]IntervalResponse `json:"days"`
	UpdatedAt *time.Time                    `json:"updatedAt,omitempty"`
}

// FromDomainFreeTime конвертирует domain.MemberFreeTime в FreeTimeResponse
func FromDomainFreeTime(ft *domain.MemberFreeTime) *FreeTimeResponse {
	resp := &FreeTimeResponse{
		MemberID: ft.MemberID,
		Days:     make(map[string][]IntervalResponse, len(ft.Days)),
	}

	for _, day := range domain.AllDays() {
		intervals := ft.ForDay(day)
		if len(intervals) == 0 {
			continue
		}

		items := make([]IntervalResponse, 0, len(intervals))
		for _, iv := range intervals {
			items = append(items, IntervalResponse{
				Start: iv.StartTime().String(),
				End:   iv.EndTime().String(),
			})
		}
		resp.Days[day.String()] = items
	}

	if !ft.UpdatedAt.IsZero() {
		resp.UpdatedAt = ptr.Ptr(ft.UpdatedAt)
	}

	return resp
}
