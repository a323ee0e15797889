package compute_overlap

import (
	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
	computeOverlap "github.com/m04kA/SMC-SchedulingService/internal/usecase/compute_overlap"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ComputeOverlapRequest HTTP request model
type ComputeOverlapRequest struct {
	Members            [][]TimeRange `json:"members"`            // Свободное время каждого участника
	MinDurationMinutes int           `json:"minDurationMinutes"` // 0 - без фильтра
}

// TimeRange интервал "HH:MM"-"HH:MM"
type TimeRange struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "12:30"
}

// RejectedRange отброшенный интервал
type RejectedRange struct {
	Member int    `json:"member"` // Индекс участника в запросе
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

// ComputeOverlapResponse HTTP response model
type ComputeOverlapResponse struct {
	Intervals []TimeRange     `json:"intervals"`
	Rejected  []RejectedRange `json:"rejected,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат времени проверяет use case.
func (r *ComputeOverlapRequest) ToUseCaseRequest() *computeOverlap.Request {
	members := make([][]overlap.TimeRange, len(r.Members))
	for i, ranges := range r.Members {
		members[i] = make([]overlap.TimeRange, len(ranges))
		for j, tr := range ranges {
			members[i][j] = overlap.TimeRange{
				Start: types.TimeString(tr.Start),
				End:   types.TimeString(tr.End),
			}
		}
	}

	return &computeOverlap.Request{
		Members:            members,
		MinDurationMinutes: r.MinDurationMinutes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeOverlap.Response) *ComputeOverlapResponse {
	intervals := make([]TimeRange, len(resp.Intervals))
	for i, tr := range resp.Intervals {
		intervals[i] = TimeRange{Start: tr.Start.String(), End: tr.End.String()}
	}

	var rejected []RejectedRange
	for _, rej := range resp.Rejected {
		rejected = append(rejected, RejectedRange{
			Member: rej.Member,
			Start:  rej.Range.Start.String(),
			End:    rej.Range.End.String(),
			Reason: rej.Reason,
		})
	}

	return &ComputeOverlapResponse{
		Intervals: intervals,
		Rejected:  rejected,
	}
}
