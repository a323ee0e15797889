package set_free_time

import setFreeTime "github.com/m04kA/SMC-SchedulingService/internal/usecase/set_free_time"

// SetFreeTimeRequest HTTP request model
type SetFreeTimeRequest struct {
	Days map[string][]TimeRange `json:"days"` // "monday" -> [{"start":"09:00","end":"12:00"}]
}

// TimeRange интервал "HH:MM"-"HH:MM"
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RejectedRange интервал, который не был сохранён
type RejectedRange struct {
	Day    string `json:"day"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

// SetFreeTimeResponse HTTP response model
type SetFreeTimeResponse struct {
	MemberID int64           `json:"memberId"`
	Saved    int             `json:"saved"`
	Rejected []RejectedRange `json:"rejected,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetFreeTimeRequest) ToUseCaseRequest(userID, memberID int64) *setFreeTime.Request {
	days := make(map[string][]setFreeTime.Range, len(r.Days))
	for day, ranges := range r.Days {
		items := make([]setFreeTime.Range, len(ranges))
		for i, tr := range ranges {
			items[i] = setFreeTime.Range{Start: tr.Start, End: tr.End}
		}
		days[day] = items
	}

	return &setFreeTime.Request{
		UserID:   userID,
		MemberID: memberID,
		Days:     days,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setFreeTime.Response) *SetFreeTimeResponse {
	var rejected []RejectedRange
	for _, rej := range resp.Rejected {
		rejected = append(rejected, RejectedRange{
			Day:    rej.Day.String(),
			Start:  rej.Range.Start,
			End:    rej.Range.End,
			Reason: rej.Reason,
		})
	}

	return &SetFreeTimeResponse{
		MemberID: resp.MemberID,
		Saved:    resp.Saved,
		Rejected: rejected,
	}
}
