package set_free_time

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}

	return nil
}

// parseDays разбирает дни и интервалы запроса.
// Интервалы с началом не раньше конца не прерывают сохранение, а возвращаются в rejected.
func parseDays(req *Request) (*domain.MemberFreeTime, []Rejected, error) {
	ft := &domain.MemberFreeTime{
		MemberID: req.MemberID,
		Days:     make(map[domain.DayOfWeek][]domain.Interval),
	}
	rejected := make([]Rejected, 0)
	perDay := make(map[domain.DayOfWeek]int, len(req.Days))

	for dayName, ranges := range req.Days {
		day, err := domain.ParseDayOfWeek(dayName)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDay, err)
		}

		// "Monday" и "monday" попадают в один день, лимит считается по сумме
		perDay[day] += len(ranges)
		if perDay[day] > domain.MaxIntervalsPerDay {
			return nil, nil, fmt.Errorf("%w: at most %d intervals per day", ErrInvalidInput, domain.MaxIntervalsPerDay)
		}

		for _, r := range ranges {
			start, err := types.ParseMinutes(r.Start)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidTime, day, err)
			}
			end, err := types.ParseMinutes(r.End)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidTime, day, err)
			}

			interval, err := domain.NewInterval(start, end)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidInterval) {
					rejected = append(rejected, Rejected{Day: day, Range: r, Reason: err.Error()})
					continue
				}
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			ft.Days[day] = append(ft.Days[day], interval)
		}
	}

	return ft, rejected, nil
}
