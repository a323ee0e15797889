package compute_overlap

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
)

const metricsSource = "adhoc"

// UseCase use case вычисления пересечения без обращения к хранилищу
type UseCase struct {
	observer OverlapObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(observer OverlapObserver, logger Logger) *UseCase {
	return &UseCase{
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет вычисление пересечения
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeOverlap: validation failed: %v", err)
		return nil, err
	}

	res, err := overlap.FindOverlapTimes(req.Members, req.MinDurationMinutes)
	if err != nil {
		if errors.Is(err, overlap.ErrInvalidTime) {
			uc.logger.Warn("ComputeOverlap: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		uc.logger.Error("ComputeOverlap: failed to compute overlap: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	rejected := make([]Rejected, 0, len(res.Rejected))
	for _, rej := range res.Rejected {
		uc.logger.Warn("ComputeOverlap: skipped invalid interval of member #%d: %v", rej.Member, rej.Err)
		rejected = append(rejected, Rejected{
			Member: rej.Member,
			Range:  overlap.TimeRange{Start: rej.Interval.StartTime(), End: rej.Interval.EndTime()},
			Reason: rej.Err.Error(),
		})
	}

	uc.observer.ObserveOverlap(metricsSource, len(res.Intervals))
	uc.logger.Info("ComputeOverlap: members=%d, minDuration=%d, intervals=%d, rejected=%d",
		len(req.Members), req.MinDurationMinutes, len(res.Intervals), len(rejected))

	return &Response{
		Intervals: res.TimeRanges(),
		Rejected:  rejected,
	}, nil
}
