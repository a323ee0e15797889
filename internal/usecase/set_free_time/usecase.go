package set_free_time

import (
	"context"
	"fmt"
)

// UseCase use case сохранения недельного свободного времени участника
type UseCase struct {
	freeTimeRepo FreeTimeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	freeTimeRepo FreeTimeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		freeTimeRepo: freeTimeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute заменяет всё свободное время участника на переданное
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetFreeTime: user=%d, member=%d, days=%d", req.UserID, req.MemberID, len(req.Days))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetFreeTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Участник может менять только своё время
	if req.UserID != req.MemberID {
		uc.logger.Warn("SetFreeTime: user=%d tried to change free time of member=%d", req.UserID, req.MemberID)
		return nil, ErrAccessDenied
	}

	// 3. Разбираем интервалы, некорректные откладываем в rejected
	freeTime, rejected, err := parseDays(req)
	if err != nil {
		uc.logger.Warn("SetFreeTime: failed to parse free time of member=%d: %v", req.MemberID, err)
		return nil, err
	}
	for _, r := range rejected {
		uc.logger.Warn("SetFreeTime: member=%d, skipped %s %s-%s: %s",
			req.MemberID, r.Day, r.Range.Start, r.Range.End, r.Reason)
	}

	// 4. Заменяем сохранённое время в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		deleted, err := uc.freeTimeRepo.DeleteByMember(txCtx, req.MemberID)
		if err != nil {
			return fmt.Errorf("%w: failed to delete old free time: %v", ErrInternal, err)
		}
		if deleted > 0 {
			uc.logger.Info("SetFreeTime: member=%d, removed %d old intervals", req.MemberID, deleted)
		}

		if err := uc.freeTimeRepo.CreateBatch(txCtx, freeTime); err != nil {
			return fmt.Errorf("%w: failed to save free time: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("SetFreeTime: member=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	saved := freeTime.TotalIntervals()
	uc.logger.Info("SetFreeTime: member=%d, saved=%d, rejected=%d", req.MemberID, saved, len(rejected))

	return &Response{
		MemberID: req.MemberID,
		Saved:    saved,
		Rejected: rejected,
	}, nil
}
