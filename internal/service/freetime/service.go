package freetime

import (
	"context"
	"errors"
	"fmt"

	freeTimeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/freetime"
	"github.com/m04kA/SMC-SchedulingService/internal/service/freetime/models"
)

// Service сервис для чтения и удаления свободного времени участников
type Service struct {
	freeTimeRepo FreeTimeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса свободного времени
func NewService(freeTimeRepo FreeTimeRepository, logger Logger) *Service {
	return &Service{
		freeTimeRepo: freeTimeRepo,
		logger:       logger,
	}
}

// Get получает недельное свободное время участника
func (s *Service) Get(ctx context.Context, memberID int64) (*models.FreeTimeResponse, error) {
	s.logger.Info("Get: fetching free time for member=%d", memberID)

	if memberID <= 0 {
		return nil, fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}

	ft, err := s.freeTimeRepo.GetByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, freeTimeRepo.ErrFreeTimeNotFound) {
			s.logger.Warn("Get: free time for member=%d not found", memberID)
			return nil, ErrFreeTimeNotFound
		}
		s.logger.Error("Get: repository error for member=%d: %v", memberID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: member=%d has %d intervals", memberID, ft.TotalIntervals())
	return models.FromDomainFreeTime(ft), nil
}

// Delete удаляет всё свободное время участника
// Удалить можно только своё время
func (s *Service) Delete(ctx context.Context, userID, memberID int64) error {
	s.logger.Info("Delete: user=%d deleting free time of member=%d", userID, memberID)

	if memberID <= 0 {
		return fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}

	if userID != memberID {
		s.logger.Warn("Delete: access denied for user=%d to member=%d", userID, memberID)
		return ErrAccessDenied
	}

	deleted, err := s.freeTimeRepo.DeleteByMember(ctx, memberID)
	if err != nil {
		s.logger.Error("Delete: repository error for member=%d: %v", memberID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if deleted == 0 {
		s.logger.Warn("Delete: free time for member=%d not found", memberID)
		return ErrFreeTimeNotFound
	}

	s.logger.Info("Delete: removed %d intervals of member=%d", deleted, memberID)
	return nil
}
