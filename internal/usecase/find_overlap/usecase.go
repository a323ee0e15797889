package find_overlap

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/projectservice"
	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

const metricsSource = "project"

// UseCase use case поиска общего свободного времени участников проекта
type UseCase struct {
	freeTimeRepo       FreeTimeRepository
	settingsRepo       SettingsRepository
	projectClient      ProjectServiceClient
	observer           OverlapObserver
	defaultMinDuration int
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	freeTimeRepo FreeTimeRepository,
	settingsRepo SettingsRepository,
	projectClient ProjectServiceClient,
	observer OverlapObserver,
	defaultMinDuration int,
	logger Logger,
) *UseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &UseCase{
		freeTimeRepo:       freeTimeRepo,
		settingsRepo:       settingsRepo,
		projectClient:      projectClient,
		observer:           observer,
		defaultMinDuration: defaultMinDuration,
		logger:             logger,
	}
}

// Execute выполняет use case поиска пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindOverlap: user=%d, project=%d, day=%s",
		req.UserID, req.ProjectID, dayLabel(req.Day))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindOverlap: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем проект и проверяем, что пользователь в нём состоит
	project, err := uc.projectClient.GetProject(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, projectservice.ErrProjectNotFound) {
			uc.logger.Warn("FindOverlap: project id=%d not found", req.ProjectID)
			return nil, ErrProjectNotFound
		}
		uc.logger.Error("FindOverlap: failed to get project id=%d: %v", req.ProjectID, err)
		return nil, fmt.Errorf("%w: failed to get project: %v", ErrInternal, err)
	}

	if !project.HasMember(req.UserID) {
		uc.logger.Warn("FindOverlap: user=%d is not a member of project=%d", req.UserID, req.ProjectID)
		return nil, ErrAccessDenied
	}

	// 3. Определяем минимальную длительность окна
	minDuration, err := uc.resolveMinDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Загружаем свободное время всех участников
	memberIDs := projectMemberIDs(project)
	freeTime, err := uc.freeTimeRepo.GetByMembers(ctx, memberIDs)
	if err != nil {
		uc.logger.Error("FindOverlap: failed to get free time for project=%d: %v", req.ProjectID, err)
		return nil, fmt.Errorf("%w: failed to get free time: %v", ErrInternal, err)
	}

	// 5. Участники без заполненного свободного времени не участвуют в расчёте
	participants := make([]int64, 0, len(memberIDs))
	missing := make([]int64, 0)
	for _, id := range memberIDs {
		if ft, ok := freeTime[id]; ok && !ft.IsEmpty() {
			participants = append(participants, id)
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		uc.logger.Info("FindOverlap: project=%d, members without free time: %v", req.ProjectID, missing)
	}

	// 6. Считаем пересечение для каждого запрошенного дня
	days := domain.AllDays()
	if req.Day != nil {
		days = []domain.DayOfWeek{*req.Day}
	}

	result := make([]DayOverlap, 0, len(days))
	for _, day := range days {
		lists := make([][]domain.Interval, len(participants))
		for i, id := range participants {
			lists[i] = freeTime[id].ForDay(day)
		}

		res, err := overlap.FindOverlap(lists, minDuration)
		if err != nil {
			uc.logger.Error("FindOverlap: failed to compute overlap for project=%d, day=%s: %v", req.ProjectID, day, err)
			return nil, fmt.Errorf("%w: failed to compute overlap: %v", ErrInternal, err)
		}

		for _, rej := range res.Rejected {
			uc.logger.Warn("FindOverlap: skipped invalid interval of member=%d on %s: %v",
				participants[rej.Member], day, rej.Err)
		}

		uc.observer.ObserveOverlap(metricsSource, len(res.Intervals))
		result = append(result, DayOverlap{Day: day, Intervals: res.Intervals})
	}

	uc.logger.Info("FindOverlap: project=%d, participants=%d, days=%d, minDuration=%d",
		req.ProjectID, len(participants), len(result), minDuration)

	return &Response{
		ProjectID:          req.ProjectID,
		MinDurationMinutes: minDuration,
		ParticipantIDs:     participants,
		MissingMemberIDs:   missing,
		Days:               result,
	}, nil
}

// resolveMinDuration приоритет: запрос -> настройки проекта -> конфигурация сервиса
func (uc *UseCase) resolveMinDuration(ctx context.Context, req *Request) (int, error) {
	if req.MinDurationMinutes != nil {
		return *req.MinDurationMinutes, nil
	}

	settings, err := uc.settingsRepo.GetByProject(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return uc.defaultMinDuration, nil
		}
		uc.logger.Error("FindOverlap: failed to get settings for project=%d: %v", req.ProjectID, err)
		return 0, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return settings.DefaultMinDurationMinutes, nil
}

// projectMemberIDs возвращает отсортированный список участников вместе с владельцем
func projectMemberIDs(project *projectservice.Project) []int64 {
	ids := make([]int64, 0, len(project.MemberIDs)+1)
	if project.OwnerID > 0 {
		ids = append(ids, project.OwnerID)
	}
	ids = append(ids, project.MemberIDs...)

	slices.Sort(ids)
	return slices.Compact(ids)
}

func dayLabel(day *domain.DayOfWeek) string {
	return ptr.Deref(day, "all").String()
}
