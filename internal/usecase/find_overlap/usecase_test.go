package find_overlap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/projectservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeFreeTimeRepo struct {
	data      map[int64]*domain.MemberFreeTime
	err       error
	requested []int64
}

func (r *fakeFreeTimeRepo) GetByMembers(_ context.Context, ids []int64) (map[int64]*domain.MemberFreeTime, error) {
	r.requested = ids
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[int64]*domain.MemberFreeTime)
	for _, id := range ids {
		if ft, ok := r.data[id]; ok {
			out[id] = ft
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *domain.ProjectSettings
	err      error
}

func (r *fakeSettingsRepo) GetByProject(context.Context, int64) (*domain.ProjectSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return r.settings, nil
}

type fakeProjectClient struct {
	project *projectservice.Project
	err     error
}

func (c *fakeProjectClient) GetProject(context.Context, int64) (*projectservice.Project, error) {
	return c.project, c.err
}

type countingObserver struct {
	calls int
}

func (o *countingObserver) ObserveOverlap(string, int) {
	o.calls++
}

func mustInterval(t *testing.T, start, end string) domain.Interval {
	t.Helper()
	in, err := domain.ParseInterval(start, end)
	require.NoError(t, err)
	return in
}

type fixture struct {
	freeTime *fakeFreeTimeRepo
	settings *fakeSettingsRepo
	projects *fakeProjectClient
	observer *countingObserver
	uc       *UseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		freeTime: &fakeFreeTimeRepo{data: map[int64]*domain.MemberFreeTime{
			1: {MemberID: 1, Days: map[domain.DayOfWeek][]domain.Interval{
				domain.Monday:  {mustInterval(t, "09:00", "17:00")},
				domain.Tuesday: {mustInterval(t, "10:00", "11:00")},
			}},
			2: {MemberID: 2, Days: map[domain.DayOfWeek][]domain.Interval{
				domain.Monday: {mustInterval(t, "09:00", "12:00"), mustInterval(t, "13:00", "17:00")},
			}},
			3: {MemberID: 3, Days: map[domain.DayOfWeek][]domain.Interval{
				domain.Monday:  {mustInterval(t, "11:00", "14:00")},
				domain.Tuesday: {mustInterval(t, "10:00", "12:00")},
			}},
		}},
		settings: &fakeSettingsRepo{},
		projects: &fakeProjectClient{project: &projectservice.Project{
			ID: 10, OwnerID: 1, MemberIDs: []int64{3, 2, 4},
		}},
		observer: &countingObserver{},
	}
	f.uc = NewUseCase(f.freeTime, f.settings, f.projects, f.observer, 30, logger.NewNop())
	return f
}

func TestExecute_SingleDay(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:             2,
		ProjectID:          10,
		Day:                ptr.Ptr(domain.Monday),
		MinDurationMinutes: ptr.Ptr(0),
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3, 4}, f.freeTime.requested)
	assert.Equal(t, []int64{1, 2, 3}, resp.ParticipantIDs)
	assert.Equal(t, []int64{4}, resp.MissingMemberIDs)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, domain.Monday, resp.Days[0].Day)
	assert.Equal(t, []domain.Interval{
		mustInterval(t, "11:00", "12:00"),
		mustInterval(t, "13:00", "14:00"),
	}, resp.Days[0].Intervals)
	assert.Equal(t, 1, f.observer.calls)
}

func TestExecute_AllDaysWithConfigDefault(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.MinDurationMinutes)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, domain.Monday, resp.Days[0].Day)
	assert.Len(t, resp.Days[0].Intervals, 2)
	// member 2 has nothing on Tuesday
	assert.Empty(t, resp.Days[1].Intervals)
	assert.Equal(t, 7, f.observer.calls)
}

func TestExecute_ProjectSettingsDuration(t *testing.T) {
	f := newFixture(t)
	f.settings.settings = &domain.ProjectSettings{ProjectID: 10, DefaultMinDurationMinutes: 90}

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:    1,
		ProjectID: 10,
		Day:       ptr.Ptr(domain.Monday),
	})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.MinDurationMinutes)
	assert.Empty(t, resp.Days[0].Intervals)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10, MinDurationMinutes: ptr.Ptr(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10, Day: ptr.Ptr(domain.DayOfWeek("funday"))})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("project not found", func(t *testing.T) {
		f := newFixture(t)
		f.projects.project, f.projects.err = nil, projectservice.ErrProjectNotFound
		_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("project service down", func(t *testing.T) {
		f := newFixture(t)
		f.projects.project, f.projects.err = nil, projectservice.ErrInternal
		_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("not a member", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(context.Background(), &Request{UserID: 99, ProjectID: 10})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)
		f.freeTime.err = errors.New("connection refused")
		_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("settings failure", func(t *testing.T) {
		f := newFixture(t)
		f.settings.err = errors.New("timeout")
		_, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_NobodyFilledFreeTime(t *testing.T) {
	f := newFixture(t)
	f.freeTime.data = nil

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: 1, ProjectID: 10, Day: ptr.Ptr(domain.Friday)})
	require.NoError(t, err)

	assert.Empty(t, resp.ParticipantIDs)
	assert.Equal(t, []int64{1, 2, 3, 4}, resp.MissingMemberIDs)
	assert.Empty(t, resp.Days[0].Intervals)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "all", dayLabel(nil))
	assert.Equal(t, "monday", dayLabel(ptr.Ptr(domain.Monday)))
}
