package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestParseInterval(t *testing.T) {
	i, err := ParseInterval("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 540, End: 630}, i)
	assert.Equal(t, 90, i.Duration())
	assert.Equal(t, "09:00-10:30", i.String())

	_, err = ParseInterval("10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = ParseInterval("11:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = ParseInterval("9:00", "10:00")
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestInterval_Validate(t *testing.T) {
	assert.NoError(t, Interval{Start: 0, End: 1439}.Validate())
	assert.ErrorIs(t, Interval{Start: -5, End: 10}.Validate(), ErrInvalidInterval)
	assert.ErrorIs(t, Interval{Start: 10, End: 1440}.Validate(), ErrInvalidInterval)
	assert.ErrorIs(t, Interval{Start: 10, End: 10}.Validate(), ErrInvalidInterval)
}

func TestInterval_BoundsOutOfDay(t *testing.T) {
	assert.Equal(t, types.TimeString("09:00"), Interval{Start: 540, End: 600}.StartTime())
	assert.Equal(t, types.TimeString("-5"), Interval{Start: -5, End: 1500}.StartTime())
	assert.Equal(t, types.TimeString("1500"), Interval{Start: -5, End: 1500}.EndTime())
	assert.Equal(t, "-5-1500", Interval{Start: -5, End: 1500}.String())
}

func TestInterval_Overlaps(t *testing.T) {
	a := Interval{Start: 540, End: 600}
	assert.True(t, a.Overlaps(Interval{Start: 570, End: 630}))
	assert.True(t, a.Overlaps(Interval{Start: 550, End: 560}))
	// touching endpoints
	assert.False(t, a.Overlaps(Interval{Start: 600, End: 660}))
	assert.False(t, a.Overlaps(Interval{Start: 480, End: 540}))
}

func TestParseDayOfWeek(t *testing.T) {
	day, err := ParseDayOfWeek(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	_, err = ParseDayOfWeek("funday")
	assert.ErrorIs(t, err, ErrInvalidDay)

	assert.Len(t, AllDays(), 7)
	assert.Equal(t, Monday, AllDays()[0])
	assert.Equal(t, Sunday, DayFromWeekday(time.Sunday))
	assert.Equal(t, Thursday, DayFromWeekday(time.Thursday))
}

func TestMemberFreeTime_ForDayReturnsCopy(t *testing.T) {
	ft := &MemberFreeTime{
		MemberID: 1,
		Days: map[DayOfWeek][]Interval{
			Monday: {{Start: 540, End: 600}},
		},
	}

	got := ft.ForDay(Monday)
	got[0].Start = 0

	assert.Equal(t, 540, ft.Days[Monday][0].Start)
	assert.Empty(t, ft.ForDay(Tuesday))
	assert.False(t, ft.IsEmpty())
	assert.Equal(t, 1, ft.TotalIntervals())
}
