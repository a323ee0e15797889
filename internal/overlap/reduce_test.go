package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func countingIntersect(calls *int) intersectFunc {
	return func(a, b []domain.Interval) []domain.Interval {
		*calls++
		return Intersect(a, b)
	}
}

func TestReduce_EmptyAndIdentity(t *testing.T) {
	assert.Equal(t, []domain.Interval{}, Reduce(nil))
	assert.Equal(t, []domain.Interval{}, Reduce([][]domain.Interval{}))

	only := ivs(t, "13:00", "14:00", "09:00", "10:00")
	got := Reduce([][]domain.Interval{only})
	assert.Equal(t, only, got)

	got[0].Start = 0
	assert.Equal(t, 780, only[0].Start, "identity result must be a copy")
}

func TestReduce_ShortCircuit(t *testing.T) {
	calls := 0
	members := [][]domain.Interval{
		ivs(t, "09:00", "10:00"),
		ivs(t, "11:00", "12:00"),
		ivs(t, "09:00", "12:00"),
		ivs(t, "08:00", "18:00"),
	}

	got := reduce(members, countingIntersect(&calls))

	assert.Empty(t, got)
	assert.Equal(t, 1, calls)
}

func TestReduce_ShortCircuitOnEmptyFirstMember(t *testing.T) {
	calls := 0
	members := [][]domain.Interval{
		{},
		ivs(t, "09:00", "12:00"),
		ivs(t, "08:00", "18:00"),
	}

	got := reduce(members, countingIntersect(&calls))

	assert.Empty(t, got)
	assert.Zero(t, calls)
}

func TestReduce_FoldsEveryMember(t *testing.T) {
	calls := 0
	members := [][]domain.Interval{
		ivs(t, "09:00", "17:00"),
		ivs(t, "09:00", "12:00", "13:00", "17:00"),
		ivs(t, "11:00", "14:00"),
	}

	got := reduce(members, countingIntersect(&calls))

	assert.Equal(t, ivs(t, "11:00", "12:00", "13:00", "14:00"), got)
	assert.Equal(t, 2, calls)
}
