package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:05", 725},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ParseMinutes(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMinutes_InvalidFormat(t *testing.T) {
	for _, in := range []string{
		"",
		"9:30",
		"09:3",
		"0930",
		"09-30",
		"24:00",
		"12:60",
		"ab:cd",
		" 9:30",
		"09:30:00",
	} {
		_, err := ParseMinutes(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, in)
	}
}

func TestFormatMinutes(t *testing.T) {
	got, err := FormatMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	got, err = FormatMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	for _, m := range []int{-1, MinutesPerDay, 5000} {
		_, err := FormatMinutes(m)
		assert.ErrorIs(t, err, ErrOutOfRange, m)
	}
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		s, err := FormatMinutes(m)
		require.NoError(t, err)

		back, err := ParseMinutes(s.String())
		require.NoError(t, err)
		require.Equal(t, m, back)

		again, err := FormatMinutes(back)
		require.NoError(t, err)
		require.Equal(t, s, again)
	}
}

func TestTimeString(t *testing.T) {
	m, err := TimeString("07:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 465, m)

	assert.NoError(t, TimeString("07:45").Validate())
	assert.ErrorIs(t, TimeString("7:45").Validate(), ErrInvalidFormat)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidFormat)
}
