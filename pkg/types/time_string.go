package types

import (
	"errors"
	"fmt"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату "HH:MM"
	// или часы/минуты выходят за допустимые границы
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange возвращается, когда количество минут не попадает в [0, 1439]
	ErrOutOfRange = errors.New("minutes out of range")
)

// TimeString время суток в формате "HH:MM" (без даты и часового пояса)
type TimeString string

// ParseMinutes переводит строку "HH:MM" в количество минут от полуночи.
// Часы и минуты обязаны быть дополнены нулями до двух цифр.
func ParseMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q: hour or minute out of range", ErrInvalidFormat, s)
	}

	return hours*60 + minutes, nil
}

// FormatMinutes переводит количество минут от полуночи обратно в "HH:MM"
func FormatMinutes(m int) (TimeString, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	return ParseMinutes(string(t))
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := ParseMinutes(string(t))
	return err
}

func (t TimeString) String() string {
	return string(t)
}
