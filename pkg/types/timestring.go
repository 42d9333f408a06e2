package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

const minutesPerDay = 24 * 60

const endOfDay = TimeString("24:00")

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is stored as a string to match TIME columns and JSON payloads.
type TimeString string

// NewTimeString creates a TimeString from a time.Time (truncated to minutes)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates a "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a valid "HH:MM" time.
// "24:00" is accepted as the end-of-day boundary.
func (t TimeString) Validate() error {
	if t == endOfDay {
		return nil
	}
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
// The value must be valid, otherwise the result is undefined.
func (t TimeString) Minutes() int {
	if len(t) != 5 || t[2] != ':' {
		return 0
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h*60 + m
}

// IsBefore returns true if t is strictly before other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly after other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns the time shifted forward by n minutes.
// Переход через полночь не поддерживается: окна расписания живут внутри одних суток.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.Minutes() + n
	if total < 0 {
		return "", fmt.Errorf("time underflow: %s minus %d minutes", t, -n)
	}
	if total > minutesPerDay {
		return "", fmt.Errorf("time overflow: %s plus %d minutes crosses midnight", t, n)
	}

	// 24:00 представляем как конец суток
	if total == minutesPerDay {
		return endOfDay, nil
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap:
//
//	Overlaps("10:00", "11:00", "11:00", "12:00") == false
//	Overlaps("10:00", "11:00", "10:30", "11:30") == true
//
// This is the single overlap predicate used by both the slot generator and
// the booking validator; the two must never diverge.
func Overlaps(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.Minutes() < bEnd.Minutes() && aEnd.Minutes() > bStart.Minutes()
}

// Scan implements sql.Scanner so repositories can scan TIME columns directly
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres отдаёт TIME как "HH:MM:SS" - отрезаем секунды
	if len(s) > 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
