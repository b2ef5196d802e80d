package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month identifier")

// MonthID identifies a calendar year and month with no day or time component.
// All recurrence and ledger arithmetic operates on (year, month) pairs, so a
// value never crosses a timezone boundary inside a serialized date.
type MonthID struct {
	Year  int
	Month int
}

// ParseMonthID parses a "YYYY-MM" string into a MonthID
func ParseMonthID(text string) (MonthID, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return MonthID{}, fmt.Errorf("%w: %q", ErrInvalidMonth, text)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthID{}, fmt.Errorf("%w: %q", ErrInvalidMonth, text)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthID{}, fmt.Errorf("%w: %q", ErrInvalidMonth, text)
	}
	if month < 1 || month > 12 {
		return MonthID{}, fmt.Errorf("%w: month %d out of range", ErrInvalidMonth, month)
	}
	return MonthID{Year: year, Month: month}, nil
}

// MonthIDFromTime derives the MonthID for a point in time, dropping the day
// and time components
func MonthIDFromTime(t time.Time) MonthID {
	return MonthID{Year: t.Year(), Month: int(t.Month())}
}

// String returns the canonical "YYYY-MM" form with a zero-padded month
func (m MonthID) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// IsZero reports whether the MonthID is the zero value
func (m MonthID) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// AddMonths returns the MonthID offset by the given number of months. The
// offset may be negative; year boundaries roll correctly in both directions.
func (m MonthID) AddMonths(offset int) MonthID {
	total := m.Year*12 + m.Month - 1 + offset
	year := total / 12
	month := total % 12
	if month < 0 {
		year--
		month += 12
	}
	return MonthID{Year: year, Month: month + 1}
}

// DiffMonths returns the signed number of months from b to a
func DiffMonths(a, b MonthID) int {
	return (a.Year-b.Year)*12 + (a.Month - b.Month)
}

// Compare returns -1 if m is before other, 0 if equal, 1 if after
func (m MonthID) Compare(other MonthID) int {
	switch {
	case m.Year != other.Year:
		if m.Year < other.Year {
			return -1
		}
		return 1
	case m.Month != other.Month:
		if m.Month < other.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether m is strictly before other
func (m MonthID) Before(other MonthID) bool {
	return m.Compare(other) < 0
}

// After reports whether m is strictly after other
func (m MonthID) After(other MonthID) bool {
	return m.Compare(other) > 0
}

// MarshalText implements encoding.TextMarshaler so MonthID values work both
// as JSON fields and as JSON object keys
func (m MonthID) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *MonthID) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthID(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
