package datetime

import (
	"cmp"
	"fmt"
	"time"
)

// Date is a civil (year, month, day) triple with no time-of-day or time
// zone component. It is totally ordered lexicographically by (year, month,
// day).
type Date struct {
	Year  int16
	Month int8 // 1-12
	Day   int8 // 1-31
}

// NewDate constructs a Date from its components. No validation is performed;
// callers are expected to supply calendar-valid values, matching the
// "civil triple" contract this type implements as a black box.
func NewDate(year int16, month, day int8) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateFromTime extracts the civil date from a time.Time, ignoring
// time-of-day and location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Year: int16(y), Month: int8(m), Day: int8(d)}
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other,
// ordering lexicographically by (year, month, day).
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, other.Month); c != 0 {
		return c
	}

	return cmp.Compare(d.Day, other.Day)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// AddDays returns the date n days after d (n may be negative). Calendar
// arithmetic (month/year rollover) is delegated to time.Time, the one
// conventional civil-date primitive the standard library provides.
func (d Date) AddDays(n int) Date {
	t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, 0, n)

	return DateFromTime(t)
}

// SubDays returns the date n days before d; equivalent to AddDays(-n).
func (d Date) SubDays(n int) Date {
	return d.AddDays(-n)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
