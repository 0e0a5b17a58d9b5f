// Package date implements the proleptic Gregorian calendar arithmetic used to
// key daily price records.
package date

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Separator splits the year, month and day fields of a date string.
const Separator = "-"

var (
	// ErrSyntax is wrapped by parse errors for text that is not made of three numeric fields.
	ErrSyntax = errors.New("invalid date syntax")
	// ErrOutOfRange is wrapped by parse errors for a month or day outside of the calendar.
	ErrOutOfRange = errors.New("date out of range")
	// ErrMonthOutOfRange is returned by DaysInMonth for months outside 1..12.
	ErrMonthOutOfRange = errors.New("month out of range")
)

// ParseError reports a string that cannot be read as a Date.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q want format YYYY-MM-DD: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// monthLengths in a common year, indexed by month.
var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year has a 29th of February.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}
	if month == time.February && IsLeapYear(year) {
		return 29, nil
	}
	return monthLengths[month], nil
}

// mustDaysInMonth is DaysInMonth for months already known to be valid.
func mustDaysInMonth(year int, month time.Month) int {
	n, err := DaysInMonth(year, month)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
//
// Out of range values are normalized the way time.Date does: October 32 becomes November 1.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Compare returns -1, 0 or +1 as d is before, equal to or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmp.Compare(d.y, x.y)
	case d.m != x.m:
		return cmp.Compare(d.m, x.m)
	default:
		return cmp.Compare(d.d, x.d)
	}
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Next returns the following calendar day.
func (d Date) Next() Date {
	switch {
	case d.d < mustDaysInMonth(d.y, d.m):
		return Date{d.y, d.m, d.d + 1}
	case d.m < time.December:
		return Date{d.y, d.m + 1, 1}
	default:
		return Date{d.y + 1, time.January, 1}
	}
}

// Prior returns the preceding calendar day.
// The calendar starts on 0-01-01, whose Prior is itself.
func (d Date) Prior() Date {
	switch {
	case d.y <= 0 && d.m == time.January && d.d == 1:
		return d
	case d.d > 1:
		return Date{d.y, d.m, d.d - 1}
	case d.m > time.January:
		return Date{d.y, d.m - 1, mustDaysInMonth(d.y, d.m-1)}
	default:
		return Date{d.y - 1, time.December, 31}
	}
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String formats the date as YYYY-MM-DD. The year is not padded.
func (d Date) String() string { return fmt.Sprintf("%d-%02d-%02d", d.y, d.m, d.d) }

// Parse parses a Date from a string. It is lenient on padding and accepts "2025-7-1".
func Parse(str string) (Date, error) {
	fields := strings.Split(str, Separator)
	if len(fields) != 3 {
		return Date{}, &ParseError{str, fmt.Errorf("%w: got %d fields want 3", ErrSyntax, len(fields))}
	}
	var values [3]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 31)
		if err != nil {
			return Date{}, &ParseError{str, fmt.Errorf("%w: field %q: %w", ErrSyntax, f, err)}
		}
		values[i] = int(v)
	}
	year, month, day := values[0], time.Month(values[1]), values[2]

	n, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, &ParseError{str, fmt.Errorf("%w: %w", ErrOutOfRange, err)}
	}
	if day < 1 || day > n {
		return Date{}, &ParseError{str, fmt.Errorf("%w: day %d not in 1..%d", ErrOutOfRange, day, n)}
	}
	return Date{year, month, day}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalText implements encoding.TextMarshaler so that Date can key JSON objects.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	on, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = on
	return nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(str))
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
