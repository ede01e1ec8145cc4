// Package dateint converts between calendar dates and the 8-digit integer
// encoding (YYYYMMDD) used as the on-disk representation of registration and
// payment dates.
package dateint

import (
	"fmt"
	"time"
)

// FormatError reports a value that is not a valid YYYYMMDD encoding.
type FormatError struct {
	Value  int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dateint: invalid value %d: %s", e.Value, e.Reason)
}

// Encode returns the YYYYMMDD encoding of t's calendar date.
// The time-of-day and location of t are ignored apart from selecting the day;
// callers stamping "now" must pass a UTC time.
func Encode(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Decode is the inverse of Encode. It fails with *FormatError unless v has
// exactly 8 decimal digits and names a valid calendar date. The returned time
// is midnight UTC of that date, so Decode(Encode(d)) == d for every date-only
// value between year 1000 and 9999.
func Decode(v int) (time.Time, error) {
	if v < 10000000 || v > 99999999 {
		return time.Time{}, &FormatError{Value: v, Reason: "must have exactly 8 digits"}
	}

	year := v / 10000
	month := (v / 100) % 100
	day := v % 100

	if month < 1 || month > 12 {
		return time.Time{}, &FormatError{Value: v, Reason: "month out of range"}
	}
	if day < 1 || day > 31 {
		return time.Time{}, &FormatError{Value: v, Reason: "day out of range"}
	}

	// time.Date normalizes overflow (Feb 30 becomes Mar 1); a round-trip
	// mismatch therefore means the day does not exist in that month.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, &FormatError{Value: v, Reason: "no such calendar date"}
	}
	return t, nil
}
