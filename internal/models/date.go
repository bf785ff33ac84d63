package models

import (
	"fmt"
	"time"
)

// Thai Buddhist calendar years run 543 ahead of the Gregorian calendar.
// Input years above this threshold are treated as Buddhist years.
const (
	buddhistYearOffset    = 543
	buddhistYearThreshold = 2500
)

// ValidationError reports a rejected input field. It is surfaced to the
// user as-is, so the message is written in Thai like the rest of the
// user-facing strings.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CalendarDate is a raw user-entered date. The year may be either
// Gregorian or Thai Buddhist; Normalized resolves it to Gregorian.
type CalendarDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Normalized returns the date with the year converted to Gregorian.
func (d CalendarDate) Normalized() CalendarDate {
	if d.Year > buddhistYearThreshold {
		d.Year -= buddhistYearOffset
	}
	return d
}

// Time converts the normalized date to a time.Time at midnight UTC.
func (d CalendarDate) Time() time.Time {
	n := d.Normalized()
	return time.Date(n.Year, time.Month(n.Month), n.Day, 0, 0, 0, 0, time.UTC)
}

// Validate rejects out-of-range day/month values and impossible composite
// dates such as 30 February. Composite dates are caught by round-tripping
// through time.Date, which normalizes overflow days into the next month.
func (d CalendarDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return &ValidationError{Field: "month", Message: "เดือนต้องอยู่ระหว่าง 1-12"}
	}
	if d.Day < 1 || d.Day > 31 {
		return &ValidationError{Field: "day", Message: "วันต้องอยู่ระหว่าง 1-31"}
	}
	n := d.Normalized()
	if n.Year < 1 {
		return &ValidationError{Field: "year", Message: "ปีไม่ถูกต้อง"}
	}
	t := n.Time()
	if t.Day() != n.Day || t.Month() != time.Month(n.Month) {
		return &ValidationError{Field: "day", Message: "วันที่ไม่มีอยู่จริงในปฏิทิน"}
	}
	return nil
}
