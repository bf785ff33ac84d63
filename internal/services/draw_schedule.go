package services

import (
	"fmt"
	"time"
)

// Thai Government Lottery draws fall on the 1st and 16th of each month.

var thaiMonths = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน",
	"พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม",
	"กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var monthIDs = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// NextDrawDate returns the first draw date on or after from, rolling
// December into January of the next year.
func NextDrawDate(from time.Time) time.Time {
	year, month, day := from.Date()
	switch {
	case day <= 1:
		return time.Date(year, month, 1, 0, 0, 0, 0, from.Location())
	case day <= 16:
		return time.Date(year, month, 16, 0, 0, 0, 0, from.Location())
	default:
		// time.Date normalizes month 13 into January of year+1.
		return time.Date(year, month+1, 1, 0, 0, 0, 0, from.Location())
	}
}

// FormatThaiLabel renders the draw label shown to users, with the year
// in the Thai Buddhist calendar.
func FormatThaiLabel(t time.Time) string {
	return fmt.Sprintf("งวด %d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+543)
}

// FormatISODate renders a zero-padded YYYY-MM-DD date.
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DrawID builds the stable draw identifier, e.g. "mar-1-2026". Unique
// within one Gregorian year.
func DrawID(t time.Time) string {
	return fmt.Sprintf("%s-%d-%d", monthIDs[t.Month()-1], t.Day(), t.Year())
}

// TodayISO is a convenience for handlers that key caches by date.
func TodayISO() string {
	return FormatISODate(time.Now())
}
