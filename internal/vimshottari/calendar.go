package vimshottari

import (
	"math"
	"time"
)

// meanDaysPerMonth converts a sub-month fractional remainder to days
// (365.25 / 12). Only the fraction left after whole years and whole months
// have been added calendar-correctly is scaled by this constant, so the
// approximation never compounds across periods.
const meanDaysPerMonth = 365.25 / 12

// secondsPerDay is the fixed day length used for fractional-day remainders.
const secondsPerDay = 86400

// addYears advances t by a possibly fractional number of years using
// calendar-correct arithmetic: whole years and whole months are added with
// day-of-month clamping, then the remaining fraction of a month is added as
// whole seconds. Jan 31 plus one month lands on the last day of February,
// never on an invalid date.
func addYears(t time.Time, years float64) time.Time {
	wholeYears := int(years)
	monthsFrac := (years - float64(wholeYears)) * 12
	wholeMonths := int(monthsFrac)
	fracDays := (monthsFrac - float64(wholeMonths)) * meanDaysPerMonth

	out := addMonthsClamped(t, wholeYears*12+wholeMonths)
	secs := math.Round(fracDays * secondsPerDay)
	if secs != 0 {
		out = out.Add(time.Duration(secs) * time.Second)
	}
	return out
}

// addMonthsClamped advances t by a number of whole months, carrying year
// overflow and clamping the day-of-month to the destination month's length.
// Unlike time.Time.AddDate, it never normalizes past the month boundary.
func addMonthsClamped(t time.Time, months int) time.Time {
	year := t.Year()
	monthIdx := int(t.Month()) - 1 + months
	year += monthIdx / 12
	monthIdx %= 12
	if monthIdx < 0 {
		monthIdx += 12
		year--
	}
	month := time.Month(monthIdx + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month, accounting for
// leap years.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOnly truncates t to midnight UTC of its calendar date. Used for
// whole-day subtraction where time-of-day must not introduce off-by-one
// results.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, ignoring
// time-of-day on both ends. Negative if b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)) / (secondsPerDay * time.Second))
}
