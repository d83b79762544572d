package vimshottari

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"simple", date(1990, time.January, 15), 1, date(1990, time.February, 15)},
		{"year carry", date(1990, time.November, 10), 3, date(1991, time.February, 10)},
		{"clamp jan31 to feb", date(1991, time.January, 31), 1, date(1991, time.February, 28)},
		{"clamp jan31 to leap feb", date(1992, time.January, 31), 1, date(1992, time.February, 29)},
		{"clamp may31 to june30", date(1990, time.May, 31), 1, date(1990, time.June, 30)},
		{"negative months", date(1990, time.March, 15), -3, date(1989, time.December, 15)},
		{"whole years", date(1990, time.January, 15), 240, date(2010, time.January, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addMonthsClamped(tt.in, tt.months); !got.Equal(tt.want) {
				t.Errorf("addMonthsClamped(%v, %d) = %v, want %v", tt.in, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddMonthsClampedPreservesClock(t *testing.T) {
	t.Parallel()
	in := time.Date(1990, time.January, 15, 9, 30, 45, 0, time.UTC)
	got := addMonthsClamped(in, 13)
	want := time.Date(1991, time.February, 15, 9, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("addMonthsClamped = %v, want %v", got, want)
	}
}

func TestAddYears(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    time.Time
		years float64
		want  time.Time
	}{
		{"whole years", date(1990, time.January, 15), 7, date(1997, time.January, 15)},
		{"quarter year is three months", date(1990, time.January, 15), 6.25, date(1996, time.April, 15)},
		{"half year", date(1990, time.January, 15), 0.5, date(1990, time.July, 15)},
		{"across leap day", date(1995, time.December, 31), 0.25, date(1996, time.March, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addYears(tt.in, tt.years); !got.Equal(tt.want) {
				t.Errorf("addYears(%v, %v) = %v, want %v", tt.in, tt.years, got, tt.want)
			}
		})
	}
}

func TestAddYearsFractionalMonth(t *testing.T) {
	t.Parallel()
	// 1/24 year = half a month: whole-month addition contributes nothing,
	// so the full amount lands as rounded seconds of the mean half-month.
	got := addYears(date(2000, time.January, 1), 1.0/24)
	want := date(2000, time.January, 1).
		Add(time.Duration(meanDaysPerMonth/2*secondsPerDay) * time.Second)
	if diff := got.Sub(want); diff < -time.Second || diff > time.Second {
		t.Errorf("addYears(1/24y) = %v, want %v (±1s)", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, time.June, 1), date(2024, time.June, 1), 0},
		{"one day", date(2024, time.June, 1), date(2024, time.June, 2), 1},
		{"ignores time of day", time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2024, time.June, 2, 0, 1, 0, 0, time.UTC), 1},
		{"across leap day", date(2024, time.February, 28), date(2024, time.March, 1), 2},
		{"negative", date(2024, time.June, 2), date(2024, time.June, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
