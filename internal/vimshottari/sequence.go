// Package vimshottari implements the timeline-partitioning engine for the
// Vimshottari dasha system: deriving the starting period from the Moon's
// sidereal longitude, generating contiguous planet-ruled periods across a
// 120-year cycle, and subdividing periods into sub-periods with exact
// duration conservation.
package vimshottari

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Ruler identifies one of the nine grahas that rule dasha periods.
type Ruler int

// The nine rulers in Vimshottari cyclic order.
const (
	Ketu Ruler = iota
	Venus
	Sun
	Moon
	Mars
	Rahu
	Jupiter
	Saturn
	Mercury
)

var rulerNames = [...]string{
	Ketu:    "Ketu",
	Venus:   "Venus",
	Sun:     "Sun",
	Moon:    "Moon",
	Mars:    "Mars",
	Rahu:    "Rahu",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Mercury: "Mercury",
}

// String returns the ruler's name, or "Ruler(n)" for out-of-range values.
func (r Ruler) String() string {
	if r < 0 || int(r) >= len(rulerNames) {
		return fmt.Sprintf("Ruler(%d)", int(r))
	}
	return rulerNames[r]
}

// MarshalText renders the ruler by name, so JSON and YAML output carry
// "Jupiter" rather than an enum ordinal.
func (r Ruler) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a ruler name.
func (r *Ruler) UnmarshalText(text []byte) error {
	parsed, err := ParseRuler(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ErrUnknownRuler is returned when a ruler name or value is not recognized.
var ErrUnknownRuler = errors.New("unknown ruler")

// ParseRuler converts a case-insensitive ruler name to its Ruler value.
func ParseRuler(name string) (Ruler, error) {
	for r, n := range rulerNames {
		if strings.EqualFold(name, n) {
			return Ruler(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRuler, name)
}

// Entry pairs a ruler with its fixed period duration in years.
type Entry struct {
	Ruler Ruler
	Years float64
}

// Sequence is the ordered, cyclic list of (ruler, duration) pairs that
// defines a dasha system. It is read-only configuration: construct once,
// inject into a Calculator, never mutate.
type Sequence struct {
	Entries []Entry
}

// Standard returns the Vimshottari sequence. The nine durations sum to
// exactly 120 years.
func Standard() Sequence {
	return Sequence{Entries: []Entry{
		{Ketu, 7},
		{Venus, 20},
		{Sun, 6},
		{Moon, 10},
		{Mars, 7},
		{Rahu, 18},
		{Jupiter, 16},
		{Saturn, 19},
		{Mercury, 17},
	}}
}

// TotalYears returns the sum of all entry durations (the full cycle length).
func (s Sequence) TotalYears() float64 {
	var total float64
	for _, e := range s.Entries {
		total += e.Years
	}
	return total
}

// index returns the position of r in the sequence, or -1 if absent.
func (s Sequence) index(r Ruler) int {
	for i, e := range s.Entries {
		if e.Ruler == r {
			return i
		}
	}
	return -1
}

// ErrEmptySequence is returned when constructing a Calculator from a
// sequence with no entries.
var ErrEmptySequence = errors.New("empty dasha sequence")

// ErrInvalidDuration is returned when a sequence entry has a non-positive
// duration.
var ErrInvalidDuration = errors.New("invalid entry duration")

// validate checks structural soundness of the sequence.
func (s Sequence) validate() error {
	if len(s.Entries) == 0 {
		return ErrEmptySequence
	}
	for _, e := range s.Entries {
		if e.Years <= 0 {
			return fmt.Errorf("%w: %s has %v years", ErrInvalidDuration, e.Ruler, e.Years)
		}
	}
	return nil
}

// Period is one planet-ruled interval at any nesting level. Within a
// sibling set generated for the same parent span, periods are strictly
// contiguous: each period's End equals the next period's Start.
type Period struct {
	Ruler Ruler     `json:"ruler" yaml:"ruler"`
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Duration returns the period's length.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Contains reports whether t falls within the half-open interval
// [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// String renders the period as "Ruler start..end" for logs and errors.
func (p Period) String() string {
	return fmt.Sprintf("%s %s..%s", p.Ruler,
		p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
}
