package vimshottari

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// mansionCount is the number of equal nakshatra segments of the ecliptic.
// The 9-ruler cycle repeats exactly three times across the 27 mansions.
const mansionCount = 27

// mansionSpanDegrees is the width of one nakshatra: 13°20'.
const mansionSpanDegrees = 360.0 / mansionCount

// ErrInvalidLongitude is returned for non-finite longitude input.
var ErrInvalidLongitude = errors.New("longitude must be finite")

// ErrInvalidPeriodCount is returned when a timeline is requested with fewer
// than one period.
var ErrInvalidPeriodCount = errors.New("period count must be positive")

// ErrInvalidBalance is returned when the opening balance is not a positive
// finite number of years.
var ErrInvalidBalance = errors.New("balance years must be positive and finite")

// ErrInvalidSpan is returned when a parent span to subdivide is empty or
// inverted.
var ErrInvalidSpan = errors.New("span end must be after start")

// Calculator is the stateless arithmetic engine. All methods are pure
// functions of their inputs plus the injected sequence; a single Calculator
// may be shared freely across goroutines.
type Calculator struct {
	seq Sequence
}

// NewCalculator builds a Calculator over the given dasha sequence.
func NewCalculator(seq Sequence) (*Calculator, error) {
	if err := seq.validate(); err != nil {
		return nil, err
	}
	return &Calculator{seq: seq}, nil
}

// Sequence returns the injected dasha sequence.
func (c *Calculator) Sequence() Sequence {
	return c.seq
}

// StartingPeriod maps the Moon's sidereal longitude at birth to the ruler
// of the birth mansion and the years remaining of that ruler's period.
// Longitude is interpreted mod 360, so any finite real value is accepted.
// At a mansion's exact starting boundary the full duration is returned.
func (c *Calculator) StartingPeriod(moonLongitude float64) (Ruler, float64, error) {
	if math.IsNaN(moonLongitude) || math.IsInf(moonLongitude, 0) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidLongitude, moonLongitude)
	}

	norm := math.Mod(moonLongitude, 360)
	if norm < 0 {
		norm += 360
	}

	mansion := int(norm / mansionSpanDegrees)
	if mansion >= mansionCount { // float rounding at the 360° seam
		mansion = mansionCount - 1
	}

	entry := c.seq.Entries[mansion%len(c.seq.Entries)]
	degreesIn := norm - float64(mansion)*mansionSpanDegrees
	fractionElapsed := degreesIn / mansionSpanDegrees
	balance := entry.Years * (1 - fractionElapsed)
	return entry.Ruler, balance, nil
}

// GenerateTimeline produces count consecutive Mahadasha periods beginning
// at birth. The first period runs for balanceYears (the partial remainder
// of the starting ruler's period); every later period runs its ruler's full
// duration, cycling through the sequence. Adjacent periods share a boundary
// by construction, so summing durations from birth reproduces every end
// date exactly.
func (c *Calculator) GenerateTimeline(birth time.Time, start Ruler, balanceYears float64, count int) ([]Period, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriodCount, count)
	}
	if balanceYears <= 0 || math.IsNaN(balanceYears) || math.IsInf(balanceYears, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBalance, balanceYears)
	}
	startIdx := c.seq.index(start)
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRuler, start)
	}

	periods := make([]Period, 0, count)
	cursor := birth
	for i := 0; i < count; i++ {
		idx := (startIdx + i) % len(c.seq.Entries)
		entry := c.seq.Entries[idx]
		years := entry.Years
		if i == 0 {
			years = balanceYears
		}
		end := addYears(cursor, years)
		periods = append(periods, Period{Ruler: entry.Ruler, Start: cursor, End: end})
		cursor = end
	}
	return periods, nil
}

// FindActivePeriod returns the period whose half-open interval
// [Start, End) contains target. As the single exception, a target equal to
// the last period's End returns that last period, so probing the exact
// terminal instant of a sequence does not come back empty. The second
// return is false when target falls outside the sequence entirely.
func (c *Calculator) FindActivePeriod(periods []Period, target time.Time) (Period, bool) {
	for _, p := range periods {
		if p.Contains(target) {
			return p, true
		}
	}
	if n := len(periods); n > 0 && target.Equal(periods[n-1].End) {
		return periods[n-1], true
	}
	return Period{}, false
}

// Subdivide splits [parentStart, parentEnd) into one sub-period per
// sequence entry, in cyclic order beginning with the parent's own ruler.
// Each sub-period's ideal share of the span is proportional to its ruler's
// duration; shares are converted to whole units (seconds for Antardashas,
// days for Pratyantardashas) by largest-remainder allocation so the
// sub-durations sum to the parent span with no rounding drift. The last
// sub-period's end is pinned to parentEnd, absorbing any sub-unit residue.
func (c *Calculator) Subdivide(parent Ruler, parentStart, parentEnd time.Time, unit time.Duration) ([]Period, error) {
	if !parentEnd.After(parentStart) {
		return nil, fmt.Errorf("%w: %s .. %s", ErrInvalidSpan,
			parentStart.Format(time.RFC3339), parentEnd.Format(time.RFC3339))
	}
	if unit <= 0 {
		return nil, fmt.Errorf("%w: unit %v", ErrInvalidSpan, unit)
	}
	startIdx := c.seq.index(parent)
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRuler, parent)
	}

	n := len(c.seq.Entries)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = c.seq.Entries[(startIdx+i)%n].Years
	}
	totalUnits := int64(parentEnd.Sub(parentStart) / unit)
	units := apportion(weights, totalUnits)

	periods := make([]Period, 0, n)
	cursor := parentStart
	for i := 0; i < n; i++ {
		entry := c.seq.Entries[(startIdx+i)%n]
		end := cursor.Add(time.Duration(units[i]) * unit)
		if i == n-1 {
			end = parentEnd
		}
		periods = append(periods, Period{Ruler: entry.Ruler, Start: cursor, End: end})
		cursor = end
	}
	return periods, nil
}
