package dasha

import (
	"time"

	"github.com/navagraha/dasha/internal/vimshottari"
)

// daysPerYear and daysPerMonth convert whole-day remainders to the coarser
// units reported alongside them. Display conversions only; period
// boundaries never pass through these.
const (
	daysPerYear  = 365.25
	daysPerMonth = 365.25 / 12
)

// LevelTransition describes how much of one nesting level's active period
// remains at the target date, and which ruler takes over next. Next is nil
// when the active period is the last of its sibling set.
type LevelTransition struct {
	Ruler         vimshottari.Ruler  `json:"ruler" yaml:"ruler"`
	Ends          time.Time          `json:"ends" yaml:"ends"`
	DaysRemaining int                `json:"days_remaining" yaml:"days_remaining"`
	MonthsLeft    float64            `json:"months_remaining" yaml:"months_remaining"`
	YearsLeft     float64            `json:"years_remaining" yaml:"years_remaining"`
	Next          *vimshottari.Ruler `json:"next,omitempty" yaml:"next,omitempty"`
}

// Transition is the forward-looking summary for a target date: remaining
// time and successor ruler at each nesting level present.
type Transition struct {
	Birth  time.Time `json:"birth" yaml:"birth"`
	Target time.Time `json:"target" yaml:"target"`

	Mahadasha       LevelTransition  `json:"mahadasha" yaml:"mahadasha"`
	Antardasha      LevelTransition  `json:"antardasha" yaml:"antardasha"`
	Pratyantardasha *LevelTransition `json:"pratyantardasha,omitempty" yaml:"pratyantardasha,omitempty"`
}

// ComputeTransition builds the transition summary for the given birth
// data and target date. Failure modes are those of ComputeSnapshot.
func (a *Assembler) ComputeTransition(birth time.Time, moonLongitude float64, target time.Time) (*Transition, error) {
	snap, err := a.ComputeSnapshot(SnapshotRequest{
		Birth:         birth,
		MoonLongitude: moonLongitude,
		Target:        target,
		IncludeFuture: true,
		FuturePeriods: 1,
	})
	if err != nil {
		return nil, err
	}

	var nextMaha *vimshottari.Ruler
	if len(snap.Future) > 0 {
		nextMaha = &snap.Future[0].Ruler
	}

	tr := &Transition{
		Birth:      birth,
		Target:     target,
		Mahadasha:  levelTransition(snap.Mahadasha, target, nextMaha),
		Antardasha: levelTransition(snap.Antardasha, target, nextSibling(snap.Antardashas, snap.Antardasha)),
	}
	if snap.Pratyantardasha != nil {
		lt := levelTransition(*snap.Pratyantardasha, target,
			nextSibling(snap.Pratyantardashas, *snap.Pratyantardasha))
		tr.Pratyantardasha = &lt
	}
	return tr, nil
}

// levelTransition summarizes the remainder of one active period. Whole
// calendar days are measured with date-only subtraction so partial days
// never shift the count.
func levelTransition(p vimshottari.Period, target time.Time, next *vimshottari.Ruler) LevelTransition {
	days := vimshottari.DaysBetween(target, p.End)
	if days < 0 {
		days = 0
	}
	return LevelTransition{
		Ruler:         p.Ruler,
		Ends:          p.End,
		DaysRemaining: days,
		MonthsLeft:    float64(days) / daysPerMonth,
		YearsLeft:     float64(days) / daysPerYear,
		Next:          next,
	}
}

// nextSibling returns the ruler following current in its sibling set, or
// nil when current is the last sibling.
func nextSibling(siblings []vimshottari.Period, current vimshottari.Period) *vimshottari.Ruler {
	for i, p := range siblings {
		if p.Start.Equal(current.Start) {
			if i+1 < len(siblings) {
				return &siblings[i+1].Ruler
			}
			return nil
		}
	}
	return nil
}
