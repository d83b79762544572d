// Package dasha assembles nested Vimshottari snapshots: the active period
// at every nesting level for a target date, sibling sub-periods, upcoming
// periods, and transition summaries. It orchestrates the vimshottari
// calculator and holds no state of its own.
package dasha

import (
	"time"

	"github.com/navagraha/dasha/internal/vimshottari"
)

// DefaultTimelinePeriods is the Mahadasha timeline length used when none is
// configured: just over two full 120-year cycles, enough to cover any
// realistic target date.
const DefaultTimelinePeriods = 20

// antardashaUnit is the allocation unit for Antardasha subdivision.
const antardashaUnit = time.Second

// pratyantardashaUnit is the allocation unit for Pratyantardasha
// subdivision.
const pratyantardashaUnit = 24 * time.Hour

// SnapshotRequest carries the inputs for one snapshot computation. Birth
// and Target must be on the same, caller-normalized time scale.
type SnapshotRequest struct {
	Birth         time.Time
	MoonLongitude float64
	Target        time.Time

	// IncludeFuture adds the Mahadashas following the active one,
	// truncated to FuturePeriods entries.
	IncludeFuture bool
	FuturePeriods int
}

// Snapshot is the nested result for one target date.
type Snapshot struct {
	Birth  time.Time `json:"birth" yaml:"birth"`
	Target time.Time `json:"target" yaml:"target"`

	Mahadasha       vimshottari.Period  `json:"mahadasha" yaml:"mahadasha"`
	Antardasha      vimshottari.Period  `json:"antardasha" yaml:"antardasha"`
	Pratyantardasha *vimshottari.Period `json:"pratyantardasha,omitempty" yaml:"pratyantardasha,omitempty"`

	// Sibling sets, for "what's next" displays. Antardashas tile the
	// active Mahadasha; Pratyantardashas tile the active Antardasha.
	Antardashas      []vimshottari.Period `json:"antardashas" yaml:"antardashas"`
	Pratyantardashas []vimshottari.Period `json:"pratyantardashas,omitempty" yaml:"pratyantardashas,omitempty"`

	// Upcoming Mahadashas, present only when requested.
	Future []vimshottari.Period `json:"future,omitempty" yaml:"future,omitempty"`
}

// Assembler builds snapshots and transitions by driving a Calculator.
// It is stateless and safe for concurrent use.
type Assembler struct {
	calc            *vimshottari.Calculator
	timelinePeriods int
}

// NewAssembler wraps calc with the default timeline length.
func NewAssembler(calc *vimshottari.Calculator) *Assembler {
	return &Assembler{calc: calc, timelinePeriods: DefaultTimelinePeriods}
}

// NewAssemblerWithTimeline wraps calc with a caller-chosen Mahadasha
// timeline length. Lengths below one fall back to the default.
func NewAssemblerWithTimeline(calc *vimshottari.Calculator, timelinePeriods int) *Assembler {
	if timelinePeriods < 1 {
		timelinePeriods = DefaultTimelinePeriods
	}
	return &Assembler{calc: calc, timelinePeriods: timelinePeriods}
}

// ComputeSnapshot resolves the active period at all three nesting levels
// for req.Target. A target outside the generated timeline returns a
// *NoActivePeriodError; an Antardasha lookup miss inside a non-empty
// sibling set returns an *InvariantError.
func (a *Assembler) ComputeSnapshot(req SnapshotRequest) (*Snapshot, error) {
	ruler, balance, err := a.calc.StartingPeriod(req.MoonLongitude)
	if err != nil {
		return nil, err
	}

	timeline, err := a.calc.GenerateTimeline(req.Birth, ruler, balance, a.timelinePeriods)
	if err != nil {
		return nil, err
	}

	maha, ok := a.calc.FindActivePeriod(timeline, req.Target)
	if !ok {
		return nil, &NoActivePeriodError{
			Birth:       req.Birth,
			Target:      req.Target,
			TimelineEnd: timeline[len(timeline)-1].End,
		}
	}

	antardashas, err := a.calc.Subdivide(maha.Ruler, maha.Start, maha.End, antardashaUnit)
	if err != nil {
		return nil, err
	}
	antar, ok := a.calc.FindActivePeriod(antardashas, req.Target)
	if !ok {
		// Contiguous siblings tile the whole Mahadasha, so a miss here
		// can only mean broken generation.
		return nil, &InvariantError{Level: "antardasha", Target: req.Target}
	}

	snap := &Snapshot{
		Birth:       req.Birth,
		Target:      req.Target,
		Mahadasha:   maha,
		Antardasha:  antar,
		Antardashas: antardashas,
	}

	pratyantardashas, err := a.calc.Subdivide(antar.Ruler, antar.Start, antar.End, pratyantardashaUnit)
	if err != nil {
		return nil, err
	}
	snap.Pratyantardashas = pratyantardashas
	if pratyantar, ok := a.calc.FindActivePeriod(pratyantardashas, req.Target); ok {
		snap.Pratyantardasha = &pratyantar
	}

	if req.IncludeFuture {
		snap.Future = futureSlice(timeline, maha, req.FuturePeriods)
	}
	return snap, nil
}

// futureSlice returns up to limit periods following active in the
// timeline. The returned slice is a copy so the snapshot does not alias
// generator output.
func futureSlice(timeline []vimshottari.Period, active vimshottari.Period, limit int) []vimshottari.Period {
	idx := -1
	for i, p := range timeline {
		if p.Start.Equal(active.Start) {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(timeline) || limit < 1 {
		return nil
	}
	rest := timeline[idx+1:]
	if limit < len(rest) {
		rest = rest[:limit]
	}
	out := make([]vimshottari.Period, len(rest))
	copy(out, rest)
	return out
}
