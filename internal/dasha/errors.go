package dasha

import (
	"fmt"
	"time"
)

// NoActivePeriodError reports that the target date falls outside the
// generated Mahadasha timeline: before birth, or past the last generated
// period. It is a recoverable outcome, not a defect; callers holding one
// can retry with a longer timeline.
type NoActivePeriodError struct {
	Birth       time.Time
	Target      time.Time
	TimelineEnd time.Time
}

func (e *NoActivePeriodError) Error() string {
	return fmt.Sprintf("no active mahadasha for %s: timeline covers %s to %s",
		e.Target.Format(time.RFC3339),
		e.Birth.Format(time.RFC3339),
		e.TimelineEnd.Format(time.RFC3339))
}

// InvariantError reports a contiguity violation: a lookup missed inside a
// non-empty sibling set that should completely tile its parent span. It
// indicates a bug in period generation, never a caller mistake.
type InvariantError struct {
	Level  string
	Target time.Time
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: no active %s for %s despite contiguous siblings",
		e.Level, e.Target.Format(time.RFC3339))
}
