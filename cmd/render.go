package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/navagraha/dasha/internal/config"
	"github.com/navagraha/dasha/internal/dasha"
	"github.com/navagraha/dasha/internal/vimshottari"
)

// dayFormat is how period boundaries appear in text output. Structured
// formats carry full timestamps instead.
const dayFormat = "2006-01-02"

// renderSnapshot writes a snapshot in the requested format.
func renderSnapshot(w io.Writer, format string, snap *dasha.Snapshot) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, snap)
	case config.FormatYAML:
		return writeYAML(w, snap)
	}

	fmt.Fprintf(w, "Birth:  %s\n", snap.Birth.Format(time.RFC3339))
	fmt.Fprintf(w, "Target: %s\n\n", snap.Target.Format(time.RFC3339))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writePeriodRow(tw, "Mahadasha", snap.Mahadasha)
	writePeriodRow(tw, "Antardasha", snap.Antardasha)
	if snap.Pratyantardasha != nil {
		writePeriodRow(tw, "Pratyantardasha", *snap.Pratyantardasha)
	} else {
		fmt.Fprintf(tw, "Pratyantardasha\t-\t\t\n")
	}
	tw.Flush()

	fmt.Fprintf(w, "\nAntardashas of %s (* active):\n", snap.Mahadasha.Ruler)
	writePeriodList(w, snap.Antardashas, snap.Antardasha)

	if len(snap.Future) > 0 {
		fmt.Fprintf(w, "\nUpcoming Mahadashas:\n")
		writePeriodList(w, snap.Future, vimshottari.Period{})
	}
	return nil
}

// renderTransition writes a transition summary in the requested format.
func renderTransition(w io.Writer, format string, tr *dasha.Transition) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, tr)
	case config.FormatYAML:
		return writeYAML(w, tr)
	}

	fmt.Fprintf(w, "Birth:  %s\n", tr.Birth.Format(time.RFC3339))
	fmt.Fprintf(w, "Target: %s\n\n", tr.Target.Format(time.RFC3339))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeTransitionRow(tw, "Mahadasha", tr.Mahadasha)
	writeTransitionRow(tw, "Antardasha", tr.Antardasha)
	if tr.Pratyantardasha != nil {
		writeTransitionRow(tw, "Pratyantardasha", *tr.Pratyantardasha)
	}
	return tw.Flush()
}

// renderTimeline writes a Mahadasha timeline in the requested format.
func renderTimeline(w io.Writer, format string, birth time.Time, balanceYears float64, periods []vimshottari.Period) error {
	if format == config.FormatJSON || format == config.FormatYAML {
		out := timelineOutput{
			Birth:        birth,
			BalanceYears: balanceYears,
			Periods:      periods,
		}
		if format == config.FormatJSON {
			return writeJSON(w, out)
		}
		return writeYAML(w, out)
	}

	fmt.Fprintf(w, "Birth: %s (opening balance %.4f years)\n\n", birth.Format(time.RFC3339), balanceYears)
	writePeriodList(w, periods, vimshottari.Period{})
	return nil
}

// timelineOutput is the structured shape of the timeline command's result.
type timelineOutput struct {
	Birth        time.Time            `json:"birth" yaml:"birth"`
	BalanceYears float64              `json:"opening_balance_years" yaml:"opening_balance_years"`
	Periods      []vimshottari.Period `json:"periods" yaml:"periods"`
}

func writePeriodRow(w io.Writer, label string, p vimshottari.Period) {
	fmt.Fprintf(w, "%s\t%s\t%s .. %s\t(%.2fy)\n",
		label, p.Ruler, p.Start.Format(dayFormat), p.End.Format(dayFormat), yearsOf(p.Duration()))
}

func writePeriodList(w io.Writer, periods []vimshottari.Period, active vimshottari.Period) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range periods {
		marker := " "
		if !active.Start.IsZero() && p.Start.Equal(active.Start) {
			marker = "*"
		}
		fmt.Fprintf(tw, "  %s %s\t%s .. %s\t(%.2fy)\n",
			marker, p.Ruler, p.Start.Format(dayFormat), p.End.Format(dayFormat), yearsOf(p.Duration()))
	}
	tw.Flush()
}

func writeTransitionRow(w io.Writer, label string, lt dasha.LevelTransition) {
	next := "none"
	if lt.Next != nil {
		next = lt.Next.String()
	}
	fmt.Fprintf(w, "%s\t%s\tends %s\t%d days left\t(%.2f months)\tnext: %s\n",
		label, lt.Ruler, lt.Ends.Format(dayFormat), lt.DaysRemaining, lt.MonthsLeft, next)
}

// yearsOf converts a duration to fractional years for display.
func yearsOf(d time.Duration) float64 {
	return d.Hours() / 24 / 365.25
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}
