package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/navagraha/dasha/internal/config"
	"github.com/navagraha/dasha/internal/dasha"
	"github.com/navagraha/dasha/internal/telemetry"
)

var transitionCmd = &cobra.Command{
	Use:   "transition",
	Short: "Show time remaining and next rulers for a date",
	Long: `Computes the transition summary for a target date: whole days, months,
and years remaining in the active period at each nesting level, and the
ruler that takes over next.

  --birth    Birth instant (RFC3339 or YYYY-MM-DD, UTC), required
  --moon     Moon's sidereal longitude at birth in degrees, required
  --date     Target date (defaults to now)`,
	RunE: runTransition,
}

func init() {
	transitionCmd.Flags().String("birth", "", "birth instant (required)")
	transitionCmd.Flags().Float64("moon", 0, "Moon's sidereal longitude in degrees (required)")
	transitionCmd.Flags().String("date", "", "target date (defaults to now)")
	_ = transitionCmd.MarkFlagRequired("birth")
	_ = transitionCmd.MarkFlagRequired("moon")
	rootCmd.AddCommand(transitionCmd)
}

func runTransition(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	birthFlag, _ := cmd.Flags().GetString("birth")
	birth, err := parseTimeFlag(birthFlag)
	if err != nil {
		return fmt.Errorf("--birth: %w", err)
	}
	moon, _ := cmd.Flags().GetFloat64("moon")

	target := time.Now().UTC()
	if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
		target, err = parseTimeFlag(dateFlag)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}
	trace, err := newEmitter(cfg)
	if err != nil {
		return err
	}
	defer trace.Close()

	tr, err := svc.ComputeTransition(birth, moon, target)
	if err != nil {
		var notFound *dasha.NoActivePeriodError
		if errors.As(err, &notFound) {
			_ = trace.Emit(telemetry.KindSnapshotNotFound, notFound)
			fmt.Fprintln(os.Stderr, notFound.Error())
			os.Exit(1)
		}
		return err
	}
	_ = trace.Emit(telemetry.KindTransitionDone, tr)

	return renderTransition(cmd.OutOrStdout(), cfg.Format, tr)
}
