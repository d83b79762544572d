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

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the active dasha periods for a date",
	Long: `Computes the nested snapshot for a target date: the active Mahadasha,
Antardasha, and Pratyantardasha, the full Antardasha sibling set, and
optionally the upcoming Mahadashas.

  --birth    Birth instant (RFC3339 or YYYY-MM-DD, UTC), required
  --moon     Moon's sidereal longitude at birth in degrees, required
  --date     Target date (defaults to now)
  --future   Number of upcoming Mahadashas to include (0 disables)`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("birth", "", "birth instant (required)")
	snapshotCmd.Flags().Float64("moon", 0, "Moon's sidereal longitude in degrees (required)")
	snapshotCmd.Flags().String("date", "", "target date (defaults to now)")
	snapshotCmd.Flags().Int("future", -1, "upcoming Mahadashas to include (default from config)")
	_ = snapshotCmd.MarkFlagRequired("birth")
	_ = snapshotCmd.MarkFlagRequired("moon")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	req, err := snapshotRequest(cmd, cfg)
	if err != nil {
		return err
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

	_ = trace.Emit(telemetry.KindSnapshotStart, map[string]any{
		"birth":  req.Birth,
		"moon":   req.MoonLongitude,
		"target": req.Target,
	})

	snap, err := svc.ComputeSnapshot(req)
	if err != nil {
		var notFound *dasha.NoActivePeriodError
		if errors.As(err, &notFound) {
			_ = trace.Emit(telemetry.KindSnapshotNotFound, notFound)
			fmt.Fprintln(os.Stderr, notFound.Error())
			fmt.Fprintf(os.Stderr, "hint: raise timeline_periods (currently %d) to cover later dates\n",
				cfg.TimelinePeriods)
			os.Exit(1)
		}
		return err
	}
	_ = trace.Emit(telemetry.KindSnapshotDone, snap)

	return renderSnapshot(cmd.OutOrStdout(), cfg.Format, snap)
}

// snapshotRequest assembles the engine request from flags and config.
func snapshotRequest(cmd *cobra.Command, cfg config.Config) (dasha.SnapshotRequest, error) {
	birthFlag, _ := cmd.Flags().GetString("birth")
	birth, err := parseTimeFlag(birthFlag)
	if err != nil {
		return dasha.SnapshotRequest{}, fmt.Errorf("--birth: %w", err)
	}

	moon, _ := cmd.Flags().GetFloat64("moon")

	target := time.Now().UTC()
	if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
		target, err = parseTimeFlag(dateFlag)
		if err != nil {
			return dasha.SnapshotRequest{}, fmt.Errorf("--date: %w", err)
		}
	}

	future, _ := cmd.Flags().GetInt("future")
	if future < 0 {
		future = cfg.FuturePeriods
	}

	return dasha.SnapshotRequest{
		Birth:         birth,
		MoonLongitude: moon,
		Target:        target,
		IncludeFuture: future > 0,
		FuturePeriods: future,
	}, nil
}
