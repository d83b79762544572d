package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navagraha/dasha/internal/config"
	"github.com/navagraha/dasha/internal/telemetry"
	"github.com/navagraha/dasha/internal/vimshottari"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "List Mahadasha periods from birth onward",
	Long: `Generates the Mahadasha timeline for a birth chart: the partial opening
period derived from the Moon's longitude, followed by full periods cycling
through the dasha sequence.

  --birth    Birth instant (RFC3339 or YYYY-MM-DD, UTC), required
  --moon     Moon's sidereal longitude at birth in degrees, required
  --periods  Number of Mahadashas to generate (default from config)`,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().String("birth", "", "birth instant (required)")
	timelineCmd.Flags().Float64("moon", 0, "Moon's sidereal longitude in degrees (required)")
	timelineCmd.Flags().Int("periods", 0, "number of Mahadashas to generate")
	_ = timelineCmd.MarkFlagRequired("birth")
	_ = timelineCmd.MarkFlagRequired("moon")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
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
	count, _ := cmd.Flags().GetInt("periods")
	if count < 1 {
		count = cfg.TimelinePeriods
	}

	seq := vimshottari.Standard()
	if cfg.SequenceFile != "" {
		if seq, err = config.LoadSequence(cfg.SequenceFile); err != nil {
			return err
		}
	}
	calc, err := vimshottari.NewCalculator(seq)
	if err != nil {
		return err
	}

	ruler, balance, err := calc.StartingPeriod(moon)
	if err != nil {
		return err
	}
	periods, err := calc.GenerateTimeline(birth, ruler, balance, count)
	if err != nil {
		return err
	}

	trace, err := newEmitter(cfg)
	if err != nil {
		return err
	}
	defer trace.Close()
	_ = trace.Emit(telemetry.KindTimelineGenerated, map[string]any{
		"birth":   birth,
		"moon":    moon,
		"periods": count,
		"balance": balance,
	})

	return renderTimeline(cmd.OutOrStdout(), cfg.Format, birth, balance, periods)
}
