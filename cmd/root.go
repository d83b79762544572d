// Package cmd wires the dasha CLI: cobra commands over the snapshot and
// transition service, with viper-backed configuration. The computation
// core under internal/ knows nothing about this surface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navagraha/dasha/internal/config"
	"github.com/navagraha/dasha/internal/dasha"
	"github.com/navagraha/dasha/internal/telemetry"
	"github.com/navagraha/dasha/internal/vimshottari"
)

var rootCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Vimshottari dasha period calculator",
	Long: `Dasha computes hierarchical planet-ruled time periods from a birth
moment and the Moon's sidereal longitude: the active Mahadasha, Antardasha,
and Pratyantardasha for any target date, plus forward timelines and
transition summaries.

The Moon's sidereal longitude must come from an ephemeris; dasha performs
no astronomical computation of its own.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .dasha.yaml)")
	rootCmd.PersistentFlags().String("format", "", "output format: text, json, or yaml")
	rootCmd.PersistentFlags().String("sequence", "", "TOML file defining an alternate dasha sequence")
	rootCmd.PersistentFlags().String("trace", "", "JSONL file to record computation events to")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("sequence_file", rootCmd.PersistentFlags().Lookup("sequence"))
	_ = viper.BindPFlag("trace_file", rootCmd.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".dasha")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("DASHA")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// newService builds the service stack from loaded configuration: the
// sequence (standard or from a sequence file), the calculator, and the
// assembler.
func newService(cfg config.Config) (*dasha.Service, error) {
	seq := vimshottari.Standard()
	if cfg.SequenceFile != "" {
		loaded, err := config.LoadSequence(cfg.SequenceFile)
		if err != nil {
			return nil, err
		}
		seq = loaded
	}

	calc, err := vimshottari.NewCalculator(seq)
	if err != nil {
		return nil, err
	}
	return dasha.NewService(dasha.NewAssemblerWithTimeline(calc, cfg.TimelinePeriods)), nil
}

// newEmitter opens the trace emitter when configured; a nil emitter is a
// no-op.
func newEmitter(cfg config.Config) (*telemetry.Emitter, error) {
	if cfg.TraceFile == "" {
		return nil, nil
	}
	return telemetry.NewEmitter(cfg.TraceFile)
}
