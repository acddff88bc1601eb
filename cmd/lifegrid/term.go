package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"lifegrid/internal/view"
	"lifegrid/pkg/sims/life"
)

func newTermCmd() *cobra.Command {
	var (
		flags    engineFlags
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Interactive terminal viewer",
		Long: `Interactive terminal viewer.

Keys: n step, r run/stop, c clear, w random fill, b next border mode,
mouse click toggles a cell, Ctrl+C quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			l, err := life.NewFromConfig(cfg, life.WithLogger(slog.Default()))
			if err != nil {
				return err
			}
			return view.NewTerminal(l, interval, slog.Default()).Run(cmd.Context())
		},
	}
	flags.bind(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "delay between generations while running")
	return cmd
}
