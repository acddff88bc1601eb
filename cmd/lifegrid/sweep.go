package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"lifegrid/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	var (
		flags   engineFlags
		count   int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the same configuration across consecutive seeds in parallel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			seeds := sweep.Seeds(cfg.Seed, count)
			slog.Info("sweep started",
				slog.Int("seeds", len(seeds)),
				slog.Int("workers", workers),
				slog.Int("steps", cfg.Steps))
			start := time.Now()
			results, err := sweep.Run(cmd.Context(), cfg, seeds, workers)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			slog.Info("sweep finished", slog.Duration("elapsed", time.Since(start)))
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&count, "count", 16, "number of seeds")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}
