package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lifegrid/internal/analysis"
	"lifegrid/pkg/sims/life"
)

func newVerifyCmd() *cobra.Command {
	var flags engineFlags
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the engine against an FFT neighbor count on the torus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			cfg.Border = life.Warp.String()
			l, err := life.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			rep, err := analysis.Verify(l, cfg.Steps)
			if err != nil {
				return err
			}
			if !rep.OK() {
				return fmt.Errorf("verify: %s", rep.Mismatch)
			}
			slog.Info("verify passed",
				slog.Int("steps", rep.Steps),
				slog.Int("neighbor_sum", rep.NeighborSum),
				slog.String("rule", l.Rule()))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d generations match\n", rep.Steps)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}
