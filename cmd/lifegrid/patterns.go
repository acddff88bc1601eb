package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lifegrid/pkg/sims/life"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the named patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range life.PatternNames() {
				fmt.Fprintf(tw, "%s\t%s\n", name, life.Patterns[name])
			}
			return tw.Flush()
		},
	}
}
