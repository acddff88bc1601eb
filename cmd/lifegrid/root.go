package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"lifegrid/pkg/sims/life"
)

// engineFlags are the grid settings shared by run, term, sweep and verify.
type engineFlags struct {
	configPath string
	width      int
	height     int
	rule       string
	border     string
	seed       int64
	density    float64
	pattern    string
	steps      int
}

func (f *engineFlags) bind(cmd *cobra.Command) {
	def := life.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML run file; explicit flags override it")
	fs.IntVar(&f.width, "width", def.Width, "grid width in cells")
	fs.IntVar(&f.height, "height", def.Height, "grid height in cells")
	fs.StringVar(&f.rule, "rule", def.Rule, "rule in B/S notation")
	fs.StringVar(&f.border, "border", def.Border, "border mode: as-is, forever-dead, forever-alive, warp, mirror")
	fs.Int64Var(&f.seed, "seed", def.Seed, "random seed")
	fs.Float64Var(&f.density, "density", def.Density, "live-cell probability when no pattern is given")
	fs.StringVar(&f.pattern, "pattern", "", "pattern name or [WxH]digits stamped at the center")
	fs.IntVar(&f.steps, "steps", def.Steps, "generations to compute")
}

// config merges the YAML file (if any) with the flags the user set.
func (f *engineFlags) config(cmd *cobra.Command) (life.Config, error) {
	c := life.DefaultConfig()
	if f.configPath != "" {
		loaded, err := life.LoadConfig(f.configPath)
		if err != nil {
			return life.Config{}, err
		}
		c = loaded
	}
	fs := cmd.Flags()
	override := func(name string, apply func()) {
		if f.configPath == "" || fs.Changed(name) {
			apply()
		}
	}
	override("width", func() { c.Width = f.width })
	override("height", func() { c.Height = f.height })
	override("rule", func() { c.Rule = f.rule })
	override("border", func() { c.Border = f.border })
	override("seed", func() { c.Seed = f.seed })
	override("density", func() { c.Density = f.density })
	override("pattern", func() { c.Pattern = f.pattern })
	override("steps", func() { c.Steps = f.steps })
	if err := c.Validate(); err != nil {
		return life.Config{}, err
	}
	return c, nil
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "lifegrid",
		Short:         "Run and inspect life-like cellular automata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	root.AddCommand(
		newRunCmd(),
		newTermCmd(),
		newSweepCmd(),
		newVerifyCmd(),
		newPatternsCmd(),
	)
	return root
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})), nil
}
