package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"lifegrid/internal/core"
	"lifegrid/internal/view"
	"lifegrid/pkg/sims/life"
)

func newRunCmd() *cobra.Command {
	var (
		flags       engineFlags
		tps         int
		every       int
		printGrid   bool
		color       bool
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a grid for a number of generations and report statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			if metricsAddr != "" {
				stop := serveMetrics(metricsAddr)
				defer stop()
			}
			l, err := life.NewFromConfig(cfg, life.WithLogger(slog.Default()))
			if err != nil {
				return err
			}
			slog.Info("run started",
				slog.Int("width", l.Width()),
				slog.Int("height", l.Height()),
				slog.String("rule", l.Rule()),
				slog.String("border", l.BorderMode().String()),
				slog.Int64("seed", cfg.Seed),
				slog.Int("steps", cfg.Steps))
			if err := simulate(cmd.Context(), l, cfg.Steps, tps, every); err != nil {
				return err
			}
			out := view.NewPrinter(cmd.OutOrStdout(), color)
			if printGrid {
				if err := out.Grid(l); err != nil {
					return err
				}
			}
			return out.Stats(l.Statistics())
		},
	}
	flags.bind(cmd)
	fs := cmd.Flags()
	fs.IntVar(&tps, "tps", 0, "generations per second (0 runs flat out)")
	fs.IntVar(&every, "every", 0, "log statistics every N generations (0 disables)")
	fs.BoolVar(&printGrid, "print", false, "print the final grid")
	fs.BoolVar(&color, "color", true, "colorize console output")
	fs.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

// simulate steps l, optionally paced at tps and logging every n generations.
func simulate(ctx context.Context, l *life.Life, steps, tps, every int) error {
	var pace *core.FixedStep
	if tps > 0 {
		pace = core.NewFixedStep(tps)
	}
	for done := 0; done < steps; {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pace != nil && !pace.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		l.Step()
		done++
		if every > 0 && done%every == 0 {
			logStats(l.Statistics())
		}
	}
	return nil
}

func logStats(st life.Statistics) {
	slog.Info("generation",
		slog.Int("iteration", st.Iteration.OrElse(0)),
		slog.Int("alive", st.AliveAbs.OrElse(0)),
		slog.Float64("alive_rel", st.AliveRel.OrElse(0)),
		slog.String("tendency", st.TendencyAbs.String()),
		slog.String("trend", st.Trend.String()))
}

func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", slog.String("addr", addr), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()
	slog.Info("serving metrics", slog.String("addr", addr))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
