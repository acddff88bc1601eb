// Package sweep runs one engine configuration across many seeds in parallel.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/sims/life"
)

// Result is the outcome of one seed.
type Result struct {
	Seed      int64
	Steps     int
	Alive     int
	AliveRel  float64
	Trend     string
	Extinct   bool
	FirstDead int
}

func (r Result) String() string {
	extinct := "-"
	if r.Extinct {
		extinct = fmt.Sprintf("extinct@%d", r.FirstDead)
	}
	return fmt.Sprintf("seed=%d steps=%d alive=%d (%.2f%%) trend=%s %s",
		r.Seed, r.Steps, r.Alive, r.AliveRel*100, r.Trend, extinct)
}

// Run builds one engine per seed from base, steps it base.Steps times and
// returns the results sorted by seed. workers <= 0 uses every CPU. The first
// configuration error cancels the remaining seeds.
func Run(ctx context.Context, base life.Config, seeds []int64, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(seeds))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			cfg := base
			cfg.Seed = seed
			res, err := runOne(gCtx, cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Seed < results[b].Seed })
	return results, nil
}

func runOne(ctx context.Context, cfg life.Config) (Result, error) {
	l, err := life.NewFromConfig(cfg)
	if err != nil {
		return Result{}, err
	}
	res := Result{Seed: cfg.Seed}
	for i := 0; i < cfg.Steps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		l.Step()
		if l.Alive() == 0 && !res.Extinct {
			res.Extinct = true
			res.FirstDead = l.Iteration()
		}
	}
	st := l.Statistics()
	res.Steps = l.Iteration()
	res.Alive = l.Alive()
	res.AliveRel = st.AliveRel.OrElse(0)
	res.Trend = st.Trend.String()
	return res, nil
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}
