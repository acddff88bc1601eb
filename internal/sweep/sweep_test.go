package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/pkg/sims/life"
)

func baseConfig() life.Config {
	c := life.DefaultConfig()
	c.Width, c.Height = 24, 24
	c.Steps = 20
	return c
}

func TestRunMatchesSequentialEngines(t *testing.T) {
	cfg := baseConfig()
	seeds := []int64{9, 3, 5, 1}

	results, err := Run(context.Background(), cfg, seeds, 2)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, want := range []int64{1, 3, 5, 9} {
		assert.Equal(t, want, results[i].Seed)

		c := cfg
		c.Seed = want
		l, err := life.NewFromConfig(c)
		require.NoError(t, err)
		for s := 0; s < c.Steps; s++ {
			l.Step()
		}
		assert.Equal(t, l.Alive(), results[i].Alive, "seed %d", want)
		assert.Equal(t, c.Steps, results[i].Steps)
	}
}

func TestRunDetectsExtinction(t *testing.T) {
	cfg := baseConfig()
	cfg.Pattern = "[1x1]1"
	cfg.Steps = 3

	results, err := Run(context.Background(), cfg, Seeds(0, 2), 0)
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Extinct)
		assert.Equal(t, 1, r.FirstDead)
		assert.Contains(t, r.String(), "extinct@1")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.Rule = "nope"
	_, err := Run(context.Background(), cfg, Seeds(0, 3), 1)
	assert.ErrorIs(t, err, life.ErrInvalidRule)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, baseConfig(), Seeds(0, 4), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []int64{5, 6, 7}, Seeds(5, 3))
	assert.Empty(t, Seeds(5, 0))
}
