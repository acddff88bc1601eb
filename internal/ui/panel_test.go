package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"
)

func TestControlsFollowEngine(t *testing.T) {
	l := life.New(6, 6, life.Dead, life.WithBorderMode(life.Mirror))
	controls := newControls(l.ParameterControls())
	require.Len(t, controls, 2)
	border, density := &controls[0], &controls[1]
	for i := range controls {
		controls[i].sync(l.Parameters())
	}

	assert.Equal(t, "mirror", border.text())
	_, ok := border.target(1)
	assert.False(t, ok, "mirror is the last mode")
	v, ok := border.target(-1)
	require.True(t, ok)
	require.True(t, border.apply(v, l, l))
	assert.Equal(t, life.Warp, l.BorderMode())
	assert.Equal(t, "warp", border.text())

	assert.Equal(t, "0.50", density.text())
	v, ok = density.target(1)
	require.True(t, ok)
	require.True(t, density.apply(v, l, l))
	assert.InDelta(t, 0.55, l.Density(), 1e-9)
}

func TestControlTargetClamps(t *testing.T) {
	c := control{
		spec:  core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 1, HasMin: true, HasMax: true},
		value: 0.9,
		known: true,
	}
	v, ok := c.target(1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	c.value = 1
	_, ok = c.target(1)
	assert.False(t, ok)

	c.known = false
	_, ok = c.target(-1)
	assert.False(t, ok)
	assert.Equal(t, "--", c.text())
}

func TestReadoutsPresentStatistics(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Population",
		Params: []core.Parameter{
			{Key: "border", Label: "Border", Value: "3"},
			{Key: "alive", Label: "Alive", Value: "12"},
			{Key: "tendency", Label: "Tendency", Value: "4"},
			{Key: "trend", Label: "Trend", Value: "-w"},
			{Key: "alive_rel", Label: "Alive %", Value: "unknown"},
		},
	}}}

	got := readouts(snap, map[string]bool{"border": true})

	assert.Equal(t, []readout{
		{text: "Population", tone: toneHeader},
		{text: "Alive: 12", tone: toneNormal},
		{text: "Tendency: +4", tone: toneRising},
		{text: "Trend: shrinking, unstable", tone: toneFalling},
		{text: "Alive %: --", tone: toneMuted},
	}, got)
}

func TestDescribeTrend(t *testing.T) {
	for in, want := range map[string]string{
		"+-": "growing, stable",
		"=~": "flat, mild",
		"-W": "shrinking, chaotic",
		"?x": "?x",
		"+":  "+",
	} {
		got, _ := describeTrend(in)
		assert.Equal(t, want, got, in)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Life Controls", title(life.New(1, 1, life.Dead)))
	assert.Equal(t, "Controls", title(nil))
}
