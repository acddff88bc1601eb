package life

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersExposeWorldAndPopulation(t *testing.T) {
	l := New(10, 6, Dead, WithBorderMode(Warp))
	require.NoError(t, l.SetState(1, 1, Alive))

	snap := l.Parameters()
	p, ok := snap.Lookup("rule")
	require.True(t, ok)
	assert.Equal(t, "B3/S23", p.Value)

	p, ok = snap.Lookup("border")
	require.True(t, ok)
	assert.Equal(t, "3", p.Value)

	p, ok = snap.Lookup("alive")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)

	p, ok = snap.Lookup("trend")
	require.True(t, ok)
	assert.Equal(t, "unknown", p.Value)
}

func TestParameterControlsListBorderChoices(t *testing.T) {
	l := New(4, 4, Dead, WithBorderMode(AsIs))
	controls := l.ParameterControls()
	require.Len(t, controls, 2)
	assert.Equal(t, "border", controls[0].Key)
	assert.Equal(t, []string{"as-is", "forever-dead", "forever-alive", "warp", "mirror"}, controls[0].Choices)
	assert.Equal(t, "density", controls[1].Key)
}

func TestSetIntParameterBorder(t *testing.T) {
	l := New(6, 6, Dead, WithBorderMode(AsIs))
	assert.True(t, l.SetIntParameter("border", int(ForeverAlive)))
	assert.Equal(t, ForeverAlive, l.BorderMode())
	assertRing(t, l, Alive)

	assert.False(t, l.SetIntParameter("border", 99))
	assert.False(t, l.SetIntParameter("w", 3))
	assert.Equal(t, ForeverAlive, l.BorderMode())
}

func TestSetFloatParameterDensityClamps(t *testing.T) {
	l := New(6, 6, Dead, WithBorderMode(AsIs))
	assert.True(t, l.SetFloatParameter("density", 1.7))
	assert.Equal(t, 1.0, l.Density())
	assert.True(t, l.SetFloatParameter("density", 0.3))
	assert.Equal(t, 0.3, l.Density())
	assert.False(t, l.SetFloatParameter("speed", 1))
}

func TestRejectionsAreCounted(t *testing.T) {
	l := New(3, 3, Dead, WithBorderMode(AsIs))
	before := testutil.ToFloat64(rejectionsTotal.WithLabelValues("rule"))
	require.Error(t, l.SetRule("B/S"))
	assert.Equal(t, before+1, testutil.ToFloat64(rejectionsTotal.WithLabelValues("rule")))

	steps := testutil.ToFloat64(stepsTotal)
	l.Step()
	assert.Equal(t, steps+1, testutil.ToFloat64(stepsTotal))
}
