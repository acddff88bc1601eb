package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillBernoulliExtremes(t *testing.T) {
	rng := NewRNG(1)
	buf := []uint8{1, 0, 1, 1}

	assert.Equal(t, 0, FillBernoulli(rng.Source(), buf, 0))
	assert.Equal(t, []uint8{0, 0, 0, 0}, buf)
	assert.Equal(t, 4, FillBernoulli(rng.Source(), buf, 1))
	assert.Equal(t, []uint8{1, 1, 1, 1}, buf)
}

func TestReseedRepeatsStream(t *testing.T) {
	rng := NewRNG(7)
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	na := FillBernoulli(rng.Source(), a, 0.5)
	rng.Reseed(7)
	nb := FillBernoulli(rng.Source(), b, 0.5)

	assert.Equal(t, a, b)
	assert.Equal(t, na, nb)
}

type stubSim struct{ name string }

func (s stubSim) Name() string              { return s.name }
func (s stubSim) Size() Size                { return Size{W: 2, H: 3} }
func (s stubSim) Reset(int64)               {}
func (s stubSim) Step()                     {}
func (s stubSim) Render(dst []uint32) error { return nil }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("zz-stub", nil)
	assert.NotContains(t, Names(), "")
	assert.NotContains(t, Names(), "zz-stub")

	Register("zz-stub", func(map[string]string) Sim { return stubSim{name: "zz-stub"} })
	assert.Contains(t, Names(), "zz-stub")
	sim := Sims()["zz-stub"](nil)
	assert.Equal(t, 6, sim.Size().Cells())
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, "2", p.Value)
	_, ok = snap.Lookup("z")
	assert.False(t, ok)
}
