package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("[3x2]010111")
	require.NoError(t, err)
	assert.Equal(t, 3, p.W)
	assert.Equal(t, 2, p.H)
	assert.Equal(t, []State{Dead, Alive, Dead, Alive, Alive, Alive}, p.Cells)
	assert.Equal(t, "[3x2]010111", p.String())

	named, err := ParsePattern("GLIDER")
	require.NoError(t, err)
	assert.Equal(t, Patterns["glider"], named.String())
}

func TestParsePatternRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"3x3]010001111",
		"[3x3010001111",
		"[3x3]0100011",
		"[3x3]0100011110",
		"[0x1]",
		"[3x-1]111",
		"[axb]1",
		"[3]111",
		"[3x1]1a1",
		"[3x1] 111",
		"[3x1]11 ",
		"[4294967296x4294967296]",
		"[4294967296x1]1",
		"[1x4294967296]1",
	} {
		_, err := ParsePattern(in)
		require.ErrorIs(t, err, ErrInvalidPattern, "%q", in)
	}
}

func TestPresetPatternsParse(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := ParsePattern(Patterns[name])
		require.NoError(t, err, name)
		assert.Len(t, p.Cells, p.W*p.H, name)
	}
	assert.IsIncreasing(t, PatternNames())
}

func TestSetFromPatternCentersStamp(t *testing.T) {
	l := New(5, 5, Dead, WithBorderMode(AsIs))
	require.NoError(t, l.SetFromPattern("blinker", 2, 2))
	assert.Equal(t, Alive, l.State(1, 2))
	assert.Equal(t, Alive, l.State(2, 2))
	assert.Equal(t, Alive, l.State(3, 2))
	assert.Equal(t, 3, l.Alive())

	l.Fill(Dead)
	require.NoError(t, l.SetFromPattern("block", 2, 2))
	assert.Equal(t, Alive, l.State(1, 1))
	assert.Equal(t, Alive, l.State(2, 2))
	assert.Equal(t, Dead, l.State(3, 3))
}

func TestSetFromPatternCopiesZeros(t *testing.T) {
	l := New(5, 5, Alive, WithBorderMode(AsIs))
	require.NoError(t, l.SetFromPattern("[3x1]010", 2, 2))
	assert.Equal(t, Dead, l.State(1, 2))
	assert.Equal(t, Alive, l.State(2, 2))
	assert.Equal(t, Dead, l.State(3, 2))
	assert.Equal(t, 23, l.Alive())
}

func TestSetFromPatternRejectsWithoutMutation(t *testing.T) {
	l := New(6, 6, Dead, WithSeed(4), WithBorderMode(AsIs))
	l.Randomize(0.5)
	l.Step()
	before := l.Snapshot()
	iteration := l.Iteration()

	for _, tc := range []struct {
		pattern string
		cx, cy  int
	}{
		{"glider", 0, 3},
		{"glider", 3, 5},
		{"lwss", 5, 5},
		{"[7x1]1111111", 3, 3},
		{"[2x2]11", 3, 3},
	} {
		err := l.SetFromPattern(tc.pattern, tc.cx, tc.cy)
		require.ErrorIs(t, err, ErrInvalidPattern, "%s at (%d,%d)", tc.pattern, tc.cx, tc.cy)
	}
	assert.Equal(t, before, l.Snapshot())
	assert.Equal(t, iteration, l.Iteration())
}

func TestSetFromPatternCentered(t *testing.T) {
	l := New(9, 9, Dead, WithBorderMode(AsIs))
	require.NoError(t, l.SetFromPatternCentered("[1x1]1"))
	assert.Equal(t, Alive, l.State(4, 4))
	assert.Equal(t, 1, l.Alive())
	assert.Equal(t, 0, l.Iteration())
}
