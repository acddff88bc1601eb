package life

import (
	"os"
	"path/filepath"
	"testing"

	"lifegrid/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "-4",
		"h":       "x",
		"rule":    "B3/S99",
		"border":  "spiral",
		"density": "1.5",
		"pattern": "[2x2]1",
		"seed":    "abc",
	})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestFromMapAppliesValidValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "32",
		"h":       "16",
		"rule":    "b36/s23",
		"border":  "Mirror",
		"density": "0.25",
		"pattern": "glider",
		"seed":    "-9",
	})
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, 16, c.Height)
	assert.Equal(t, "B36/S23", c.Rule)
	assert.Equal(t, "mirror", c.Border)
	assert.Equal(t, 0.25, c.Density)
	assert.Equal(t, "glider", c.Pattern)
	assert.Equal(t, int64(-9), c.Seed)
}

func TestParseConfigYAML(t *testing.T) {
	c, err := ParseConfig([]byte(`
width: 20
height: 10
rule: B36/S23
border: forever-alive
seed: 5
pattern: "[3x1]111"
colors:
  alive: "#00ff00"
steps: 12
`))
	require.NoError(t, err)
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, 10, c.Height)
	assert.Equal(t, DefaultDensity, c.Density)
	assert.Equal(t, "#00ff00", c.Colors.Alive)
	assert.Equal(t, DefaultDeadColor.Hex(), c.Colors.Dead)
	assert.Equal(t, 12, c.Steps)

	l, err := NewFromConfig(c)
	require.NoError(t, err)
	assert.Equal(t, ForeverAlive, l.BorderMode())
	assert.Equal(t, "B36/S23", l.Rule())
	assert.Equal(t, Color{G: 255}, l.Color(Alive))
	assert.Equal(t, ringSize(20, 10)+3, l.Alive())
}

func TestParseConfigRejects(t *testing.T) {
	for _, doc := range []string{
		"width: [",
		"rule: B3",
		"border: spiral",
		"density: 2",
		"pattern: \"[1x1]2\"",
		"colors: {alive: red}",
		"steps: -1",
		"width: -5",
	} {
		_, err := ParseConfig([]byte(doc))
		assert.Error(t, err, doc)
	}
	_, err := ParseConfig([]byte("rule: B3"))
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestLoadConfigRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Width, want.Height = 40, 30
	want.Border = Mirror.String()
	b, err := want.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o600))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewFromConfigRandomizesWithoutPattern(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 16, 16
	c.Border = AsIs.String()
	c.Density = 1

	l, err := NewFromConfig(c)
	require.NoError(t, err)
	assert.Equal(t, 256, l.Alive())
}

func TestNewFromConfigPatternTooLarge(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height = 2, 2
	c.Pattern = "lwss"
	_, err := NewFromConfig(c)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	require.True(t, ok)
	assert.Contains(t, core.Names(), "life")

	sim := factory(map[string]string{"w": "12", "h": "8", "seed": "3"})
	assert.Equal(t, "life", sim.Name())
	assert.Equal(t, core.Size{W: 12, H: 8}, sim.Size())

	dst := make([]uint32, sim.Size().Cells())
	require.NoError(t, sim.Render(dst))
	sim.Step()
	sim.Reset(3)
}
