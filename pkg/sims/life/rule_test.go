package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleCanonicalForm(t *testing.T) {
	cases := map[string]string{
		"B3/S23":    "B3/S23",
		"b3/s23":    "B3/S23",
		"B3/S32":    "B3/S23",
		"B36/S23":   "B36/S23",
		"B33/S2":    "B3/S2",
		"B0/S8":     "B0/S8",
		"B63/s3322": "B36/S23",
		"B8765/S0":  "B5678/S0",
	}
	for in, want := range cases {
		r, err := ParseRule(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, r.String(), in)
		assert.True(t, r.Valid(), in)

		again, err := ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, again, "canonical form of %q parses back", in)
	}
}

func TestParseRuleRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"3/23",
		"S23/B3",
		"B3",
		"B3/",
		"B3/23",
		"B/S23",
		"B3/S",
		"B9/S23",
		"B3/S29",
		"B3/S23x",
		"B3 /S23",
		"B3/S2/S3",
		"B-3/S23",
	} {
		_, err := ParseRule(in)
		require.ErrorIs(t, err, ErrInvalidRule, "%q", in)
	}
}

func TestRuleNextAndTableAgree(t *testing.T) {
	r := MustParseRule("B36/S23")
	table := r.table()
	for n := 0; n <= 8; n++ {
		for _, s := range []State{Dead, Alive} {
			assert.Equal(t, r.Next(s, n), State(table[uint8(s)<<4|uint8(n)]), "state %s n=%d", s, n)
		}
	}
	assert.Equal(t, Alive, r.Next(Dead, 3))
	assert.Equal(t, Alive, r.Next(Dead, 6))
	assert.Equal(t, Dead, r.Next(Dead, 2))
	assert.Equal(t, Alive, r.Next(Alive, 2))
	assert.Equal(t, Dead, r.Next(Alive, 4))
}

func TestRuleValid(t *testing.T) {
	assert.True(t, ConwayRule.Valid())
	assert.False(t, Rule{}.Valid())
	assert.False(t, Rule{Birth: 1 << 3}.Valid())
	assert.False(t, Rule{Birth: 1 << 9, Survive: 1}.Valid())
}

func TestMustParseRulePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseRule("nope") })
}
