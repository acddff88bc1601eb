package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	u := Unknown[int]()
	assert.False(t, u.IsKnown())
	assert.Equal(t, 7, u.OrElse(7))
	assert.Equal(t, "unknown", u.String())

	k := Known(3)
	v, ok := k.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, "3", k.String())
}

func TestStatisticsSnapshot(t *testing.T) {
	l := New(4, 5, Dead, WithBorderMode(Mirror))
	require.NoError(t, l.SetState(1, 1, Alive))
	require.NoError(t, l.SetState(2, 1, Alive))

	st := l.Statistics()
	assert.Equal(t, "B3/S23", st.Rule.OrElse(""))
	assert.Equal(t, Mirror, st.Border.OrElse(AsIs))
	assert.Equal(t, 4, st.Width.OrElse(0))
	assert.Equal(t, 5, st.Height.OrElse(0))
	assert.Equal(t, 20, st.TotalCells.OrElse(0))
	assert.Equal(t, 0, st.Iteration.OrElse(-1))
	assert.Equal(t, 2, st.AliveAbs.OrElse(0))
	assert.Equal(t, 18, st.DeadAbs.OrElse(0))
	assert.InDelta(t, 0.1, st.AliveRel.OrElse(0), 1e-12)
	assert.InDelta(t, 0.9, st.DeadRel.OrElse(0), 1e-12)
	assert.False(t, st.Trend.IsKnown())
	assert.False(t, st.TendencyAbs.IsKnown())
	assert.False(t, st.TendencyRel.IsKnown())
}

func TestStatisticsEmptyGridHasNoRatios(t *testing.T) {
	l := New(0, 0, Dead, WithBorderMode(AsIs))
	st := l.Statistics()
	assert.Equal(t, 0, st.TotalCells.OrElse(-1))
	assert.False(t, st.AliveRel.IsKnown())
	assert.False(t, st.DeadRel.IsKnown())
}

func TestTrendNeedsFullWindow(t *testing.T) {
	l := New(7, 7, Dead, WithBorderMode(AsIs))
	require.NoError(t, l.SetFromPatternCentered("blinker"))

	for i := 0; i < TrendWindow-1; i++ {
		l.Step()
	}
	assert.False(t, l.Statistics().Trend.IsKnown())

	l.Step()
	st := l.Statistics()
	require.True(t, st.Trend.IsKnown())
	assert.Equal(t, "=-", st.Trend.String())
	assert.Equal(t, 0, st.TendencyAbs.OrElse(-1))
	assert.InDelta(t, 0.0, st.TendencyRel.OrElse(-1), 1e-12)
}

func TestBulkEditRestartsTrend(t *testing.T) {
	l := New(7, 7, Dead, WithBorderMode(AsIs))
	for i := 0; i < TrendWindow+2; i++ {
		l.Step()
	}
	require.True(t, l.Statistics().Trend.IsKnown())

	l.Fill(Alive)
	assert.False(t, l.Statistics().Trend.IsKnown())
	assert.Equal(t, 0, l.Iteration())
}

func TestPopulationHistoryTrend(t *testing.T) {
	var h populationHistory
	h.reset(0)
	for i := 1; i <= TrendWindow; i++ {
		h.push(i)
	}
	delta, trend, ok := h.trend(TrendWindow, 100)
	require.True(t, ok)
	assert.Equal(t, TrendWindow, delta)
	assert.Equal(t, Trend{Direction: '+', Stability: '-'}, trend)

	h.reset(0)
	for i := 1; i <= TrendWindow; i++ {
		h.push((i % 2) * 10)
	}
	delta, trend, ok = h.trend(0, 100)
	require.True(t, ok)
	assert.Equal(t, 0, delta)
	assert.Equal(t, "=W", trend.String())

	h.reset(50)
	for i := 1; i <= TrendWindow+5; i++ {
		h.push(50 - i)
	}
	delta, trend, ok = h.trend(35, 1000)
	require.True(t, ok)
	assert.Equal(t, -10, delta)
	assert.Equal(t, byte('-'), trend.Direction)
}

func TestStabilityGrades(t *testing.T) {
	assert.Equal(t, byte('-'), stabilityFor(0, 1000))
	assert.Equal(t, byte('~'), stabilityFor(5, 1000))
	assert.Equal(t, byte('w'), stabilityFor(20, 1000))
	assert.Equal(t, byte('W'), stabilityFor(60, 1000))
	assert.Equal(t, byte('-'), stabilityFor(60, 0))
}
