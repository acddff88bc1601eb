package life

import (
	"fmt"
	"math"
)

// TrendWindow is how many iterations back the trend compares against.
const TrendWindow = 10

// Optional holds a value that may be unknown.
type Optional[T any] struct {
	value T
	known bool
}

// Known wraps v as a known value.
func Known[T any](v T) Optional[T] { return Optional[T]{value: v, known: true} }

// Unknown returns an Optional without a value.
func Unknown[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is known.
func (o Optional[T]) Get() (T, bool) { return o.value, o.known }

// IsKnown reports whether the value is available.
func (o Optional[T]) IsKnown() bool { return o.known }

// OrElse returns the value, or def when unknown.
func (o Optional[T]) OrElse(def T) T {
	if !o.known {
		return def
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.known {
		return "unknown"
	}
	return fmt.Sprint(o.value)
}

// Trend summarizes how the population moved over the last TrendWindow
// iterations. Direction is '+', '-' or '='; Stability is one of '-' (stable),
// '~' (mild), 'w' (unstable) and 'W' (highly unstable).
type Trend struct {
	Direction byte
	Stability byte
}

func (t Trend) String() string { return string([]byte{t.Direction, t.Stability}) }

// Stability thresholds on the standard deviation of per-iteration population
// deltas, relative to the number of cells.
const (
	stableBelow   = 0.001
	mildBelow     = 0.01
	unstableBelow = 0.05
)

func stabilityFor(stddev float64, cells int) byte {
	if cells <= 0 {
		return '-'
	}
	rel := stddev / float64(cells)
	switch {
	case rel < stableBelow:
		return '-'
	case rel < mildBelow:
		return '~'
	case rel < unstableBelow:
		return 'w'
	}
	return 'W'
}

// Statistics is a read-only snapshot of the engine configuration and run
// state. Fields whose inputs are not available are Unknown.
type Statistics struct {
	Rule       Optional[string]
	Border     Optional[BorderMode]
	Width      Optional[int]
	Height     Optional[int]
	TotalCells Optional[int]
	Iteration  Optional[int]

	DeadAbs  Optional[int]
	AliveAbs Optional[int]
	DeadRel  Optional[float64]
	AliveRel Optional[float64]

	TendencyAbs Optional[int]
	TendencyRel Optional[float64]
	Trend       Optional[Trend]
}

// populationHistory keeps the live-cell counts of the last TrendWindow+1
// generations, oldest first once full.
type populationHistory struct {
	vals [TrendWindow + 1]int
	head int
	n    int
}

func (p *populationHistory) reset(alive int) {
	p.head, p.n = 0, 0
	p.push(alive)
}

func (p *populationHistory) push(alive int) {
	p.vals[p.head] = alive
	p.head = (p.head + 1) % len(p.vals)
	if p.n < len(p.vals) {
		p.n++
	}
}

func (p *populationHistory) full() bool { return p.n == len(p.vals) }

// at returns the i-th oldest retained value.
func (p *populationHistory) at(i int) int {
	start := (p.head - p.n + len(p.vals)) % len(p.vals)
	return p.vals[(start+i)%len(p.vals)]
}

// trend compares alive against the count TrendWindow generations ago and
// grades the spread of the per-generation deltas in between.
func (p *populationHistory) trend(alive, cells int) (int, Trend, bool) {
	if !p.full() {
		return 0, Trend{}, false
	}
	delta := alive - p.at(0)
	dir := byte('=')
	switch {
	case delta > 0:
		dir = '+'
	case delta < 0:
		dir = '-'
	}

	var sum, sumSq float64
	for i := 1; i < p.n; i++ {
		d := float64(p.at(i) - p.at(i-1))
		sum += d
		sumSq += d * d
	}
	k := float64(p.n - 1)
	mean := sum / k
	variance := math.Max(sumSq/k-mean*mean, 0)
	return delta, Trend{Direction: dir, Stability: stabilityFor(math.Sqrt(variance), cells)}, true
}

// Statistics assembles the current snapshot from the maintained counters; it
// never rescans the grid.
func (l *Life) Statistics() Statistics {
	cells := l.grid.Size()
	st := Statistics{
		Rule:       Known(l.rule.String()),
		Border:     Known(l.border),
		Width:      Known(l.grid.Width()),
		Height:     Known(l.grid.Height()),
		TotalCells: Known(cells),
		Iteration:  Known(l.iteration),
		AliveAbs:   Known(l.alive),
		DeadAbs:    Known(cells - l.alive),
	}
	if cells > 0 {
		st.AliveRel = Known(float64(l.alive) / float64(cells))
		st.DeadRel = Known(float64(cells-l.alive) / float64(cells))
	}
	if delta, trend, ok := l.history.trend(l.alive, cells); ok {
		st.TendencyAbs = Known(delta)
		st.Trend = Known(trend)
		if cells > 0 {
			st.TendencyRel = Known(float64(delta) / float64(cells))
		}
	}
	return st
}
