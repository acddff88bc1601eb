package analysis

import (
	"fmt"

	"lifegrid/pkg/sims/life"
)

// Mismatch locates the first cell where the engine and the FFT reference
// disagree.
type Mismatch struct {
	Generation int
	X, Y       int
	Engine     life.State
	Reference  life.State
}

func (m Mismatch) String() string {
	return fmt.Sprintf("generation %d: cell (%d,%d) engine=%s reference=%s",
		m.Generation, m.X, m.Y, m.Engine, m.Reference)
}

// Report summarizes a verification run.
type Report struct {
	Steps       int
	NeighborSum int
	Mismatch    *Mismatch
}

// OK reports whether every generation matched.
func (r Report) OK() bool { return r.Mismatch == nil }

// Verify steps l the given number of times and compares each generation with
// the FFT reference. l must use the Warp border mode since the reference
// wraps at every edge. Verification stops at the first mismatch.
func Verify(l *life.Life, steps int) (Report, error) {
	if l.BorderMode() != life.Warp {
		return Report{}, fmt.Errorf("analysis: verify needs %s borders, engine uses %s", life.Warp, l.BorderMode())
	}
	w, h := l.Width(), l.Height()
	conv, err := NewConvolver(w, h)
	if err != nil {
		return Report{}, err
	}
	rule, err := life.ParseRule(l.Rule())
	if err != nil {
		return Report{}, err
	}

	var rep Report
	counts := make([]int, w*h)
	cells := l.Snapshot()
	if err := conv.NeighborCounts(cells, counts); err != nil {
		return Report{}, err
	}
	for _, n := range counts {
		rep.NeighborSum += n
	}

	for gen := 1; gen <= steps; gen++ {
		want, err := conv.Step(rule, cells)
		if err != nil {
			return rep, err
		}
		l.Step()
		got := l.Snapshot()
		rep.Steps = gen
		for i := range want {
			if want[i] != got[i] {
				rep.Mismatch = &Mismatch{Generation: gen, X: i % w, Y: i / w, Engine: got[i], Reference: want[i]}
				return rep, nil
			}
		}
		cells = got
	}
	return rep, nil
}
