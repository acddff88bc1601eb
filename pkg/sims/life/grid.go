package life

import (
	"fmt"
	"math"
	"math/rand/v2"

	"lifegrid/pkg/core"
)

// Grid stores a width×height field of cells in row-major order together with
// a scratch buffer of the same shape. The two buffers trade places on commit;
// their contents are never copied.
type Grid struct {
	w, h   int
	bufs   [2][]uint8
	active int
}

// NewGrid allocates a grid filled with s. Negative dimensions count as zero
// and a zero dimension collapses the grid to 0×0.
func NewGrid(w, h int, s State) *Grid {
	g := &Grid{}
	g.Resize(w, h, s)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.w * g.h }

func (g *Grid) index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// onBorder reports whether (x, y) lies on the outermost ring.
func (g *Grid) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.w-1 || y == g.h-1
}

// Cell returns the state at (x, y) without validating the coordinates.
// Callers on the hot path guarantee bounds; misuse panics on the slice access.
func (g *Grid) Cell(x, y int) State {
	return State(g.bufs[g.active][g.index(x, y)])
}

// SetCell writes the state at (x, y) without validating the coordinates.
func (g *Grid) SetCell(x, y int, s State) {
	g.bufs[g.active][g.index(x, y)] = uint8(s)
}

// At is the checked form of Cell.
func (g *Grid) At(x, y int) (State, error) {
	if !g.InBounds(x, y) {
		return Dead, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return g.Cell(x, y), nil
}

// SetAt is the checked form of SetCell; invalid coordinates leave the grid
// untouched.
func (g *Grid) SetAt(x, y int, s State) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	g.SetCell(x, y, s)
	return nil
}

// Fill sets every cell to s.
func (g *Grid) Fill(s State) {
	cur := g.bufs[g.active]
	v := uint8(s)
	for i := range cur {
		cur[i] = v
	}
}

// FillAlternately paints a checkerboard whose top-left cell is first.
func (g *Grid) FillAlternately(first State) {
	cur := g.bufs[g.active]
	a, b := uint8(first), uint8(first.Opposite())
	for y := 0; y < g.h; y++ {
		row := cur[y*g.w : (y+1)*g.w]
		for x := range row {
			if (x+y)&1 == 0 {
				row[x] = a
			} else {
				row[x] = b
			}
		}
	}
}

// Randomize sets each cell alive with probability p, clamped to [0, 1]. It
// returns the number of live cells written.
func (g *Grid) Randomize(r *rand.Rand, p float64) int {
	return core.FillBernoulli(r, g.bufs[g.active], clampProbability(p))
}

// Resize reallocates both buffers for the new shape and fills them with s.
// Only the low bit of s is kept.
func (g *Grid) Resize(w, h int, s State) {
	s &= 1
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}
	g.w, g.h = w, h
	g.bufs[0] = make([]uint8, w*h)
	g.bufs[1] = make([]uint8, w*h)
	g.active = 0
	g.Fill(s)
}

// FillBorder paints the outermost ring with s.
func (g *Grid) FillBorder(s State) {
	if g.w == 0 {
		return
	}
	cur := g.bufs[g.active]
	v := uint8(s)
	w, h := g.w, g.h
	top := cur[:w]
	bottom := cur[(h-1)*w:]
	for x := 0; x < w; x++ {
		top[x] = v
		bottom[x] = v
	}
	for y := 1; y < h-1; y++ {
		cur[y*w] = v
		cur[y*w+w-1] = v
	}
}

// CountAlive scans the grid. The engine only needs it after bulk edits; steps
// maintain the count incrementally.
func (g *Grid) CountAlive() int {
	n := 0
	for _, c := range g.bufs[g.active] {
		n += int(c)
	}
	return n
}

// Snapshot copies the current cells.
func (g *Grid) Snapshot() []State {
	out := make([]State, len(g.bufs[g.active]))
	for i, c := range g.bufs[g.active] {
		out[i] = State(c)
	}
	return out
}

func (g *Grid) cells() []uint8   { return g.bufs[g.active] }
func (g *Grid) scratch() []uint8 { return g.bufs[g.active^1] }

// swap publishes the scratch buffer as the current generation.
func (g *Grid) swap() { g.active ^= 1 }

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
