package life

import (
	"fmt"
	"log/slog"
	"time"

	"lifegrid/pkg/core"
)

// DefaultDensity is the live-cell probability used by Reset.
const DefaultDensity = 0.5

// Life is a life-like cellular automaton over a finite grid with a
// configurable rule and border mode.
//
// A Life is not safe for concurrent use; hosts that step and render from
// different goroutines must serialize access themselves.
type Life struct {
	grid   *Grid
	rule   Rule
	table  [32]uint8
	border BorderMode
	colors [2]Color

	iteration int
	alive     int
	history   populationHistory

	rng     *core.RNG
	density float64
	log     *slog.Logger
}

// Option customizes a Life at construction.
type Option func(*Life)

// WithLogger routes engine diagnostics to log.
func WithLogger(log *slog.Logger) Option {
	return func(l *Life) {
		if log != nil {
			l.log = log
		}
	}
}

// WithSeed seeds the generator used by Randomize and Reset.
func WithSeed(seed int64) Option {
	return func(l *Life) { l.rng = core.NewRNG(seed) }
}

// WithRule sets the initial rule. Invalid rules are ignored.
func WithRule(r Rule) Option {
	return func(l *Life) {
		if r.Valid() {
			l.setRule(r)
		}
	}
}

// WithBorderMode sets the initial border mode. Unknown modes are ignored.
func WithBorderMode(m BorderMode) Option {
	return func(l *Life) {
		if m.Valid() {
			l.border = m
		}
	}
}

// WithColors sets the render colors for dead and alive cells.
func WithColors(dead, alive Color) Option {
	return func(l *Life) { l.colors = [2]Color{dead, alive} }
}

// WithDensity sets the live-cell probability used by Reset.
func WithDensity(p float64) Option {
	return func(l *Life) { l.density = clampProbability(p) }
}

// New returns an engine with a w×h grid filled with def, the Conway rule and
// the ForeverDead border mode unless options say otherwise. Under ForeverDead
// the ring is dead regardless of def.
func New(w, h int, def State, opts ...Option) *Life {
	l := &Life{
		grid:    NewGrid(w, h, def),
		border:  ForeverDead,
		colors:  [2]Color{DefaultDeadColor, DefaultAliveColor},
		density: DefaultDensity,
		log:     slog.Default(),
	}
	l.setRule(ConwayRule)
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = core.NewRNG(time.Now().UnixNano())
	}
	l.afterBulkEdit()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.Width(), H: l.grid.Height()} }

// Width returns the number of columns.
func (l *Life) Width() int { return l.grid.Width() }

// Height returns the number of rows.
func (l *Life) Height() int { return l.grid.Height() }

// TotalCells returns Width*Height.
func (l *Life) TotalCells() int { return l.grid.Size() }

// State returns the cell at (x, y) without validating the coordinates.
func (l *Life) State(x, y int) State { return l.grid.Cell(x, y) }

// At returns the cell at (x, y), or ErrOutOfBounds.
func (l *Life) At(x, y int) (State, error) { return l.grid.At(x, y) }

// Rule returns the canonical rule string.
func (l *Life) Rule() string { return l.rule.String() }

// BorderMode returns the active border mode.
func (l *Life) BorderMode() BorderMode { return l.border }

// Color returns the render color of s.
func (l *Life) Color(s State) Color { return l.colors[s&1] }

// Iteration returns the number of generations since the last reset of the
// counter.
func (l *Life) Iteration() int { return l.iteration }

// Alive returns the maintained live-cell count.
func (l *Life) Alive() int { return l.alive }

// Density returns the live-cell probability used by Reset.
func (l *Life) Density() float64 { return l.density }

// Snapshot copies the current cells in row-major order.
func (l *Life) Snapshot() []State { return l.grid.Snapshot() }

// Resize recreates the grid with the given shape filled with def. A zero
// dimension collapses the grid to 0×0.
func (l *Life) Resize(w, h int, def State) {
	l.grid.Resize(w, h, def)
	l.afterBulkEdit()
	l.log.Debug("grid resized", slog.Int("width", l.grid.Width()), slog.Int("height", l.grid.Height()))
}

// SetRule parses and installs a new rule. On error the previous rule stays
// active and the iteration counter is untouched.
func (l *Life) SetRule(s string) error {
	r, err := ParseRule(s)
	if err != nil {
		return l.reject("rule", err)
	}
	l.setRule(r)
	l.resetIteration()
	l.log.Debug("rule changed", slog.String("rule", r.String()))
	return nil
}

func (l *Life) setRule(r Rule) {
	l.rule = r
	l.table = r.table()
}

// SetBorderMode installs a border mode, resets the iteration counter and, for
// the forever modes, repaints the ring.
func (l *Life) SetBorderMode(m BorderMode) error {
	if !m.Valid() {
		return l.reject("border", fmt.Errorf("%w: %d", ErrInvalidBorderMode, uint8(m)))
	}
	l.border = m
	if c, ok := m.Constant(); ok {
		l.grid.FillBorder(c)
		l.alive = l.grid.CountAlive()
	}
	l.resetIteration()
	l.log.Debug("border mode changed", slog.String("border", m.String()))
	return nil
}

// SetState changes a single cell. The iteration counter is kept and the live
// count is adjusted in place.
func (l *Life) SetState(x, y int, s State) error {
	prev, err := l.grid.At(x, y)
	if err != nil {
		return l.reject("bounds", err)
	}
	s &= 1
	l.grid.SetCell(x, y, s)
	l.alive += int(s) - int(prev)
	return nil
}

// Toggle flips a single cell.
func (l *Life) Toggle(x, y int) error {
	prev, err := l.grid.At(x, y)
	if err != nil {
		return l.reject("bounds", err)
	}
	return l.SetState(x, y, prev.Opposite())
}

// Fill sets every cell to s.
func (l *Life) Fill(s State) {
	l.grid.Fill(s & 1)
	l.afterBulkEdit()
}

// FillAlternately paints a checkerboard whose top-left cell is first.
func (l *Life) FillAlternately(first State) {
	l.grid.FillAlternately(first & 1)
	l.afterBulkEdit()
}

// Randomize makes each cell alive with probability p. p is clamped to [0, 1].
func (l *Life) Randomize(p float64) {
	l.grid.Randomize(l.rng.Source(), p)
	l.afterBulkEdit()
}

// Reset reseeds the generator and randomizes the grid at the configured
// density.
func (l *Life) Reset(seed int64) {
	l.rng.Reseed(seed)
	l.Randomize(l.density)
}

// SetDensity changes the probability used by Reset.
func (l *Life) SetDensity(p float64) { l.density = clampProbability(p) }

// SetFromPattern stamps a pattern centered on (cx, cy). The stamp must fit
// entirely inside the grid; on any error the grid is left untouched.
func (l *Life) SetFromPattern(pattern string, cx, cy int) error {
	p, err := ParsePattern(pattern)
	if err != nil {
		return l.reject("pattern", err)
	}
	if !p.fits(l.grid, cx, cy) {
		return l.reject("pattern", fmt.Errorf("%w: %dx%d stamp at (%d,%d) leaves the %dx%d grid",
			ErrInvalidPattern, p.W, p.H, cx, cy, l.grid.Width(), l.grid.Height()))
	}
	p.stamp(l.grid, cx, cy)
	l.afterBulkEdit()
	return nil
}

// SetFromPatternCentered stamps a pattern on the center of the grid.
func (l *Life) SetFromPatternCentered(pattern string) error {
	return l.SetFromPattern(pattern, l.grid.Width()/2, l.grid.Height()/2)
}

// SetSolidColor changes the render color of s.
func (l *Life) SetSolidColor(s State, c Color) { l.colors[s&1] = c }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	start := time.Now()
	l.alive = l.evolve()
	l.iteration++
	l.history.push(l.alive)
	stepsTotal.Inc()
	stepDuration.Observe(time.Since(start).Seconds())
}

// afterBulkEdit restores the ring constant, recounts and restarts the
// iteration counter after an edit that touched many cells.
func (l *Life) afterBulkEdit() {
	if c, ok := l.border.Constant(); ok {
		l.grid.FillBorder(c)
	}
	l.alive = l.grid.CountAlive()
	l.resetIteration()
}

func (l *Life) resetIteration() {
	l.iteration = 0
	l.history.reset(l.alive)
}

func (l *Life) reject(kind string, err error) error {
	rejectionsTotal.WithLabelValues(kind).Inc()
	l.log.Debug("operation rejected", slog.String("kind", kind), slog.String("error", err.Error()))
	return err
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		l, err := NewFromConfig(c)
		if err != nil {
			slog.Warn("life: falling back to an empty grid", slog.String("error", err.Error()))
			return New(c.Width, c.Height, Dead, WithSeed(c.Seed))
		}
		return l
	})
}
