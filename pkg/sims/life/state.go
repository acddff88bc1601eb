package life

import (
	"fmt"
	"strconv"
	"strings"
)

// State is the value of a single cell.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

// String returns "dead" or "alive".
func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Opposite returns the other state.
func (s State) Opposite() State {
	if s == Alive {
		return Dead
	}
	return Alive
}

// BorderMode selects how the outermost ring of the grid is evolved and how
// neighbors outside the grid are resolved.
type BorderMode uint8

const (
	// AsIs leaves the ring untouched: it keeps whatever it held.
	AsIs BorderMode = iota
	// ForeverDead pins every ring cell to Dead.
	ForeverDead
	// ForeverAlive pins every ring cell to Alive.
	ForeverAlive
	// Warp evaluates the ring on a torus: off-grid reads wrap to the
	// opposite edge.
	Warp
	// Mirror evaluates the ring and reflects off-grid reads back across the
	// edge cell.
	Mirror

	borderModeCount
)

var borderModeNames = [borderModeCount]string{
	AsIs:         "as-is",
	ForeverDead:  "forever-dead",
	ForeverAlive: "forever-alive",
	Warp:         "warp",
	Mirror:       "mirror",
}

// BorderModes lists every supported mode in declaration order.
func BorderModes() []BorderMode {
	return []BorderMode{AsIs, ForeverDead, ForeverAlive, Warp, Mirror}
}

// Valid reports whether m is one of the declared modes.
func (m BorderMode) Valid() bool { return m < borderModeCount }

func (m BorderMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BorderMode(%d)", uint8(m))
	}
	return borderModeNames[m]
}

// Next returns the mode after m in declaration order, wrapping around.
func (m BorderMode) Next() BorderMode { return (m + 1) % borderModeCount }

// Evolves reports whether ring cells are evaluated by the rule.
func (m BorderMode) Evolves() bool { return m == Warp || m == Mirror }

// Constant returns the value pinned on the ring for the two "forever" modes.
func (m BorderMode) Constant() (State, bool) {
	switch m {
	case ForeverDead:
		return Dead, true
	case ForeverAlive:
		return Alive, true
	}
	return Dead, false
}

// ParseBorderMode accepts the names returned by String, case-insensitively;
// underscores and spaces are treated as dashes, and "asis" is accepted too.
func ParseBorderMode(s string) (BorderMode, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	if norm == "asis" {
		norm = "as-is"
	}
	for i, name := range borderModeNames {
		if name == norm {
			return BorderMode(i), nil
		}
	}
	return AsIs, fmt.Errorf("%w: %q", ErrInvalidBorderMode, s)
}

// Color is an opaque RGB color used when rendering a state.
type Color struct {
	R, G, B uint8
}

// ARGB packs the color with a fully opaque alpha channel.
func (c Color) ARGB() uint32 {
	return 0xFF<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor accepts #rrggbb or rrggbb.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

var (
	// DefaultDeadColor renders dead cells black.
	DefaultDeadColor = Color{}
	// DefaultAliveColor renders live cells white.
	DefaultAliveColor = Color{R: 255, G: 255, B: 255}
)
