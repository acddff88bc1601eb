package life

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Pattern is a rectangular stamp of cells.
type Pattern struct {
	W, H  int
	Cells []State
}

// Patterns holds well-known stamps by name in the textual form accepted by
// ParsePattern.
var Patterns = map[string]string{
	"block":       "[2x2]1111",
	"blinker":     "[3x1]111",
	"glider":      "[3x3]010001111",
	"lwss":        "[5x4]01001100001000111110",
	"r-pentomino": "[3x3]011110010",
	"beacon":      "[4x4]1100110000110011",
}

// PatternNames lists the keys of Patterns in lexical order.
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsePattern parses "[WxH]" followed by exactly W*H '0'/'1' digits in
// row-major order. A name from Patterns is accepted in place of the literal.
func ParsePattern(s string) (Pattern, error) {
	if lit, ok := Patterns[strings.ToLower(s)]; ok {
		s = lit
	}
	if !strings.HasPrefix(s, "[") {
		return Pattern{}, fmt.Errorf("%w %q: must start with [WxH]", ErrInvalidPattern, s)
	}
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return Pattern{}, fmt.Errorf("%w %q: missing ']'", ErrInvalidPattern, s)
	}
	dims := strings.SplitN(s[1:end], "x", 2)
	if len(dims) != 2 {
		return Pattern{}, fmt.Errorf("%w %q: size must be WxH", ErrInvalidPattern, s)
	}
	w, errW := strconv.Atoi(dims[0])
	h, errH := strconv.Atoi(dims[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Pattern{}, fmt.Errorf("%w %q: bad size %q", ErrInvalidPattern, s, s[1:end])
	}
	body := s[end+1:]
	if w > len(body) || h > len(body) || len(body) != w*h {
		return Pattern{}, fmt.Errorf("%w %q: want %d cells, got %d", ErrInvalidPattern, s, w*h, len(body))
	}
	p := Pattern{W: w, H: h, Cells: make([]State, w*h)}
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '0':
		case '1':
			p.Cells[i] = Alive
		default:
			return Pattern{}, fmt.Errorf("%w %q: unexpected %q", ErrInvalidPattern, s, body[i])
		}
	}
	return p, nil
}

// String renders the pattern back to its textual form.
func (p Pattern) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%dx%d]", p.W, p.H)
	for _, c := range p.Cells {
		b.WriteByte('0' + byte(c))
	}
	return b.String()
}

// origin returns the top-left grid coordinate when the stamp is centered on
// (cx, cy).
func (p Pattern) origin(cx, cy int) (int, int) {
	return cx - p.W/2, cy - p.H/2
}

// fits reports whether the stamp centered on (cx, cy) lies fully inside g.
func (p Pattern) fits(g *Grid, cx, cy int) bool {
	x0, y0 := p.origin(cx, cy)
	return g.InBounds(x0, y0) && g.InBounds(x0+p.W-1, y0+p.H-1)
}

// stamp copies the pattern onto g; callers check fits first.
func (p Pattern) stamp(g *Grid, cx, cy int) {
	x0, y0 := p.origin(cx, cy)
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			g.SetCell(x0+x, y0+y, p.Cells[y*p.W+x])
		}
	}
}
