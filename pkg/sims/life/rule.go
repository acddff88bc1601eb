package life

import (
	"fmt"
	"strings"
)

// Rule is a parsed life-like rule. Bit n of Birth is set when a dead cell with
// n live neighbors is born; bit n of Survive when a live cell with n live
// neighbors stays alive.
type Rule struct {
	Birth   uint16
	Survive uint16
}

const ruleMask = 1<<9 - 1

// ConwayRule is B3/S23.
var ConwayRule = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// ParseRule parses "B<digits>/S<digits>" with case-insensitive letters and
// digits 0-8. Repeated digits are accepted once; both sets must be non-empty.
func ParseRule(s string) (Rule, error) {
	if len(s) == 0 || (s[0] != 'B' && s[0] != 'b') {
		return Rule{}, fmt.Errorf("%w %q: must start with B", ErrInvalidRule, s)
	}
	var r Rule
	survive := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '8':
			if survive {
				r.Survive |= 1 << (c - '0')
			} else {
				r.Birth |= 1 << (c - '0')
			}
		case c == '/' && !survive:
			if i+1 >= len(s) || (s[i+1] != 'S' && s[i+1] != 's') {
				return Rule{}, fmt.Errorf("%w %q: '/' must be followed by S", ErrInvalidRule, s)
			}
			survive = true
			i++
		default:
			return Rule{}, fmt.Errorf("%w %q: unexpected %q at %d", ErrInvalidRule, s, c, i)
		}
	}
	switch {
	case !survive:
		return Rule{}, fmt.Errorf("%w %q: missing /S section", ErrInvalidRule, s)
	case r.Birth == 0:
		return Rule{}, fmt.Errorf("%w %q: empty birth set", ErrInvalidRule, s)
	case r.Survive == 0:
		return Rule{}, fmt.Errorf("%w %q: empty survival set", ErrInvalidRule, s)
	}
	return r, nil
}

// MustParseRule is ParseRule for package-level presets; it panics on error.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Valid reports whether both sets are non-empty and only use counts 0-8.
func (r Rule) Valid() bool {
	return r.Birth != 0 && r.Survive != 0 && r.Birth&^ruleMask == 0 && r.Survive&^ruleMask == 0
}

// Next returns the state of a cell in the following generation.
func (r Rule) Next(current State, neighbors int) State {
	mask := r.Birth
	if current == Alive {
		mask = r.Survive
	}
	return State(mask >> uint(neighbors) & 1)
}

// String returns the canonical form: upper-case letters, ascending digits.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeDigits(&b, r.Birth)
	b.WriteString("/S")
	writeDigits(&b, r.Survive)
	return b.String()
}

func writeDigits(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

// table expands the rule into a lookup indexed by state<<4 | neighbors, used
// by the step loop so the hot path is a single load.
func (r Rule) table() [32]uint8 {
	var t [32]uint8
	for n := 0; n <= 8; n++ {
		t[n] = uint8(r.Birth >> n & 1)
		t[1<<4|n] = uint8(r.Survive >> n & 1)
	}
	return t
}
