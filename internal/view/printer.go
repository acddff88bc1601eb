// Package view renders engines to terminals: a plain console printer and an
// interactive gocui viewer.
package view

import (
	"bytes"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"lifegrid/pkg/sims/life"
)

// Printer writes grids and statistics to a stream.
type Printer struct {
	w    io.Writer
	au   aurora.Aurora
	live string
	dead string
}

// NewPrinter returns a Printer writing to w. Colors are emitted only when
// color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	au := aurora.NewAurora(color)
	return &Printer{
		w:    w,
		au:   au,
		live: au.Green("█").BgBrightGreen().String(),
		dead: "░",
	}
}

// Grid writes one line per row, one glyph per cell.
func (p *Printer) Grid(l *life.Life) error {
	var b bytes.Buffer
	writeField(&b, l, l.Width(), l.Height(), p.live, p.dead)
	b.WriteByte('\n')
	_, err := p.w.Write(b.Bytes())
	return err
}

// Stats writes the statistics snapshot, one property per line.
func (p *Printer) Stats(st life.Statistics) error {
	var b bytes.Buffer
	for _, prop := range statLines(st) {
		fmt.Fprintf(&b, "  %s: %s\n", p.au.Colorize(prop.name, aurora.GreenFg), prop.value)
	}
	_, err := p.w.Write(b.Bytes())
	return err
}

type statLine struct {
	name  string
	value string
}

func statLines(st life.Statistics) []statLine {
	return []statLine{
		{"Rule", st.Rule.String()},
		{"Border", st.Border.String()},
		{"Dimension", fmt.Sprintf("%s x %s", st.Width, st.Height)},
		{"Iteration", st.Iteration.String()},
		{"Alive", fmt.Sprintf("%s (%s)", st.AliveAbs, percent(st.AliveRel))},
		{"Dead", fmt.Sprintf("%s (%s)", st.DeadAbs, percent(st.DeadRel))},
		{"Tendency", fmt.Sprintf("%s (%s)", st.TendencyAbs, percent(st.TendencyRel))},
		{"Trend", st.Trend.String()},
	}
}

func percent(v life.Optional[float64]) string {
	f, ok := v.Get()
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%.2f%%", f*100)
}

// writeField renders at most maxW×maxH cells of l into b.
func writeField(b *bytes.Buffer, l *life.Life, maxW, maxH int, live, dead string) {
	w, h := min(l.Width(), maxW), min(l.Height(), maxH)
	for y := 0; y < h; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if l.State(x, y) == life.Alive {
				b.WriteString(live)
				continue
			}
			b.WriteString(dead)
		}
	}
}
