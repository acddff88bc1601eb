package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"lifegrid/pkg/core"
)

// unknownValue is how the engine reports a statistic it cannot compute yet.
const unknownValue = "unknown"

// control is one adjustable row of the panel. Int and float controls share
// value; int controls keep it integral.
type control struct {
	spec  core.ParameterControl
	value float64
	known bool

	top         int
	minus, plus image.Rectangle
}

func newControls(specs []core.ParameterControl) []control {
	out := make([]control, len(specs))
	for i, spec := range specs {
		out[i] = control{spec: spec}
	}
	return out
}

// sync loads the control value from the snapshot.
func (c *control) sync(snap core.ParameterSnapshot) {
	c.known = false
	p, ok := snap.Lookup(c.spec.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil || math.IsNaN(v) {
		return
	}
	if c.spec.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	c.value, c.known = v, true
}

func (c control) step() float64 {
	if c.spec.Type == core.ParamTypeInt {
		return math.Max(1, math.Round(c.spec.Step))
	}
	if c.spec.Step <= 0 {
		return 0.05
	}
	return c.spec.Step
}

// target returns the value one step in direction dir, clamped to the bounds.
// ok is false when the value is unknown or the move changes nothing.
func (c control) target(dir int) (float64, bool) {
	if !c.known || dir == 0 {
		return c.value, false
	}
	v := c.value + float64(dir)*c.step()
	if c.spec.HasMin && v < c.spec.Min {
		v = c.spec.Min
	}
	if c.spec.HasMax && v > c.spec.Max {
		v = c.spec.Max
	}
	if math.Abs(v-c.value) < 1e-9 {
		return c.value, false
	}
	return v, true
}

// apply pushes v through whichever setter matches the control type.
func (c *control) apply(v float64, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	var ok bool
	switch c.spec.Type {
	case core.ParamTypeInt:
		ok = ints != nil && ints.SetIntParameter(c.spec.Key, int(math.Round(v)))
	case core.ParamTypeFloat:
		ok = floats != nil && floats.SetFloatParameter(c.spec.Key, v)
	}
	if ok {
		c.value = v
	}
	return ok
}

// text renders the value; int controls with choices show the choice name.
func (c control) text() string {
	if !c.known {
		return "--"
	}
	if c.spec.Type == core.ParamTypeInt {
		i := int(c.value)
		if i >= 0 && i < len(c.spec.Choices) {
			return c.spec.Choices[i]
		}
		return strconv.Itoa(i)
	}
	prec := 1
	switch step := c.step(); {
	case step < 0.001:
		prec = 4
	case step < 0.01:
		prec = 3
	case step < 0.1:
		prec = 2
	}
	return strconv.FormatFloat(c.value, 'f', prec, 64)
}

func (c *control) layout(i, width int) {
	c.top = controlsTop + i*lineHeight
	y := c.top + (lineHeight-buttonSize)/2
	c.plus = image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
	c.minus = image.Rect(c.plus.Min.X-buttonGap-buttonSize, y, c.plus.Min.X-buttonGap, y+buttonSize)
}

// tone picks the color of a readout line.
type tone uint8

const (
	toneNormal tone = iota
	toneHeader
	toneMuted
	toneRising
	toneFalling
)

type readout struct {
	text string
	tone tone
}

// readouts flattens the snapshot into panel lines, skipping keys that already
// have a control. Unknown statistics are muted, population movement is
// colored by direction.
func readouts(snap core.ParameterSnapshot, skip map[string]bool) []readout {
	var out []readout
	for _, group := range snap.Groups {
		out = append(out, readout{text: group.Name, tone: toneHeader})
		for _, p := range group.Params {
			if skip[p.Key] {
				continue
			}
			value, t := presentValue(p)
			out = append(out, readout{text: p.Label + ": " + value, tone: t})
		}
	}
	return out
}

func presentValue(p core.Parameter) (string, tone) {
	if p.Value == unknownValue || p.Value == "" {
		return "--", toneMuted
	}
	switch p.Key {
	case "trend":
		return describeTrend(p.Value)
	case "tendency":
		n, err := strconv.Atoi(p.Value)
		switch {
		case err != nil || n == 0:
			return p.Value, toneNormal
		case n > 0:
			return "+" + p.Value, toneRising
		}
		return p.Value, toneFalling
	}
	return p.Value, toneNormal
}

var (
	directionNames = map[byte]string{'+': "growing", '-': "shrinking", '=': "flat"}
	stabilityNames = map[byte]string{'-': "stable", '~': "mild", 'w': "unstable", 'W': "chaotic"}
)

// describeTrend spells out a two-glyph trend such as "+~".
func describeTrend(s string) (string, tone) {
	if len(s) != 2 {
		return s, toneNormal
	}
	dir, okDir := directionNames[s[0]]
	stab, okStab := stabilityNames[s[1]]
	if !okDir || !okStab {
		return s, toneNormal
	}
	t := toneNormal
	switch s[0] {
	case '+':
		t = toneRising
	case '-':
		t = toneFalling
	}
	return strings.Join([]string{dir, stab}, ", "), t
}

func title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	readoutSpacing = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
