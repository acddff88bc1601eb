//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	buttonOn        = [2]color.RGBA{{R: 54, G: 56, B: 64, A: 255}, {R: 230, G: 230, B: 240, A: 255}}
	buttonOff       = [2]color.RGBA{{R: 32, G: 34, B: 40, A: 255}, {R: 120, G: 120, B: 130, A: 255}}

	tones = map[tone]color.RGBA{
		toneNormal:  {R: 220, G: 220, B: 230, A: 255},
		toneHeader:  {R: 200, G: 200, B: 210, A: 255},
		toneMuted:   {R: 140, G: 140, B: 150, A: 255},
		toneRising:  {R: 110, G: 210, B: 120, A: 255},
		toneFalling: {R: 220, G: 110, B: 100, A: 255},
	}
)

// HUD renders the engine's controls and population readouts to the right of
// the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	title string

	snapshot core.ParameterSnapshot
	controls []control
	skip     map[string]bool
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	offsetX  int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD builds a panel of the given width; a width of zero hides it.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: title(sim), skip: map[string]bool{}}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControls(p.ParameterControls())
		for i := range h.controls {
			h.controls[i].layout(i, h.width)
			h.skip[h.controls[i].spec.Key] = true
		}
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update pulls a fresh snapshot and applies +/- clicks. offsetX is where the
// panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	p, ok := h.sim.(interface{ Parameters() core.ParameterSnapshot })
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = p.Parameters()
	for i := range h.controls {
		h.controls[i].sync(h.snapshot)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		h.click(mx-h.offsetX, my)
	}
}

func (h *HUD) click(px, py int) {
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		dir := 0
		switch {
		case pointInRect(px, py, c.minus):
			dir = -1
		case pointInRect(px, py, c.plus):
			dir = 1
		default:
			continue
		}
		if v, ok := c.target(dir); ok {
			c.apply(v, h.ints, h.floats)
		}
		return
	}
}

// Draw paints the panel at offsetX, as tall as the scaled grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, tones[toneHeader])
	if len(h.controls) == 0 {
		y += infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y, tones[toneMuted])
	}
	for _, c := range h.controls {
		h.drawControl(c)
	}
	if len(h.controls) > 0 {
		y = controlsTop + len(h.controls)*lineHeight - readoutSpacing
	}
	for _, r := range readouts(h.snapshot, h.skip) {
		if r.tone == toneHeader {
			y += readoutSpacing / 2
		}
		y += readoutSpacing
		text.Draw(h.panel, r.text, face, panelPadding, y, tones[r.tone])
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c control) {
	face := basicfont.Face7x13
	baseline := c.top + labelBaseline
	text.Draw(h.panel, c.spec.Label, face, panelPadding, baseline, tones[toneNormal])

	value, t := c.text(), toneNormal
	if !c.known {
		t = toneMuted
	}
	x := c.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, x, baseline, tones[t])

	_, canDec := c.target(-1)
	_, canInc := c.target(1)
	h.drawButton(c.minus, "-", canDec)
	h.drawButton(c.plus, "+", canInc)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	colors := buttonOff
	if enabled {
		colors = buttonOn
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(colors[0])
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, colors[1])
}
