//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim      core.Sim
	scale    int
	showRing bool
	showGrid bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRing = !o.showRing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	w, h := float64(size.W)*scale, float64(size.H)*scale

	if o.showGrid && scale >= 4 {
		line := color.RGBA{R: 60, G: 60, B: 70, A: 120}
		for x := 1; x < size.W; x++ {
			o.drawRect(screen, float64(x)*scale, 0, 1, h, line)
		}
		for y := 1; y < size.H; y++ {
			o.drawRect(screen, 0, float64(y)*scale, w, 1, line)
		}
	}

	if o.showRing {
		// Border ring: the cells whose neighbors are resolved by the border mode.
		tint := color.RGBA{R: 255, G: 120, B: 40, A: 110}
		o.drawRect(screen, 0, 0, w, scale, tint)
		if size.H > 1 {
			o.drawRect(screen, 0, h-scale, w, scale, tint)
		}
		if size.H > 2 {
			o.drawRect(screen, 0, scale, scale, h-2*scale, tint)
			if size.W > 1 {
				o.drawRect(screen, w-scale, scale, scale, h-2*scale, tint)
			}
		}
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
