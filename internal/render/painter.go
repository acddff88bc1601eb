//go:build ebiten

package render

import (
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a simulation's rendered pixels into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	argb []uint32
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.argb = make([]uint32, w*h)
	gp.buf = make([]byte, 4*w*h)
	gp.img = nil
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
}

// Blit renders sim into the painter image and draws it scaled onto dst. The
// painter follows size changes of the simulation.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) error {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		gp.resize(size.W, size.H)
	}
	if gp.img == nil {
		return nil
	}
	if err := frame(sim, gp.argb, gp.buf); err != nil {
		return err
	}
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
	return nil
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
