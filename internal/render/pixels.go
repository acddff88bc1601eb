package render

import "lifegrid/pkg/core"

// RGBARenderer is implemented by simulations that can write image.RGBA bytes
// directly.
type RGBARenderer interface {
	UpdateRGBA(buf []byte) error
}

// frame fills buf with the RGBA pixels of sim. Simulations without a direct
// RGBA path are rendered to argb and converted.
func frame(sim core.Sim, argb []uint32, buf []byte) error {
	if r, ok := sim.(RGBARenderer); ok {
		return r.UpdateRGBA(buf)
	}
	if err := sim.Render(argb); err != nil {
		return err
	}
	fillRGBA(buf, argb)
	return nil
}

// fillRGBA converts packed ARGB pixels into RGBA bytes in buf.
func fillRGBA(buf []byte, argb []uint32) {
	for i, px := range argb {
		base := i * 4
		buf[base+0] = uint8(px >> 16)
		buf[base+1] = uint8(px >> 8)
		buf[base+2] = uint8(px)
		buf[base+3] = uint8(px >> 24)
	}
}

// CellAt maps a screen position to grid coordinates for a view drawn at the
// given scale from the origin. ok is false outside the w×h grid.
func CellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
