package life

import "fmt"

// UpdateImage writes one opaque packed ARGB pixel per cell into buf in
// row-major order. buf must hold at least Width*Height pixels; extra capacity
// is left untouched. Nothing is written when the buffer is rejected.
func (l *Life) UpdateImage(buf []uint32) error {
	n := l.grid.Size()
	if buf == nil || len(buf) < n {
		return l.reject("buffer", fmt.Errorf("%w: have %d pixels, need %d", ErrBufferTooSmall, len(buf), n))
	}
	dead, alive := l.colors[Dead].ARGB(), l.colors[Alive].ARGB()
	out := buf[:n]
	for i, c := range l.grid.cells() {
		if c != 0 {
			out[i] = alive
			continue
		}
		out[i] = dead
	}
	return nil
}

// Render satisfies core.Sim.
func (l *Life) Render(dst []uint32) error { return l.UpdateImage(dst) }

// UpdateRGBA writes 4 bytes (R, G, B, 0xFF) per cell, the layout expected by
// image.RGBA and GPU texture uploads.
func (l *Life) UpdateRGBA(buf []byte) error {
	n := l.grid.Size()
	if buf == nil || len(buf) < 4*n {
		return l.reject("buffer", fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(buf), 4*n))
	}
	dead, alive := l.colors[Dead], l.colors[Alive]
	for i, c := range l.grid.cells() {
		col := dead
		if c != 0 {
			col = alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = 0xFF
	}
	return nil
}
