// Package analysis cross-checks the engine against an independent
// frequency-domain neighbor count on the torus.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"lifegrid/pkg/sims/life"
)

// ErrShape is returned when a cell slice does not match the convolver size.
var ErrShape = errors.New("analysis: cell count does not match grid size")

// Convolver computes toroidal Moore-neighborhood counts by 2D FFT
// convolution: a real FFT along rows, a complex FFT along columns.
type Convolver struct {
	w, h int
	half int

	rows *fourier.FFT
	cols *fourier.CmplxFFT

	kernel []complex128
	freq   []complex128
	col    []complex128
	row    []float64
	norm   float64
}

// NewConvolver prepares transforms and the pre-transformed kernel for a w×h
// torus. Both dimensions must be positive.
func NewConvolver(w, h int) (*Convolver, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("analysis: invalid size %dx%d", w, h)
	}
	c := &Convolver{
		w:      w,
		h:      h,
		half:   w/2 + 1,
		rows:   fourier.NewFFT(w),
		cols:   fourier.NewCmplxFFT(h),
		col:    make([]complex128, h),
		row:    make([]float64, w),
		norm:   1 / float64(w*h),
		kernel: make([]complex128, h*(w/2+1)),
		freq:   make([]complex128, h*(w/2+1)),
	}

	spatial := make([]float64, w*h)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			fy := ((dy % h) + h) % h
			fx := ((dx % w) + w) % w
			spatial[fy*w+fx]++
		}
	}
	c.forward(c.kernel, func(y int, dst []float64) { copy(dst, spatial[y*w:(y+1)*w]) })
	return c, nil
}

// Size returns the torus dimensions.
func (c *Convolver) Size() (int, int) { return c.w, c.h }

// NeighborCounts writes the number of live neighbors of every cell into dst,
// wrapping at all edges.
func (c *Convolver) NeighborCounts(cells []life.State, dst []int) error {
	n := c.w * c.h
	if len(cells) != n || len(dst) < n {
		return fmt.Errorf("%w: have %d cells and %d outputs, need %d", ErrShape, len(cells), len(dst), n)
	}
	c.forward(c.freq, func(y int, dst []float64) {
		for x := range dst {
			dst[x] = float64(cells[y*c.w+x])
		}
	})
	for i := range c.freq {
		c.freq[i] *= c.kernel[i]
	}
	for x := 0; x < c.half; x++ {
		for y := 0; y < c.h; y++ {
			c.col[y] = c.freq[y*c.half+x]
		}
		c.cols.Sequence(c.col, c.col)
		for y := 0; y < c.h; y++ {
			c.freq[y*c.half+x] = c.col[y]
		}
	}
	for y := 0; y < c.h; y++ {
		c.rows.Sequence(c.row, c.freq[y*c.half:(y+1)*c.half])
		for x := 0; x < c.w; x++ {
			dst[y*c.w+x] = int(math.Round(c.row[x] * c.norm))
		}
	}
	return nil
}

// Step applies rule to cells on the torus and returns the next generation.
func (c *Convolver) Step(rule life.Rule, cells []life.State) ([]life.State, error) {
	counts := make([]int, len(cells))
	if err := c.NeighborCounts(cells, counts); err != nil {
		return nil, err
	}
	next := make([]life.State, len(cells))
	for i, s := range cells {
		next[i] = rule.Next(s, counts[i])
	}
	return next, nil
}

func (c *Convolver) forward(out []complex128, fill func(y int, dst []float64)) {
	for y := 0; y < c.h; y++ {
		fill(y, c.row)
		c.rows.Coefficients(out[y*c.half:(y+1)*c.half], c.row)
	}
	for x := 0; x < c.half; x++ {
		for y := 0; y < c.h; y++ {
			c.col[y] = out[y*c.half+x]
		}
		c.cols.Coefficients(c.col, c.col)
		for y := 0; y < c.h; y++ {
			out[y*c.half+x] = c.col[y]
		}
	}
}
