package main

import (
	"errors"
	"fmt"
	"math"
)

// errOutOfBounds reports a caller-supplied coordinate outside the grid.
// Neighbor lookups inside the kernel never hit it; those use clamped
// addressing instead.
var errOutOfBounds = errors.New("coordinate out of bounds")

// scalarField stores one W x H amplitude grid in row-major order. Both field
// instances are allocated once and owned by the double buffer for the process
// lifetime; nothing else mutates them.
type scalarField struct {
	width, height int
	cells         []float32
}

// newScalarField allocates a zero-filled field with the given dimensions.
func newScalarField(width, height int) *scalarField {
	return &scalarField{
		width:  width,
		height: height,
		cells:  make([]float32, width*height),
	}
}

// index returns the linear slice index for coordinates (x, y).
func (f *scalarField) index(x, y int) int { return y*f.width + x }

// Get returns the amplitude at (x, y), or errOutOfBounds for coordinates
// outside [0,W)x[0,H).
func (f *scalarField) Get(x, y int) (float32, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", errOutOfBounds, x, y, f.width, f.height)
	}
	return f.cells[f.index(x, y)], nil
}

// set writes exactly one amplitude.
func (f *scalarField) set(x, y int, value float32) {
	f.cells[f.index(x, y)] = value
}

// clear zero-fills the field.
func (f *scalarField) clear() {
	for i := range f.cells {
		f.cells[i] = 0
	}
}

// snapshot returns a read-only view over the field's storage. The kernel and
// the mesh sampler only ever receive views, never mutation rights.
func (f *scalarField) snapshot() fieldView {
	return fieldView{width: f.width, height: f.height, cells: f.cells}
}

// seedPulse writes a radially symmetric pulse centered at (cx, cy):
// amp*exp(-r^2/radius^2) for r < radius, untouched elsewhere. This is the
// only external excitation the field accepts.
func (f *scalarField) seedPulse(cx, cy int, amp, radius float64) {
	span := int(math.Ceil(radius))
	r2max := radius * radius
	for oy := -span; oy <= span; oy++ {
		for ox := -span; ox <= span; ox++ {
			x, y := cx+ox, cy+oy
			if x < 0 || x >= f.width || y < 0 || y >= f.height {
				continue
			}
			r2 := float64(ox*ox + oy*oy)
			if r2 >= r2max {
				continue
			}
			f.cells[f.index(x, y)] = float32(amp * math.Exp(-r2/r2max))
		}
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// fieldView is a read-only window over a field's storage, valid until the
// buffer it was taken from is rewritten.
type fieldView struct {
	width, height int
	cells         []float32
}

// at reads the amplitude with clamped addressing: an out-of-range coordinate
// resolves to the nearest edge cell, giving the grid an approximate
// zero-gradient boundary.
func (v fieldView) at(x, y int) float32 {
	x = clampCoord(x, 0, v.width-1)
	y = clampCoord(y, 0, v.height-1)
	return v.cells[y*v.width+x]
}

// sample bilinearly interpolates the field at normalized coordinates
// (u, t) in [0,1]^2, clamping inputs outside that square to the edge.
func (v fieldView) sample(u, t float64) float32 {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	gx := u * float64(v.width-1)
	gy := t * float64(v.height-1)
	x0 := int(gx)
	y0 := int(gy)
	x1 := clampCoord(x0+1, 0, v.width-1)
	y1 := clampCoord(y0+1, 0, v.height-1)
	fx := float32(gx - float64(x0))
	fy := float32(gy - float64(y0))

	top := v.cells[y0*v.width+x0]*(1-fx) + v.cells[y0*v.width+x1]*fx
	bottom := v.cells[y1*v.width+x0]*(1-fx) + v.cells[y1*v.width+x1]*fx
	return top*(1-fy) + bottom*fy
}

// energy returns the sum of squared amplitudes over the grid.
func (v fieldView) energy() float64 {
	var sum float64
	for _, c := range v.cells {
		sum += float64(c) * float64(c)
	}
	return sum
}

// minMax returns the smallest and largest amplitude in the field.
func (v fieldView) minMax() (float32, float32) {
	min, max := v.cells[0], v.cells[0]
	for _, c := range v.cells[1:] {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return min, max
}
