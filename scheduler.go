package main

// doubleBuffer owns the simulation's two field instances and tracks which of
// them currently holds the CURRENT role. Each tick the kernel writes into the
// buffer holding the stale PREVIOUS role, then the labels swap; the storage
// itself is never reallocated or copied wholesale.
type doubleBuffer struct {
	a, b   *scalarField
	curIsA bool
}

// newDoubleBuffer allocates both fields zero-filled, with A holding CURRENT.
func newDoubleBuffer(width, height int) *doubleBuffer {
	return &doubleBuffer{
		a:      newScalarField(width, height),
		b:      newScalarField(width, height),
		curIsA: true,
	}
}

// current returns the most recently fully written field.
func (d *doubleBuffer) current() *scalarField {
	if d.curIsA {
		return d.a
	}
	return d.b
}

// previous returns the field from the tick before the current one.
func (d *doubleBuffer) previous() *scalarField {
	if d.curIsA {
		return d.b
	}
	return d.a
}

// swap rotates the role labels without touching the underlying storage.
func (d *doubleBuffer) swap() {
	d.curIsA = !d.curIsA
}

// reset zero-fills both fields.
func (d *doubleBuffer) reset() {
	d.a.clear()
	d.b.clear()
}

// seedPulse writes a pulse into both fields so the disturbance starts at
// rest: equal current and previous values mean zero initial velocity, and
// the first tick spreads energy outward instead of doubling the crest.
func (d *doubleBuffer) seedPulse(cx, cy int, amp, radius float64) {
	d.current().seedPulse(cx, cy, amp, radius)
	d.previous().seedPulse(cx, cy, amp, radius)
}

// applyAbsorbingEdges overwrites the border cells with inverted, attenuated
// copies of their inward neighbors to bleed energy out of the domain instead
// of pooling it at the edges. Opt-in; the default boundary is the clamped
// addressing in fieldView.at.
func applyAbsorbingEdges(f *scalarField, reflect float32) {
	lastRow := f.height - 1
	lastCol := f.width - 1
	for x := 0; x <= lastCol; x++ {
		f.cells[x] = -f.cells[f.width+x] * reflect
		f.cells[lastRow*f.width+x] = -f.cells[(lastRow-1)*f.width+x] * reflect
	}
	for y := 1; y < lastRow; y++ {
		f.cells[y*f.width] = -f.cells[y*f.width+1] * reflect
		f.cells[y*f.width+lastCol] = -f.cells[y*f.width+lastCol-1] * reflect
	}
}
