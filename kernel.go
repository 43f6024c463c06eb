package main

// cellNext evaluates the discretized 2D wave equation for a single cell:
// a 5-point Laplacian of the current field, leapfrog against the previous
// value, and a uniform damping factor on the full update. The function is
// total over valid coordinates and depends on no other cell's next value,
// so the whole grid can be stepped in any order within one tick.
func cellNext(cur fieldView, prevCenter float32, x, y int, c2, damp float32) float32 {
	center := cur.at(x, y)
	lap := cur.at(x-1, y) + cur.at(x+1, y) + cur.at(x, y-1) + cur.at(x, y+1) - 4*center
	return ((2*center - prevCenter) + c2*lap) * damp
}

// stepRows fills dst for rows [y0, y1) from the cur and prev snapshots.
// Interior cells take a direct-index fast path; edge cells go through the
// clamped addressing in cellNext. dst may share storage with prev: each cell
// reads prev only at its own index, strictly before the write to that index.
func stepRows(dst *scalarField, cur, prev fieldView, y0, y1 int, c2, damp float32) {
	width := cur.width
	lastRow := cur.height - 1
	for y := y0; y < y1; y++ {
		base := y * width
		if y == 0 || y == lastRow {
			for x := 0; x < width; x++ {
				dst.cells[base+x] = cellNext(cur, prev.cells[base+x], x, y, c2, damp)
			}
			continue
		}
		dst.cells[base] = cellNext(cur, prev.cells[base], 0, y, c2, damp)
		dst.cells[base+width-1] = cellNext(cur, prev.cells[base+width-1], width-1, y, c2, damp)

		center := cur.cells[base : base+width]
		top := cur.cells[base-width : base]
		bottom := cur.cells[base+width : base+2*width]
		prevRow := prev.cells[base : base+width]
		dstRow := dst.cells[base : base+width]
		for x := 1; x < width-1; x++ {
			c := center[x]
			lap := center[x-1] + center[x+1] + top[x] + bottom[x] - 4*c
			dstRow[x] = ((2*c - prevRow[x]) + c2*lap) * damp
		}
	}
}

// stepInto runs the kernel over the whole grid on the calling goroutine.
func stepInto(dst *scalarField, cur, prev fieldView, c2, damp float32) {
	stepRows(dst, cur, prev, 0, cur.height, c2, damp)
}
