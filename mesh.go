package main

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
)

// heightSampler reports the field amplitude at normalized surface
// coordinates (u, v) in [0,1]^2. The sampler handed to the mesh each frame
// stays valid for the duration of that render call.
type heightSampler func(u, v float64) float32

// floatColor holds premultiplied-friendly color channels for ebiten vertices.
type floatColor struct {
	r, g, b float32
}

var (
	warmPalette [paletteSize]floatColor
	coolPalette [paletteSize]floatColor

	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	buildPalettes()
}

// buildPalettes precomputes the signed-amplitude color ramps: a warm ramp
// (yellow toward red) for crests and a cool ramp (cyan toward blue) for
// troughs, both fading to pale near zero so calm water stays light.
func buildPalettes() {
	for i := range warmPalette {
		t := float64(i) / (paletteSize - 1)
		sat := 0.25 + 0.75*t
		r, g, b, _ := colorconv.HSVToRGB(55-55*t, sat, 1)
		warmPalette[i] = floatColor{float32(r) / 255, float32(g) / 255, float32(b) / 255}
		r, g, b, _ = colorconv.HSVToRGB(185+55*t, sat, 1)
		coolPalette[i] = floatColor{float32(r) / 255, float32(g) / 255, float32(b) / 255}
	}
}

// colorForAmplitude maps a signed amplitude to its palette entry, clamping
// magnitudes above one to the end of the ramp.
func colorForAmplitude(a float32) floatColor {
	t := math.Abs(float64(a))
	if t > 1 {
		t = 1
	}
	idx := int(t * (paletteSize - 1))
	if a >= 0 {
		return warmPalette[idx]
	}
	return coolPalette[idx]
}

// surfaceMesh is the uniform vertex grid deformed by the sampled field each
// frame. Grid coordinates and triangulation are built once; only the sampled
// elevation and color change per render.
type surfaceMesh struct {
	cols, rows int
	us, vs     []float64
	indices    []uint16

	// per-frame scratch, reused to avoid steady-state allocation
	verts    []ebiten.Vertex
	depths   []float32
	visible  []bool
	triDepth []float32
	order    []int
	sorted   []uint16
}

// newSurfaceMesh builds the static vertex grid and its triangulation. Both
// axes are capped so vertex indices fit the uint16 index buffer.
func newSurfaceMesh(cols, rows int) *surfaceMesh {
	cols = clampCoord(cols, 2, maxMeshDim)
	rows = clampCoord(rows, 2, maxMeshDim)
	m := &surfaceMesh{cols: cols, rows: rows}

	count := cols * rows
	m.us = make([]float64, count)
	m.vs = make([]float64, count)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			m.us[i] = float64(col) / float64(cols-1)
			m.vs[i] = float64(row) / float64(rows-1)
		}
	}

	m.indices = make([]uint16, 0, 6*(cols-1)*(rows-1))
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			i := uint16(row*cols + col)
			right := i + 1
			below := i + uint16(cols)
			belowRight := below + 1
			m.indices = append(m.indices, i, right, belowRight, belowRight, below, i)
		}
	}

	m.verts = make([]ebiten.Vertex, count)
	m.depths = make([]float32, count)
	m.visible = make([]bool, count)
	triCount := len(m.indices) / 3
	m.triDepth = make([]float32, triCount)
	m.order = make([]int, 0, triCount)
	m.sorted = make([]uint16, 0, len(m.indices))
	return m
}

// build refreshes vertex positions and colors from the sampler and camera,
// then depth-sorts the triangles for back-to-front drawing. The mesh never
// mutates the field; everything computed here is transient render state.
func (m *surfaceMesh) build(sample heightSampler, proj projector) {
	for i := range m.verts {
		a := sample(m.us[i], m.vs[i])
		x := (m.us[i]*2 - 1) * surfaceExtent
		z := (m.vs[i]*2 - 1) * surfaceExtent
		y := float64(a) * heightScale
		sx, sy, depth, ok := proj.project(x, y, z)
		m.visible[i] = ok
		m.depths[i] = depth
		c := colorForAmplitude(a)
		m.verts[i] = ebiten.Vertex{
			DstX: sx, DstY: sy,
			SrcX: 1.5, SrcY: 1.5,
			ColorR: c.r, ColorG: c.g, ColorB: c.b, ColorA: 1,
		}
	}

	m.order = m.order[:0]
	for t := 0; t < len(m.indices)/3; t++ {
		i0 := m.indices[3*t]
		i1 := m.indices[3*t+1]
		i2 := m.indices[3*t+2]
		if !m.visible[i0] || !m.visible[i1] || !m.visible[i2] {
			continue
		}
		m.triDepth[t] = (m.depths[i0] + m.depths[i1] + m.depths[i2]) / 3
		m.order = append(m.order, t)
	}
	sort.Slice(m.order, func(i, j int) bool {
		return m.triDepth[m.order[i]] > m.triDepth[m.order[j]]
	})

	m.sorted = m.sorted[:0]
	for _, t := range m.order {
		m.sorted = append(m.sorted, m.indices[3*t], m.indices[3*t+1], m.indices[3*t+2])
	}
}

// draw renders the sorted triangle set built by the last build call.
func (m *surfaceMesh) draw(screen *ebiten.Image) {
	if len(m.sorted) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(m.verts, m.sorted, whiteSubImage, op)
}
