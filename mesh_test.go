package main

import (
	"math"
	"testing"
)

func TestMeshTopologyIsStatic(t *testing.T) {
	m := newSurfaceMesh(4, 3)
	if m.cols != 4 || m.rows != 3 {
		t.Fatalf("mesh dimensions = %dx%d, want 4x3", m.cols, m.rows)
	}
	wantVerts := 4 * 3
	if len(m.us) != wantVerts || len(m.vs) != wantVerts {
		t.Fatalf("vertex count = %d, want %d", len(m.us), wantVerts)
	}
	wantIndices := 6 * (4 - 1) * (3 - 1)
	if len(m.indices) != wantIndices {
		t.Fatalf("index count = %d, want %d", len(m.indices), wantIndices)
	}
	for _, idx := range m.indices {
		if int(idx) >= wantVerts {
			t.Fatalf("index %d out of range for %d vertices", idx, wantVerts)
		}
	}
	// corners span the unit square
	if m.us[0] != 0 || m.vs[0] != 0 {
		t.Fatalf("first vertex at (%v,%v), want (0,0)", m.us[0], m.vs[0])
	}
	last := wantVerts - 1
	if m.us[last] != 1 || m.vs[last] != 1 {
		t.Fatalf("last vertex at (%v,%v), want (1,1)", m.us[last], m.vs[last])
	}
}

func TestMeshDimensionsAreCapped(t *testing.T) {
	m := newSurfaceMesh(4096, 1)
	if m.cols > maxMeshDim || m.rows < 2 {
		t.Fatalf("mesh dimensions = %dx%d, want cols <= %d and rows >= 2", m.cols, m.rows, maxMeshDim)
	}
	if len(m.us) > math.MaxUint16+1 {
		t.Fatalf("vertex count %d cannot be indexed by uint16", len(m.us))
	}
}

func TestAmplitudeColorMapping(t *testing.T) {
	crest := colorForAmplitude(1)
	trough := colorForAmplitude(-1)
	if crest.r <= crest.b {
		t.Fatalf("positive amplitude should map to a warm hue, got r=%v b=%v", crest.r, crest.b)
	}
	if trough.b <= trough.r {
		t.Fatalf("negative amplitude should map to a cool hue, got r=%v b=%v", trough.r, trough.b)
	}
	// magnitudes beyond the palette clamp to its end
	over := colorForAmplitude(5)
	if over != crest {
		t.Fatalf("amplitude 5 = %+v, want the clamped crest color %+v", over, crest)
	}
}

func TestMeshBuildSamplesWithoutMutatingField(t *testing.T) {
	f := newScalarField(8, 8)
	f.seedPulse(4, 4, 1, 3)
	before := make([]float32, len(f.cells))
	copy(before, f.cells)

	m := newSurfaceMesh(8, 8)
	cam := newOrbitCamera()
	proj := cam.newProjector(screenW, screenH)
	m.build(f.snapshot().sample, proj)

	for i, v := range f.cells {
		if v != before[i] {
			t.Fatalf("render pass mutated field cell %d: %v -> %v", i, before[i], v)
		}
	}
	if len(m.sorted)%3 != 0 {
		t.Fatalf("sorted index buffer length %d is not a whole number of triangles", len(m.sorted))
	}
	if len(m.sorted) == 0 {
		t.Fatal("no triangles visible from the default camera")
	}
}

func TestProjectorMapsCenterToScreenCenter(t *testing.T) {
	cam := newOrbitCamera()
	proj := cam.newProjector(screenW, screenH)
	sx, sy, depth, ok := proj.project(0, 0, 0)
	if !ok {
		t.Fatal("surface center not visible from the default camera")
	}
	if math.Abs(float64(sx)-screenW/2) > 1e-3 || math.Abs(float64(sy)-screenH/2) > 1e-3 {
		t.Fatalf("surface center projected to (%v,%v), want screen center", sx, sy)
	}
	if math.Abs(float64(depth)-defaultCameraDistance) > 1e-6 {
		t.Fatalf("depth of surface center = %v, want the camera distance %v", depth, defaultCameraDistance)
	}
}

func TestProjectorRejectsPointsBehindCamera(t *testing.T) {
	cam := newOrbitCamera()
	proj := cam.newProjector(screenW, screenH)
	ex, ey, ez := cam.position()
	// a point twice as far out as the eye sits behind the near plane
	if _, _, _, ok := proj.project(ex*2, ey*2, ez*2); ok {
		t.Fatal("point behind the camera reported as visible")
	}
}
