package main

import (
	"errors"
	"math"
	"testing"
)

func TestGetRejectsOutOfBounds(t *testing.T) {
	f := newScalarField(4, 3)
	cases := [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {100, 100}}
	for _, c := range cases {
		if _, err := f.Get(c[0], c[1]); !errors.Is(err, errOutOfBounds) {
			t.Fatalf("Get(%d,%d) = %v, want errOutOfBounds", c[0], c[1], err)
		}
	}
	f.set(2, 1, 7)
	v, err := f.Get(2, 1)
	if err != nil {
		t.Fatalf("Get(2,1) failed: %v", err)
	}
	if v != 7 {
		t.Fatalf("Get(2,1) = %v, want 7", v)
	}
}

func TestClampedAddressing(t *testing.T) {
	f := newScalarField(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.set(x, y, float32(y*3+x))
		}
	}
	view := f.snapshot()
	cases := []struct {
		x, y   int
		cx, cy int
	}{
		{-1, 0, 0, 0},
		{3, 1, 2, 1},
		{1, -5, 1, 0},
		{1, 9, 1, 2},
		{-2, -2, 0, 0},
		{5, 5, 2, 2},
	}
	for _, c := range cases {
		got := view.at(c.x, c.y)
		want := view.at(c.cx, c.cy)
		if got != want {
			t.Errorf("at(%d,%d) = %v, want value of edge cell (%d,%d) = %v", c.x, c.y, got, c.cx, c.cy, want)
		}
	}
}

func TestSeedPulseShape(t *testing.T) {
	f := newScalarField(9, 9)
	f.seedPulse(4, 4, 2.0, 2.0)

	center, _ := f.Get(4, 4)
	if math.Abs(float64(center)-2.0) > 1e-6 {
		t.Fatalf("center amplitude = %v, want 2.0", center)
	}
	// one cell out: amp * exp(-1/radius^2)
	want := 2.0 * math.Exp(-1.0/4.0)
	got, _ := f.Get(5, 4)
	if math.Abs(float64(got)-want) > 1e-6 {
		t.Fatalf("neighbor amplitude = %v, want %v", got, want)
	}
	// cells at r >= radius stay untouched
	if v, _ := f.Get(6, 4); v != 0 {
		t.Fatalf("cell at cutoff radius = %v, want 0", v)
	}
	if v, _ := f.Get(0, 0); v != 0 {
		t.Fatalf("far cell = %v, want 0", v)
	}
}

func TestSeedPulseNearEdgeStaysInBounds(t *testing.T) {
	f := newScalarField(5, 5)
	f.seedPulse(0, 0, 1.0, 3.0)
	if v, _ := f.Get(0, 0); v != 1.0 {
		t.Fatalf("corner amplitude = %v, want 1.0", v)
	}
}

func TestBilinearSample(t *testing.T) {
	f := newScalarField(2, 2)
	f.set(0, 0, 0)
	f.set(1, 0, 1)
	f.set(0, 1, 2)
	f.set(1, 1, 3)
	view := f.snapshot()

	cases := []struct {
		u, v float64
		want float32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
		{0.5, 0, 0.5},
		{0, 0.5, 1},
		{0.5, 0.5, 1.5},
		{-0.5, 0, 0},  // inputs clamp to the unit square
		{2, 2, 3},
	}
	for _, c := range cases {
		got := view.sample(c.u, c.v)
		if math.Abs(float64(got-c.want)) > 1e-6 {
			t.Errorf("sample(%v,%v) = %v, want %v", c.u, c.v, got, c.want)
		}
	}
}

func TestEnergyAndMinMax(t *testing.T) {
	f := newScalarField(2, 2)
	f.set(0, 0, -2)
	f.set(1, 0, 1)
	f.set(0, 1, 0)
	f.set(1, 1, 3)
	view := f.snapshot()

	if e := view.energy(); math.Abs(e-14) > 1e-9 {
		t.Fatalf("energy = %v, want 14", e)
	}
	min, max := view.minMax()
	if min != -2 || max != 3 {
		t.Fatalf("minMax = (%v, %v), want (-2, 3)", min, max)
	}
}
