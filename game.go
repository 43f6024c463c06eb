package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game owns the simulation buffers, the compute backend, and the render-side
// mesh and camera. It drives one batch of simulation ticks and one render
// pass per frame, strictly in that order.
type Game struct {
	params  simParams
	buffers *doubleBuffer
	solver  waveSolver
	mesh    *surfaceMesh
	camera  *orbitCamera
	stats   *statsServer

	splashRand *rand.Rand

	stepMultiplier  int
	tickCount       int
	fieldDirty      bool
	flatView        bool
	flatImage       *ebiten.Image
	flatPixels      []byte
	lastSimDuration time.Duration
}

// newGame constructs a fully initialized Game, seeds the initial pulse at the
// grid midpoint, and selects the compute backend.
func newGame(params simParams) *Game {
	buffers := newDoubleBuffer(params.gridW, params.gridH)
	buffers.seedPulse(params.gridW/2, params.gridH/2, params.pulseAmplitude, params.pulseRadius)
	return &Game{
		params:         params,
		buffers:        buffers,
		solver:         newWaveSolver(params, *absorbEdgesFlag, *edgeReflectFlag),
		mesh:           newSurfaceMesh(params.gridW, params.gridH),
		camera:         newOrbitCamera(),
		splashRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		stepMultiplier: params.stepsPerFrame,
		fieldDirty:     true,
		flatView:       *flatViewFlag,
	}
}

// Update advances the simulation by the configured number of ticks. The tick
// batch fully completes before Draw samples the resulting field.
func (g *Game) Update() error {
	g.camera.handleInput()
	g.handleControls()

	simStart := time.Now()
	if err := g.solver.Step(g.buffers, g.stepMultiplier, g.fieldDirty); err != nil {
		return err
	}
	g.fieldDirty = false
	g.tickCount += g.stepMultiplier
	g.lastSimDuration = time.Since(simStart)

	if g.stats != nil {
		view := g.buffers.current().snapshot()
		min, max := view.minMax()
		g.stats.publish(fieldStats{
			Tick:   g.tickCount,
			Energy: view.energy(),
			Min:    min,
			Max:    max,
		})
	}
	return nil
}

// handleControls processes the simulation hotkeys: Space splashes at the
// center, R at a random spot, C clears the field, F toggles the flat view,
// and +/- adjust the tick batch size.
func (g *Game) handleControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.splash(g.params.gridW/2, g.params.gridH/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		margin := int(math.Ceil(g.params.pulseRadius))
		x := margin + g.splashRand.Intn(maxInt(1, g.params.gridW-2*margin))
		y := margin + g.splashRand.Intn(maxInt(1, g.params.gridH-2*margin))
		g.splash(x, y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.buffers.reset()
		g.fieldDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.flatView = !g.flatView
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepMultiplier(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepMultiplier(1)
	}
}

// splash seeds a fresh pulse between ticks, never inside one.
func (g *Game) splash(cx, cy int) {
	g.buffers.seedPulse(cx, cy, g.params.pulseAmplitude, g.params.pulseRadius)
	g.fieldDirty = true
}

// adjustStepMultiplier clamps the tick batch size within bounds.
func (g *Game) adjustStepMultiplier(delta int) {
	g.stepMultiplier += delta
	if g.stepMultiplier < minStepsPerFrame {
		g.stepMultiplier = minStepsPerFrame
	} else if g.stepMultiplier > maxStepsPerFrame {
		g.stepMultiplier = maxStepsPerFrame
	}
}

// Layout reports a fixed logical screen size. The flat amplitude view is
// drawn scaled rather than by switching the layout, so toggling views
// mid-frame never resizes the screen image out from under Draw.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
