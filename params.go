package main

import (
	"errors"
	"fmt"
)

// Configuration errors detected once at startup, before any tick runs.
var (
	errGridSize   = errors.New("grid dimensions must be positive")
	errTimeStep   = errors.New("dt, dx, and wave speed must be positive")
	errDamping    = errors.New("damping must be in (0, 1]")
	errCFLBound   = errors.New("CFL bound exceeded: wave-speed*dt/dx must not exceed 1")
	errPulseShape = errors.New("pulse amplitude and radius must be positive")
	errStepCount  = errors.New("steps per frame must be positive")
)

// simParams is the immutable per-run simulation configuration.
type simParams struct {
	gridW, gridH   int
	dt             float64
	dx             float64
	waveSpeed      float64
	damping        float64
	pulseAmplitude float64
	pulseRadius    float64
	stepsPerFrame  int
}

// courant returns c*dt/dx, the Courant number of the configuration.
func (p simParams) courant() float64 {
	return p.waveSpeed * p.dt / p.dx
}

// courantSq returns the squared Courant number, the stencil coefficient used
// by the update kernel.
func (p simParams) courantSq() float32 {
	c := p.courant()
	return float32(c * c)
}

// validate reports the first violated configuration constraint, or nil. A
// configuration that passes keeps the explicit update bounded, so the kernel
// itself performs no runtime stability check.
func (p simParams) validate() error {
	if p.gridW <= 0 || p.gridH <= 0 {
		return fmt.Errorf("%w (got %dx%d)", errGridSize, p.gridW, p.gridH)
	}
	if p.dt <= 0 || p.dx <= 0 || p.waveSpeed <= 0 {
		return fmt.Errorf("%w (dt=%g dx=%g c=%g)", errTimeStep, p.dt, p.dx, p.waveSpeed)
	}
	if p.damping <= 0 || p.damping > 1 {
		return fmt.Errorf("%w (got %g)", errDamping, p.damping)
	}
	if p.courant() > 1 {
		return fmt.Errorf("%w (got %g)", errCFLBound, p.courant())
	}
	if p.pulseAmplitude <= 0 || p.pulseRadius <= 0 {
		return fmt.Errorf("%w (amplitude=%g radius=%g)", errPulseShape, p.pulseAmplitude, p.pulseRadius)
	}
	if p.stepsPerFrame <= 0 {
		return fmt.Errorf("%w (got %d)", errStepCount, p.stepsPerFrame)
	}
	return nil
}

// paramsFromFlags collects the parsed command-line values into a simParams.
func paramsFromFlags() simParams {
	return simParams{
		gridW:          *gridWidthFlag,
		gridH:          *gridHeightFlag,
		dt:             *dtFlag,
		dx:             *dxFlag,
		waveSpeed:      *waveSpeedFlag,
		damping:        *dampingFlag,
		pulseAmplitude: *pulseAmpFlag,
		pulseRadius:    *pulseRadiusFlag,
		stepsPerFrame:  *stepsFlag,
	}
}
