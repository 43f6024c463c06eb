package main

import (
	"fmt"
	"log"
	"runtime"
)

// waveSolver advances the double-buffered field by whole ticks. hostDirty
// tells backends with their own field copies (the OpenCL solver) that the
// host buffers were reseeded since the last step.
type waveSolver interface {
	Step(buffers *doubleBuffer, steps int, hostDirty bool) error
	Name() string
	Close()
}

// cpuSolver runs the update kernel on the host worker pool.
type cpuSolver struct {
	pool    *workerPool
	c2      float32
	damp    float32
	absorb  bool
	reflect float32
}

// newCPUSolver sizes the worker pool to the machine and bakes the stencil
// coefficients from the validated configuration.
func newCPUSolver(params simParams, absorb bool, reflect float64) *cpuSolver {
	return &cpuSolver{
		pool:    newWorkerPool(runtime.NumCPU(), params.gridH),
		c2:      params.courantSq(),
		damp:    float32(params.damping),
		absorb:  absorb,
		reflect: float32(reflect),
	}
}

// Step executes the tick transition: the kernel reads frozen snapshots of
// CURRENT and PREVIOUS, writes into the buffer holding the stale PREVIOUS
// role, and the role labels swap once every cell has been written. Neither
// read role observes a value written during the same tick.
func (s *cpuSolver) Step(buffers *doubleBuffer, steps int, _ bool) error {
	for i := 0; i < steps; i++ {
		write := buffers.previous()
		s.pool.dispatch(stepJob{
			dst:  write,
			cur:  buffers.current().snapshot(),
			prev: write.snapshot(),
			c2:   s.c2,
			damp: s.damp,
		})
		buffers.swap()
		if s.absorb {
			applyAbsorbingEdges(buffers.current(), s.reflect)
		}
	}
	return nil
}

// Name identifies the backend for the debug overlay and startup log.
func (s *cpuSolver) Name() string {
	return fmt.Sprintf("CPU (%d workers)", s.pool.workers())
}

// Close is a no-op; the pool goroutines live for the process lifetime.
func (s *cpuSolver) Close() {}

// newWaveSolver selects the compute backend for the run. The OpenCL backend
// is used only when requested and available; any failure falls back to the
// CPU worker pool.
func newWaveSolver(params simParams, absorb bool, reflect float64) waveSolver {
	if *gpuFlag {
		solver, err := newOpenCLSolver(params, absorb, reflect)
		if err != nil {
			log.Printf("OpenCL unavailable, using CPU workers: %v", err)
		} else {
			log.Printf("OpenCL solver enabled (device: %s)", solver.DeviceName())
			return solver
		}
	}
	return newCPUSolver(params, absorb, reflect)
}
