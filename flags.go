package main

import "flag"

// Command-line flags that control grid shape, physics constants, and optional
// rendering and runtime behavior. All physics values are validated once at
// startup before the first tick.
var (
	// gridWidthFlag sets the number of cells along the x axis.
	gridWidthFlag = flag.Int("grid-width", defaultGridSize, "number of grid cells along the x axis")

	// gridHeightFlag sets the number of cells along the y axis.
	gridHeightFlag = flag.Int("grid-height", defaultGridSize, "number of grid cells along the y axis")

	// dtFlag sets the fixed simulation time step; it is never derived from frame timing.
	dtFlag = flag.Float64("dt", defaultDT, "fixed simulation time step")

	// dxFlag sets the spatial step between neighboring cells.
	dxFlag = flag.Float64("dx", defaultDX, "spatial step between neighboring cells")

	// waveSpeedFlag sets the propagation speed; wave-speed*dt/dx must stay at or below 1.
	waveSpeedFlag = flag.Float64("wave-speed", defaultWaveSpeed, "wave propagation speed (wave-speed*dt/dx must not exceed 1)")

	// dampingFlag sets the per-tick multiplicative energy decay.
	dampingFlag = flag.Float64("damping", defaultDamping, "per-tick multiplicative energy decay in (0, 1]")

	// pulseAmpFlag sets the peak amplitude of seeded pulses.
	pulseAmpFlag = flag.Float64("pulse-amplitude", defaultPulseAmp, "peak amplitude of the seeded pulse")

	// pulseRadiusFlag sets the radius of seeded pulses in cells.
	pulseRadiusFlag = flag.Float64("pulse-radius", defaultPulseRadius, "radius of the seeded pulse in cells")

	// stepsFlag sets how many simulation ticks run per rendered frame.
	stepsFlag = flag.Int("steps", defaultStepsPerFrame, "simulation ticks per rendered frame")

	// gpuFlag requests the OpenCL compute backend for the wave kernel.
	gpuFlag = flag.Bool("gpu", false, "run the wave kernel on an OpenCL device (requires the opencl build tag)")

	// absorbEdgesFlag swaps the default clamped-edge boundary for a damped absorbing pass.
	absorbEdgesFlag = flag.Bool("absorb-edges", false, "replace the clamped-edge boundary with a damped absorbing pass")

	// edgeReflectFlag adjusts how strongly the absorbing boundary reflects waves.
	edgeReflectFlag = flag.Float64("edge-reflect", defaultBoundaryReflect, "reflection coefficient for the absorbing boundary (0-1)")

	// flatViewFlag starts in the top-down amplitude view instead of the 3D surface.
	flatViewFlag = flag.Bool("flat", false, "start in the top-down amplitude view instead of the 3D surface")

	// debugFlag enables the FPS and simulation timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation timing overlay")

	// statsAddrFlag enables the websocket diagnostics server.
	statsAddrFlag = flag.String("stats-addr", "", "serve per-frame field statistics over websocket on this address (e.g. :8080)")

	// cpuProfileFlag captures a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
