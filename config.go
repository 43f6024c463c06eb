package main

// Simulation and rendering configuration constants. Physics defaults keep the
// Courant number well inside the stable range; presentation constants define
// the surface footprint and camera orbit in model space.
const (
	defaultGridSize    = 128
	defaultDT          = 1.0
	defaultDX          = 1.0
	defaultWaveSpeed   = 0.7
	defaultDamping     = 0.9995
	defaultPulseAmp    = 1.0
	defaultPulseRadius = 6.0

	defaultStepsPerFrame = 2
	minStepsPerFrame     = 1
	maxStepsPerFrame     = 64

	defaultBoundaryReflect = 0.90

	screenW = 800
	screenH = 800

	surfaceExtent = 2.0 // half-width of the surface quad in model space
	heightScale   = 0.8 // vertical rise per unit amplitude
	maxMeshDim    = 128 // vertex indices must fit in uint16
	paletteSize   = 256

	defaultCameraDistance = 6.0
	minCameraDistance     = 2.0
	maxCameraDistance     = 20.0
	cameraZoomRate        = 0.1
	cameraTurnRate        = 0.02
	maxCameraPhi          = 1.5

	fovDegrees = 45.0
	nearPlane  = 0.1
)
