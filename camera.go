package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// orbitCamera is the spherical camera around the surface center: a distance
// plus horizontal and vertical angles. The simulation core never sees it;
// it exists purely on the render side of the sampling contract.
type orbitCamera struct {
	distance float64
	theta    float64
	phi      float64
}

// newOrbitCamera starts slightly above the surface plane so the initial
// splash reads as a 3D shape.
func newOrbitCamera() *orbitCamera {
	return &orbitCamera{distance: defaultCameraDistance, phi: 0.6}
}

// handleInput applies the keyboard camera controls: W/S zoom, arrow keys
// orbit, with the vertical angle clamped short of the poles.
func (c *orbitCamera) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		c.distance -= cameraZoomRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		c.distance += cameraZoomRate
	}
	c.distance = math.Max(minCameraDistance, math.Min(maxCameraDistance, c.distance))

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.theta -= cameraTurnRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.theta += cameraTurnRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.phi = math.Min(c.phi+cameraTurnRate, maxCameraPhi)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.phi = math.Max(c.phi-cameraTurnRate, -maxCameraPhi)
	}
}

// position returns the camera location on its orbit sphere.
func (c *orbitCamera) position() (float64, float64, float64) {
	x := c.distance * math.Cos(c.phi) * math.Cos(c.theta)
	y := c.distance * math.Sin(c.phi)
	z := c.distance * math.Cos(c.phi) * math.Sin(c.theta)
	return x, y, z
}

// projector converts model-space points to screen coordinates for one frame:
// a look-at basis toward the origin and a 45 degree perspective projection.
type projector struct {
	ex, ey, ez float64 // eye
	rx, ry, rz float64 // right basis
	ux, uy, uz float64 // up basis
	fx, fy, fz float64 // forward basis
	focalX     float64
	focalY     float64
	halfW      float64
	halfH      float64
}

// newProjector captures the camera state for one render call.
func (c *orbitCamera) newProjector(screenWidth, screenHeight int) projector {
	ex, ey, ez := c.position()
	// forward points from the eye to the surface center at the origin
	fl := math.Sqrt(ex*ex + ey*ey + ez*ez)
	fx, fy, fz := -ex/fl, -ey/fl, -ez/fl
	// right = forward x worldUp; phi is clamped short of +-pi/2 so this
	// never degenerates
	rx, ry, rz := -fz, 0.0, fx
	rl := math.Sqrt(rx*rx + rz*rz)
	rx, rz = rx/rl, rz/rl
	// up completes the orthonormal basis
	ux := ry*fz - rz*fy
	uy := rz*fx - rx*fz
	uz := rx*fy - ry*fx

	focal := 1 / math.Tan(fovDegrees*math.Pi/180/2)
	aspect := float64(screenWidth) / float64(screenHeight)
	return projector{
		ex: ex, ey: ey, ez: ez,
		rx: rx, ry: ry, rz: rz,
		ux: ux, uy: uy, uz: uz,
		fx: fx, fy: fy, fz: fz,
		focalX: focal / aspect,
		focalY: focal,
		halfW:  float64(screenWidth) / 2,
		halfH:  float64(screenHeight) / 2,
	}
}

// project maps a model-space point to screen coordinates plus a view-space
// depth for sorting. ok is false for points behind the near plane.
func (p projector) project(x, y, z float64) (sx, sy, depth float32, ok bool) {
	dx, dy, dz := x-p.ex, y-p.ey, z-p.ez
	cz := dx*p.fx + dy*p.fy + dz*p.fz
	if cz < nearPlane {
		return 0, 0, 0, false
	}
	cx := dx*p.rx + dy*p.ry + dz*p.rz
	cy := dx*p.ux + dy*p.uy + dz*p.uz
	sx = float32(p.halfW + cx*p.focalX/cz*p.halfW)
	sy = float32(p.halfH - cy*p.focalY/cz*p.halfH)
	return sx, sy, float32(cz), true
}
