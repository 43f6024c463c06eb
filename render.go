package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders either the deformed surface or the top-down amplitude view
// from the latest fully written field. The sampling view stays valid for
// this one render call; Draw never mutates the field.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.buffers.current().snapshot()
	if g.flatView {
		g.drawFlat(screen, view)
	} else {
		screen.Fill(color.RGBA{0, 0, 51, 255})
		bounds := screen.Bounds()
		proj := g.camera.newProjector(bounds.Dx(), bounds.Dy())
		g.mesh.build(view.sample, proj)
		g.mesh.draw(screen)
	}

	if *debugFlag {
		simMS := g.lastSimDuration.Seconds() * 1000
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTicks: %d (x%d per frame, +/-)\nSim: %.2f ms\nSolver: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.tickCount, g.stepMultiplier, simMS, g.solver.Name())
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// drawFlat scales the grid-resolution amplitude image to fill the screen.
func (g *Game) drawFlat(screen *ebiten.Image, view fieldView) {
	g.updateFlatImage(view)
	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(bounds.Dx())/float64(g.params.gridW),
		float64(bounds.Dy())/float64(g.params.gridH),
	)
	screen.DrawImage(g.flatImage, op)
}

// updateFlatImage refreshes the persistent grid-sized heat image, one pixel
// per grid cell.
func (g *Game) updateFlatImage(view fieldView) {
	if g.flatImage == nil {
		g.flatImage = ebiten.NewImage(g.params.gridW, g.params.gridH)
	}
	n := g.params.gridW * g.params.gridH
	if len(g.flatPixels) != n*4 {
		g.flatPixels = make([]byte, n*4)
	}
	for i, v := range view.cells {
		c := colorForAmplitude(v)
		g.flatPixels[i*4] = byte(c.r * 255)
		g.flatPixels[i*4+1] = byte(c.g * 255)
		g.flatPixels[i*4+2] = byte(c.b * 255)
		g.flatPixels[i*4+3] = 255
	}
	g.flatImage.WritePixels(g.flatPixels)
}
