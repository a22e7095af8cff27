//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"reso/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the pixel height of the status strip below the circuit view.
const Height = 18

// HUD renders a one-line status strip: session name, tick and run state.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
	width int
}

// NewHUD constructs a HUD for the provided simulation and strip width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{sim: sim, width: width, panel: ebiten.NewImage(width, Height)}
}

// Draw paints the strip at vertical offset y.
func (h *HUD) Draw(screen *ebiten.Image, y int, paused bool) {
	if h == nil {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	line := fmt.Sprintf("%s  tick %d  %s", h.sim.Name(), h.sim.Tick(), state)

	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, line, basicfont.Face7x13, 4, 13, color.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
