//go:build ebiten

package app

import (
	"reso/internal/core"
	"reso/internal/render"
	"reso/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation session to the ebiten.Game interface. It plays
// the same deterministic tick sequence the batch run writes to disk.
type Game struct {
	sim     core.Sim
	painter *render.FramePainter
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	maxTicks int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. Playback advances tps
// ticks per second and pauses once maxTicks ticks have run (0 means never).
func New(sim core.Sim, scale, tps, maxTicks int) *Game {
	if scale < 1 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewFramePainter(size.W, size.H),
		hud:      ui.NewHUD(sim, size.W*scale),
		clock:    core.NewFixedStep(tps),
		scale:    scale,
		maxTicks: maxTicks,
	}
}

// Reset rewinds the simulation to its extracted state.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	if g.maxTicks > 0 && g.sim.Tick() >= g.maxTicks {
		g.paused = true
	}
	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current frame and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Frame(), g.scale)
	g.hud.Draw(screen, g.sim.Size().H*g.scale, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.Height
}
