package app

import (
	"image"

	"reso/internal/circuit"
	"reso/internal/core"
	"reso/internal/palette"
	"reso/internal/render"
)

// Session binds an extracted circuit to the renderer for its source image.
type Session struct {
	name     string
	circuit  *circuit.Circuit
	renderer *render.Renderer
}

// NewSession extracts and connects the circuit encoded in img.
func NewSession(name string, img image.Image, reg *palette.Registry) *Session {
	c, _ := circuit.Build(img, reg)
	return &Session{name: name, circuit: c, renderer: render.NewRenderer(img)}
}

// Name returns the session label, usually the input file name.
func (s *Session) Name() string { return s.name }

// Size returns the image dimensions.
func (s *Session) Size() core.Size { return s.circuit.Size() }

// Reset rewinds the circuit to its extracted state.
func (s *Session) Reset() { s.circuit.Reset() }

// Step advances the circuit by one tick.
func (s *Session) Step() { s.circuit.Step() }

// Tick returns the number of ticks simulated so far.
func (s *Session) Tick() int { return s.circuit.Tick() }

// Frame renders the current circuit state.
func (s *Session) Frame() *image.RGBA { return s.renderer.Render(s.circuit.Nodes()) }

// Circuit exposes the underlying circuit.
func (s *Session) Circuit() *circuit.Circuit { return s.circuit }

var _ core.Sim = (*Session)(nil)
