package core

import "image"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an immutable pixel coordinate.
type Point struct {
	X, Y int
}

// Sim is the contract the preview window drives: a deterministic, fixed-step
// simulation that can render its current state.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Tick() int
	Frame() *image.RGBA
}
