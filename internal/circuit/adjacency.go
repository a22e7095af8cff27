package circuit

import (
	"image"

	"reso/internal/core"
	"reso/internal/palette"
)

// orthogonal lists the four neighbor offsets that establish circuit contact.
// Diagonal contact merges same-colored pixels into one region but never
// connects two regions.
var orthogonal = [4]core.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

// Discover adds to n every node owning a pixel orthogonally adjacent to one
// of n's pixels. Connections keep first-discovery order and never repeat.
func Discover(n *Node, grid *core.LabelGrid) {
	for _, p := range n.Pixels {
		for _, d := range orthogonal {
			id, ok := grid.At(p.X+d.X, p.Y+d.Y).Owner()
			if !ok {
				continue
			}
			n.connect(id)
		}
	}
}

// Connect runs Discover for every node of c. It must run after extraction has
// labeled the whole grid.
func (c *Circuit) Connect(grid *core.LabelGrid) {
	for i := range c.nodes {
		Discover(&c.nodes[i], grid)
	}
	c.initial = c.captureInitial()
}

// Build extracts and connects in one call.
func Build(img image.Image, reg *palette.Registry) (*Circuit, *core.LabelGrid) {
	c, grid := Extract(img, reg)
	c.Connect(grid)
	return c, grid
}
