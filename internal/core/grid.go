package core

import "fmt"

// LabelState enumerates what a label grid cell can hold.
type LabelState uint8

const (
	// Unlabeled cells have not been visited by extraction yet.
	Unlabeled LabelState = iota
	// Background cells belong to no node.
	Background
	// Owned cells belong to the node named by the label's ID.
	Owned
)

// NodeID identifies a node for the duration of a run. Valid ids start at 1.
type NodeID uint32

// Label is a single cell of a LabelGrid. The zero value is Unlabeled.
type Label struct {
	state LabelState
	id    NodeID
}

// BackgroundLabel marks a cell as belonging to no node.
func BackgroundLabel() Label { return Label{state: Background} }

// OwnedBy marks a cell as belonging to node id.
func OwnedBy(id NodeID) Label { return Label{state: Owned, id: id} }

// State reports which of the three cases l is.
func (l Label) State() LabelState { return l.state }

// Owner returns the owning node id when the cell is Owned.
func (l Label) Owner() (NodeID, bool) {
	if l.state != Owned {
		return 0, false
	}
	return l.id, true
}

func (l Label) String() string {
	switch l.state {
	case Unlabeled:
		return "unlabeled"
	case Background:
		return "background"
	}
	return fmt.Sprintf("node(%d)", l.id)
}

// LabelGrid stores one Label per pixel in row-major order.
type LabelGrid struct {
	W, H int
	data []Label
}

// NewLabelGrid allocates an all-unlabeled grid with the given dimensions.
func NewLabelGrid(w, h int) *LabelGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &LabelGrid{W: w, H: h, data: make([]Label, w*h)}
}

// Cells exposes the backing slice in row-major order.
func (g *LabelGrid) Cells() []Label { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *LabelGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *LabelGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the label at (x, y). Out-of-bounds coordinates read as
// Background so scans near the border need no special casing.
func (g *LabelGrid) At(x, y int) Label {
	if !g.InBounds(x, y) {
		return BackgroundLabel()
	}
	return g.data[g.Index(x, y)]
}

// Set stores l at (x, y).
func (g *LabelGrid) Set(x, y int, l Label) {
	g.data[g.Index(x, y)] = l
}
