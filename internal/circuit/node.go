// Package circuit turns a palette-encoded image into a graph of nodes and
// advances that graph one synchronized tick at a time.
package circuit

import (
	"slices"

	"reso/internal/core"
	"reso/internal/palette"
)

// Node is one same-colored, 8-connected region of pixels.
type Node struct {
	ID core.NodeID

	Kind    palette.Kind
	Pending palette.Kind
	Color   palette.Color

	Pixels      []core.Point
	Connections []core.NodeID

	// Total and Agree are per-tick scratch counters; they are zero between
	// ticks.
	Total int
	Agree int
}

// Connected reports whether id is in n's connection set.
func (n *Node) Connected(id core.NodeID) bool {
	return slices.Contains(n.Connections, id)
}

func (n *Node) connect(id core.NodeID) {
	if id == n.ID || n.Connected(id) {
		return
	}
	n.Connections = append(n.Connections, id)
}

// NodeState is the externally visible state of a node after a tick.
type NodeState struct {
	ID    core.NodeID
	Kind  palette.Kind
	Color palette.Color
}
