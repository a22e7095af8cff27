package circuit

import (
	"fmt"

	"reso/internal/core"
	"reso/internal/palette"
)

// evaluationOrder is the order in which node classes aggregate their
// neighbors each tick. Each class reads only accumulators of classes that
// come before it, so the order doubles as the combinational dependency chain
// Input -> gate -> Output.
var evaluationOrder = [...]palette.Class{
	palette.ClassInput,
	palette.ClassXor,
	palette.ClassAnd,
	palette.ClassOutput,
}

// Circuit is the node graph extracted from one image together with its
// simulation state.
type Circuit struct {
	reg   *palette.Registry
	size  core.Size
	nodes []Node
	tick  int

	initial []palette.Kind
	staged  []stagedTally
}

type tally struct {
	total int
	agree int
}

type stagedTally struct {
	index int
	tally
}

func newCircuit(reg *palette.Registry, size core.Size, nodes []Node) *Circuit {
	c := &Circuit{reg: reg, size: size, nodes: nodes}
	c.initial = c.captureInitial()
	return c
}

func (c *Circuit) captureInitial() []palette.Kind {
	kinds := make([]palette.Kind, len(c.nodes))
	for i := range c.nodes {
		kinds[i] = c.nodes[i].Kind
	}
	return kinds
}

// Size returns the dimensions of the source image.
func (c *Circuit) Size() core.Size { return c.size }

// Len returns the number of nodes.
func (c *Circuit) Len() int { return len(c.nodes) }

// Tick returns the number of ticks simulated since extraction or Reset.
func (c *Circuit) Tick() int { return c.tick }

// Registry returns the palette the circuit was extracted with.
func (c *Circuit) Registry() *palette.Registry { return c.reg }

// Nodes exposes the node slice, ordered by id. Callers must not change node
// kinds or connections between ticks.
func (c *Circuit) Nodes() []Node { return c.nodes }

// Node returns the node with the given id.
func (c *Circuit) Node(id core.NodeID) (*Node, bool) {
	if id == 0 || int(id) > len(c.nodes) {
		return nil, false
	}
	return &c.nodes[id-1], true
}

func (c *Circuit) node(id core.NodeID) *Node {
	n, ok := c.Node(id)
	if !ok {
		panic(fmt.Sprintf("circuit: dangling connection to node %d", id))
	}
	return n
}

// Snapshot returns the published state of every node, ordered by id.
func (c *Circuit) Snapshot() []NodeState {
	out := make([]NodeState, len(c.nodes))
	for i := range c.nodes {
		n := &c.nodes[i]
		out[i] = NodeState{ID: n.ID, Kind: n.Kind, Color: n.Color}
	}
	return out
}

// Census counts nodes per class.
func (c *Circuit) Census() map[palette.Class]int {
	counts := make(map[palette.Class]int)
	for i := range c.nodes {
		counts[c.nodes[i].Kind.Class]++
	}
	return counts
}

// Reset returns every node to the kind it had when the circuit was built and
// rewinds the tick counter.
func (c *Circuit) Reset() {
	for i := range c.nodes {
		n := &c.nodes[i]
		n.Kind = c.initial[i]
		n.Pending = palette.None
		n.Total, n.Agree = 0, 0
		n.Color = c.reg.MustColorOf(n.Kind)
	}
	c.tick = 0
}

// Step advances the circuit by one tick: evaluation, propagation, commit.
func (c *Circuit) Step() {
	c.evaluate()
	c.propagate()
	c.commit()
	c.tick++
}

// evaluate aggregates neighbor signals class by class. Results of one class
// are staged and published only once the whole class has been processed, so
// no node observes a same-class sibling's partial result.
func (c *Circuit) evaluate() {
	for _, class := range evaluationOrder {
		c.staged = c.staged[:0]
		for i := range c.nodes {
			n := &c.nodes[i]
			if n.Kind.Class != class {
				continue
			}
			t := tally{total: n.Total, agree: n.Agree}
			for _, id := range n.Connections {
				t = interact(class, t, c.node(id))
			}
			c.staged = append(c.staged, stagedTally{index: i, tally: t})
		}
		for _, s := range c.staged {
			c.nodes[s.index].Total = s.total
			c.nodes[s.index].Agree = s.agree
		}
	}
}

// interact folds one neighbor into the running tally of a node of class self.
func interact(self palette.Class, t tally, nb *Node) tally {
	switch self {
	case palette.ClassInput:
		if nb.Kind.IsWire() {
			t.total++
			if nb.Kind.State == palette.Active {
				t.agree++
			}
		}
	case palette.ClassAnd, palette.ClassXor:
		if nb.Kind.Class == palette.ClassInput {
			t = tally{total: nb.Total, agree: nb.Agree}
		}
	case palette.ClassOutput:
		switch nb.Kind.Class {
		case palette.ClassAnd:
			t.total++
			if nb.Agree == nb.Total && nb.Total > 0 {
				t.agree++
			}
		case palette.ClassXor:
			t.total++
			if nb.Agree%2 == 1 {
				t.agree++
			}
		case palette.ClassInput:
			t.total++
			if nb.Agree != 0 {
				t.agree++
			}
		case palette.ClassOutput, palette.ClassWire, palette.ClassNone:
		}
	case palette.ClassWire, palette.ClassNone:
	}
	return t
}

// propagate stages the next state of every wire that touches an Output. Only
// Pending is written, and nothing in this stage reads Pending.
func (c *Circuit) propagate() {
	for i := range c.nodes {
		n := &c.nodes[i]
		switch n.Kind.Class {
		case palette.ClassWire:
			for _, id := range n.Connections {
				out := c.node(id)
				if out.Kind.Class != palette.ClassOutput {
					continue
				}
				state := palette.Inactive
				if out.Total > 0 && out.Agree == out.Total {
					state = palette.Active
				}
				n.Pending = n.Kind.WithState(state)
			}
		case palette.ClassInput, palette.ClassXor, palette.ClassAnd, palette.ClassOutput, palette.ClassNone:
		}
	}
}

func (c *Circuit) commit() {
	for i := range c.nodes {
		n := &c.nodes[i]
		if !n.Pending.IsNone() {
			n.Kind = n.Pending
			n.Pending = palette.None
		}
		n.Total, n.Agree = 0, 0
		n.Color = c.reg.MustColorOf(n.Kind)
	}
}
