package palette

import "fmt"

// Class enumerates the node categories a pixel region can belong to.
type Class uint8

const (
	// ClassNone marks non-circuit background. As a pending kind it means
	// "no transition staged".
	ClassNone Class = iota
	ClassInput
	ClassOutput
	ClassAnd
	ClassXor
	ClassWire
)

// Classes lists every class in declaration order.
var Classes = []Class{ClassNone, ClassInput, ClassOutput, ClassAnd, ClassXor, ClassWire}

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassInput:
		return "input"
	case ClassOutput:
		return "output"
	case ClassAnd:
		return "and"
	case ClassXor:
		return "xor"
	case ClassWire:
		return "wire"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Channel is the cosmetic color family of a wire.
type Channel uint8

const (
	ChannelNone Channel = iota
	ChannelOrange
	ChannelSaphire
	ChannelLime
)

func (c Channel) String() string {
	switch c {
	case ChannelNone:
		return "none"
	case ChannelOrange:
		return "orange"
	case ChannelSaphire:
		return "saphire"
	case ChannelLime:
		return "lime"
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// State is the logic level carried by a wire.
type State uint8

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Kind is the tagged variant describing what a node is. Only wires carry a
// channel and a state; every other class leaves them zero so that equality
// stays structural.
type Kind struct {
	Class   Class
	Channel Channel
	State   State
}

var (
	None   = Kind{Class: ClassNone}
	Input  = Kind{Class: ClassInput}
	Output = Kind{Class: ClassOutput}
	And    = Kind{Class: ClassAnd}
	Xor    = Kind{Class: ClassXor}
)

// Wire returns the wire kind for the given channel and state.
func Wire(ch Channel, st State) Kind {
	return Kind{Class: ClassWire, Channel: ch, State: st}
}

// IsNone reports whether k is the background kind.
func (k Kind) IsNone() bool { return k.Class == ClassNone }

// IsWire reports whether k is any wire kind.
func (k Kind) IsWire() bool { return k.Class == ClassWire }

// Active reports whether k is a wire carrying an active signal.
func (k Kind) Active() bool { return k.Class == ClassWire && k.State == Active }

// WithState returns a copy of the wire kind k carrying state st. Non-wire
// kinds are returned unchanged.
func (k Kind) WithState(st State) Kind {
	if k.Class != ClassWire {
		return k
	}
	return Wire(k.Channel, st)
}

func (k Kind) String() string {
	if k.Class == ClassWire {
		return fmt.Sprintf("wire(%s,%s)", k.Channel, k.State)
	}
	return k.Class.String()
}
