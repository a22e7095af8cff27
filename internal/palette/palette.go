// Package palette holds the fixed association between node kinds and the
// exact RGB triples that encode them in a circuit image.
package palette

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
)

// Color is an exact 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for constructing a Color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// FromColor returns the straight-alpha RGB bytes of c, dropping alpha.
// color.NRGBA values pass through unchanged.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// RGBA returns the opaque image color for c.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Compare orders colors by red, then green, then blue.
func (c Color) Compare(o Color) int {
	a := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	b := uint32(o.R)<<16 | uint32(o.G)<<8 | uint32(o.B)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Background is the color of the None kind.
var Background = RGB(0, 0, 0)

// Entry pairs a kind with the color that encodes it.
type Entry struct {
	Kind  Kind
	Color Color
}

// DefaultEntries is the standard circuit palette.
var DefaultEntries = []Entry{
	{Wire(ChannelOrange, Active), RGB(255, 128, 0)},
	{Wire(ChannelOrange, Inactive), RGB(128, 64, 0)},
	{Wire(ChannelSaphire, Active), RGB(0, 128, 255)},
	{Wire(ChannelSaphire, Inactive), RGB(0, 64, 128)},
	{Wire(ChannelLime, Active), RGB(128, 255, 0)},
	{Wire(ChannelLime, Inactive), RGB(64, 128, 0)},
	{Output, RGB(128, 0, 255)},
	{Input, RGB(64, 0, 128)},
	{Xor, RGB(0, 255, 128)},
	{And, RGB(0, 128, 64)},
	{None, Background},
}

// Registry is an immutable bijection between kinds and colors. Build it once
// and share the pointer; nothing mutates it after New returns.
type Registry struct {
	byKind  map[Kind]Color
	byColor map[Color]Kind
	entries []Entry
}

// New builds a Registry from entries. Duplicate kinds or colors are rejected
// so both directions stay total inverses of each other.
func New(entries []Entry) (*Registry, error) {
	r := &Registry{
		byKind:  make(map[Kind]Color, len(entries)+1),
		byColor: make(map[Color]Kind, len(entries)+1),
	}
	for _, e := range entries {
		if prev, ok := r.byKind[e.Kind]; ok {
			return nil, errors.Errorf("kind %s mapped twice (%s and %s)", e.Kind, prev, e.Color)
		}
		if prev, ok := r.byColor[e.Color]; ok {
			return nil, errors.Errorf("color %s mapped twice (%s and %s)", e.Color, prev, e.Kind)
		}
		r.byKind[e.Kind] = e.Color
		r.byColor[e.Color] = e.Kind
		r.entries = append(r.entries, e)
	}
	if _, ok := r.byKind[None]; !ok {
		if _, taken := r.byColor[Background]; taken {
			return nil, errors.Errorf("background color %s assigned to a circuit kind", Background)
		}
		r.byKind[None] = Background
		r.byColor[Background] = None
		r.entries = append(r.entries, Entry{None, Background})
	}
	return r, nil
}

// Default returns the registry for DefaultEntries.
func Default() *Registry {
	r, err := New(DefaultEntries)
	if err != nil {
		panic(err)
	}
	return r
}

// KindOf returns the kind encoded by c, or None for colors outside the table.
func (r *Registry) KindOf(c Color) Kind {
	if k, ok := r.byColor[c]; ok {
		return k
	}
	return None
}

// ColorOf returns the color for k. The boolean is false only for kinds that
// have no entry.
func (r *Registry) ColorOf(k Kind) (Color, bool) {
	c, ok := r.byKind[k]
	return c, ok
}

// MustColorOf is ColorOf for kinds known to be present. It panics otherwise,
// which signals a broken transition table rather than bad input.
func (r *Registry) MustColorOf(k Kind) Color {
	c, ok := r.byKind[k]
	if !ok {
		panic(fmt.Sprintf("palette: no color for kind %s", k))
	}
	return c
}

// Entries returns a copy of the table in insertion order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}
