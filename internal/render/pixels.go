// Package render paints circuit state into pixel buffers.
package render

import (
	"image"
	"image/draw"

	"reso/internal/circuit"

	xdraw "golang.org/x/image/draw"
)

// Renderer paints node colors over a fixed backdrop. Pixels no node owns keep
// the backdrop color.
type Renderer struct {
	backdrop *image.RGBA
}

// NewRenderer copies src into a zero-origin RGBA backdrop.
func NewRenderer(src image.Image) *Renderer {
	b := src.Bounds()
	bg := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(bg, bg.Bounds(), src, b.Min, draw.Src)
	return &Renderer{backdrop: bg}
}

// Render returns a new frame showing every node in its current color.
func (r *Renderer) Render(nodes []circuit.Node) *image.RGBA {
	dst := &image.RGBA{
		Pix:    append([]uint8(nil), r.backdrop.Pix...),
		Stride: r.backdrop.Stride,
		Rect:   r.backdrop.Rect,
	}
	Paint(dst, nodes)
	return dst
}

// Paint writes each node's color into every pixel it owns. Pixels outside
// dst are skipped.
func Paint(dst *image.RGBA, nodes []circuit.Node) {
	for i := range nodes {
		n := &nodes[i]
		c := n.Color
		for _, p := range n.Pixels {
			pt := image.Point{X: p.X, Y: p.Y}.Add(dst.Rect.Min)
			if !pt.In(dst.Rect) {
				continue
			}
			base := dst.PixOffset(pt.X, pt.Y)
			dst.Pix[base+0] = c.R
			dst.Pix[base+1] = c.G
			dst.Pix[base+2] = c.B
			dst.Pix[base+3] = 0xff
		}
	}
}

// Scale enlarges src by an integer factor using nearest-neighbour sampling so
// palette colors survive exactly. A factor of 1 or less returns src.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
