package circuit

import (
	"image"

	"reso/internal/core"
	"reso/internal/palette"
)

// Extract clusters the pixels of img into nodes. Pixels whose color maps to a
// circuit kind are grouped with every 8-connected pixel of exactly the same
// color; all other pixels are labeled background. Node ids are assigned from 1
// upwards in row-major order of each region's first pixel.
//
// The returned grid is in image-relative coordinates: (0,0) is
// img.Bounds().Min.
func Extract(img image.Image, reg *palette.Registry) (*Circuit, *core.LabelGrid) {
	b := img.Bounds()
	size := core.Size{W: b.Dx(), H: b.Dy()}
	grid := core.NewLabelGrid(size.W, size.H)
	px := newPixelReader(img)

	var nodes []Node
	var queue []core.Point
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if grid.At(x, y).State() != core.Unlabeled {
				continue
			}
			seed := px.at(x, y)
			kind := reg.KindOf(seed)
			if kind.IsNone() {
				grid.Set(x, y, core.BackgroundLabel())
				continue
			}

			id := core.NodeID(len(nodes) + 1)
			label := core.OwnedBy(id)
			node := Node{ID: id, Kind: kind, Pending: palette.None, Color: seed}

			grid.Set(x, y, label)
			queue = append(queue[:0], core.Point{X: x, Y: y})
			for head := 0; head < len(queue); head++ {
				p := queue[head]
				node.Pixels = append(node.Pixels, p)
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := p.X+dx, p.Y+dy
						if !grid.InBounds(nx, ny) || grid.At(nx, ny).State() != core.Unlabeled {
							continue
						}
						if px.at(nx, ny) != seed {
							continue
						}
						grid.Set(nx, ny, label)
						queue = append(queue, core.Point{X: nx, Y: ny})
					}
				}
			}
			nodes = append(nodes, node)
		}
	}

	return newCircuit(reg, size, nodes), grid
}

// pixelReader reads straight-alpha RGB triples in image-relative
// coordinates. NRGBA buffers from the codec and opaque RGBA buffers are read
// from Pix directly.
type pixelReader struct {
	img  image.Image
	pix  []uint8
	rect image.Rectangle
	// stride is zero when no fast path applies.
	stride int
}

func newPixelReader(img image.Image) pixelReader {
	r := pixelReader{img: img, rect: img.Bounds()}
	switch m := img.(type) {
	case *image.NRGBA:
		r.pix, r.stride = m.Pix, m.Stride
	case *image.RGBA:
		if m.Opaque() {
			r.pix, r.stride = m.Pix, m.Stride
		}
	}
	return r
}

func (r pixelReader) at(x, y int) palette.Color {
	if r.stride == 0 {
		return palette.FromColor(r.img.At(r.rect.Min.X+x, r.rect.Min.Y+y))
	}
	i := y*r.stride + x*4
	s := r.pix[i : i+3 : i+3]
	return palette.Color{R: s[0], G: s[1], B: s[2]}
}
