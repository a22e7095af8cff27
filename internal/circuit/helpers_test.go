package circuit

import (
	"image"
	"testing"

	"reso/internal/core"
	"reso/internal/palette"
	rng "reso/pkg/core"
)

var unmapped = palette.RGB(10, 20, 30)

var legend = map[byte]palette.Kind{
	'I': palette.Input,
	'O': palette.Output,
	'&': palette.And,
	'^': palette.Xor,
	'a': palette.Wire(palette.ChannelOrange, palette.Inactive),
	'A': palette.Wire(palette.ChannelOrange, palette.Active),
	's': palette.Wire(palette.ChannelSaphire, palette.Inactive),
	'S': palette.Wire(palette.ChannelSaphire, palette.Active),
	'l': palette.Wire(palette.ChannelLime, palette.Inactive),
	'L': palette.Wire(palette.ChannelLime, palette.Active),
}

// drawing builds an image from rows of legend characters. '.' is background
// and '#' an unmapped color.
func drawing(t *testing.T, rows ...string) *image.RGBA {
	t.Helper()
	reg := palette.Default()
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("row %d has width %d, want %d", y, len(row), len(rows[0]))
		}
		for x := 0; x < len(row); x++ {
			c := palette.Background
			switch ch := row[x]; ch {
			case '.':
			case '#':
				c = unmapped
			default:
				k, ok := legend[ch]
				if !ok {
					t.Fatalf("unknown legend character %q", ch)
				}
				c = reg.MustColorOf(k)
			}
			img.SetRGBA(x, y, c.RGBA())
		}
	}
	return img
}

// randomImage fills a w*h image with palette colors, background and one
// unmapped color, weighted so that regions of several pixels form.
func randomImage(seed int64, w, h int) *image.RGBA {
	r := rng.NewRNG(seed)
	entries := palette.Default().Entries()
	colors := []palette.Color{unmapped}
	for _, e := range entries {
		colors = append(colors, e.Color)
	}
	weights := make([]int, len(colors))
	for i := range weights {
		weights[i] = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c palette.Color
			if x > 0 && r.IntN(3) > 0 {
				c = palette.FromColor(img.At(x-1, y))
			} else {
				c = colors[r.Weighted(weights)]
			}
			img.SetRGBA(x, y, c.RGBA())
		}
	}
	return img
}

func build(t *testing.T, rows ...string) (*Circuit, *core.LabelGrid) {
	t.Helper()
	return Build(drawing(t, rows...), palette.Default())
}

// nodeAt returns the node owning pixel (x, y).
func nodeAt(t *testing.T, c *Circuit, grid *core.LabelGrid, x, y int) *Node {
	t.Helper()
	id, ok := grid.At(x, y).Owner()
	if !ok {
		t.Fatalf("pixel (%d,%d) is %v, want a node", x, y, grid.At(x, y))
	}
	n, ok := c.Node(id)
	if !ok {
		t.Fatalf("grid references missing node %d", id)
	}
	return n
}
