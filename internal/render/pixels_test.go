package render

import (
	"image"
	"image/color"
	"testing"

	"reso/internal/circuit"
	"reso/internal/palette"
)

func sourceImage() *image.RGBA {
	reg := palette.Default()
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.SetRGBA(0, 0, reg.MustColorOf(palette.Wire(palette.ChannelOrange, palette.Active)).RGBA())
	img.SetRGBA(1, 0, reg.MustColorOf(palette.Input).RGBA())
	img.SetRGBA(2, 0, reg.MustColorOf(palette.Output).RGBA())
	img.SetRGBA(3, 0, reg.MustColorOf(palette.Wire(palette.ChannelSaphire, palette.Inactive)).RGBA())
	return img
}

func TestRenderPaintsNodeColors(t *testing.T) {
	src := sourceImage()
	c, _ := circuit.Build(src, palette.Default())
	r := NewRenderer(src)

	frame := r.Render(c.Nodes())
	for x := 0; x < 4; x++ {
		if frame.RGBAAt(x, 0) != src.RGBAAt(x, 0) {
			t.Fatalf("tick 0 pixel %d = %v, want %v", x, frame.RGBAAt(x, 0), src.RGBAAt(x, 0))
		}
	}

	c.Step()
	frame = r.Render(c.Nodes())
	want := palette.RGB(0, 128, 255).RGBA()
	if got := frame.RGBAAt(3, 0); got != want {
		t.Fatalf("active saphire wire rendered %v, want %v", got, want)
	}
}

func TestRenderKeepsBackdropAndIsPure(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	odd := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	src.SetRGBA(0, 0, odd)
	src.SetRGBA(1, 0, palette.RGB(64, 0, 128).RGBA())
	c, _ := circuit.Build(src, palette.Default())
	r := NewRenderer(src)

	a := r.Render(c.Nodes())
	a.SetRGBA(0, 0, color.RGBA{A: 255})
	b := r.Render(c.Nodes())
	if b.RGBAAt(0, 0) != odd {
		t.Fatalf("backdrop pixel = %v, want %v", b.RGBAAt(0, 0), odd)
	}
	if b.RGBAAt(2, 0) != (color.RGBA{}) {
		t.Fatalf("untouched pixel = %v, want source value", b.RGBAAt(2, 0))
	}
}

func TestScaleNearestNeighbour(t *testing.T) {
	src := sourceImage()
	out := Scale(src, 3)
	if out.Bounds().Dx() != 12 || out.Bounds().Dy() != 3 {
		t.Fatalf("scaled bounds %v", out.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 12; x++ {
			if out.RGBAAt(x, y) != src.RGBAAt(x/3, 0) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, out.RGBAAt(x, y), src.RGBAAt(x/3, 0))
			}
		}
	}
	if Scale(src, 1) != src {
		t.Fatal("factor 1 should return the source")
	}
}
