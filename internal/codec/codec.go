// Package codec converts between image files and the RGBA buffers the
// simulator works on.
package codec

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode marks an input image that is missing, unreadable or corrupt.
	ErrDecode = errors.New("decode failure")
	// ErrEncode marks a frame that could not be encoded or written.
	ErrEncode = errors.New("encode failure")
)

// Decode reads any registered image format from r into a zero-origin
// straight-alpha buffer, so each pixel keeps the RGB bytes stored in the file.
// The returned format name is the one reported by image.Decode.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrapf(ErrDecode, "%v", err)
	}
	return ToNRGBA(img), format, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(ErrDecode, "open %s: %v", path, err)
	}
	defer f.Close()
	img, format, err := Decode(f)
	if err != nil {
		return nil, "", errors.Wrap(err, path)
	}
	return img, format, nil
}

// ToNRGBA returns img as a zero-origin *image.NRGBA, converting when needed.
// Pixels are converted one by one through color.NRGBAModel; image/draw is
// avoided because it goes through premultiplied alpha and rounds the RGB
// bytes of translucent pixels.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetNRGBA(x, y, color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA))
		}
	}
	return out
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrapf(ErrEncode, "%v", err)
	}
	return nil
}

// EncodeFile writes img to path as PNG, replacing any existing file. A file
// that could not be written completely is removed.
func EncodeFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrEncode, "create %s: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(ErrEncode, "close %s: %v", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := Encode(f, img); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}
