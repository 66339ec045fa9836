package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/blit"
)

// rgbaBuffer is the element type the CLI works in: every decoded image is
// normalized to non-premultiplied RGBA so the engine can treat pixels as
// opaque comparable values (comparable matters for mask blits).
type rgbaBuffer = blit.GenericBuffer[color.NRGBA]

// loadBuffer decodes the image at path into a row-major NRGBA buffer.
func loadBuffer(path string) (*rgbaBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return imageToBuffer(img)
}

// saveBuffer encodes buf into the file at path, picking the format from the
// extension: .png, .jpg/.jpeg, .bmp, .tif/.tiff.
func saveBuffer(path string, buf *rgbaBuffer) error {
	img := bufferToImage(buf)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

// imageToBuffer copies img into a fresh buffer, normalizing to NRGBA.
func imageToBuffer(img image.Image) (*rgbaBuffer, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf, err := blit.NewGeneric(make([]color.NRGBA, w*h), w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.Set(x, y, c)
		}
	}
	return buf, nil
}

// bufferToImage copies buf into an image.NRGBA for encoding.
func bufferToImage(buf *rgbaBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			img.SetNRGBA(x, y, buf.Get(x, y))
		}
	}
	return img
}

// newRGBABuffer allocates an empty w x h buffer.
func newRGBABuffer(w, h int) (*rgbaBuffer, error) {
	return blit.NewGeneric(make([]color.NRGBA, w*h), w, h)
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa" (alpha defaults to 0xff).
func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	var c color.NRGBA
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return c, fmt.Errorf("invalid color %q: %w", s, err)
		}
		c.A = 0xff
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return c, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return c, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	return c, nil
}
