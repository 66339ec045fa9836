package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/blit"
)

// writeTestPNG writes a w x h PNG whose pixel at (x, y) is colors[y*w+x].
func writeTestPNG(t *testing.T, path string, w, h int, colors []color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, colors[y*w+x])
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLayoutDecode(t *testing.T) {
	src := `
[canvas]
width = 320
height = 240
background = "#202020"

[[layer]]
file = "tiles.png"
position = [16, 16]
source_offset = [64, 0]
size = [32, 32]
transform = "rotate90"
mask = "#ff00ff"

[[layer]]
file = "logo.png"
`
	var lay layout
	if _, err := toml.Decode(src, &lay); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if lay.Canvas.Width != 320 || lay.Canvas.Height != 240 {
		t.Errorf("canvas = %dx%d, want 320x240", lay.Canvas.Width, lay.Canvas.Height)
	}
	if len(lay.Layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(lay.Layers))
	}
	if lay.Layers[0].Transform != blit.Rotate90 {
		t.Errorf("layer 0 transform = %v, want rotate90", lay.Layers[0].Transform)
	}
	if lay.Layers[1].Transform != blit.None {
		t.Errorf("layer 1 transform = %v, want none (default)", lay.Layers[1].Transform)
	}
	if lay.Layers[0].Mask != "#ff00ff" {
		t.Errorf("layer 0 mask = %q, want #ff00ff", lay.Layers[0].Mask)
	}
}

func TestLayoutDecodeBadTransform(t *testing.T) {
	src := `
[canvas]
width = 8
height = 8

[[layer]]
file = "x.png"
transform = "rotate45"
`
	var lay layout
	if _, err := toml.Decode(src, &lay); err == nil {
		t.Fatal("Decode accepted an unknown transform")
	}
}

func TestCompose(t *testing.T) {
	dir := t.TempDir()

	red := color.NRGBA{R: 0xff, A: 0xff}
	key := color.NRGBA{R: 0xff, B: 0xff, A: 0xff} // magenta mask
	writeTestPNG(t, filepath.Join(dir, "sprite.png"), 2, 2, []color.NRGBA{
		red, key,
		key, red,
	})

	lay := layout{
		Canvas: canvasSpec{Width: 4, Height: 4, Background: "#000000"},
		Layers: []layerSpec{
			{File: "sprite.png", Position: []int{1, 1}, Mask: "#ff00ff"},
		},
	}

	canvas, err := compose(&lay, dir)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	black := color.NRGBA{A: 0xff}
	if got := canvas.Get(0, 0); got != black {
		t.Errorf("background pixel = %v, want %v", got, black)
	}
	if got := canvas.Get(1, 1); got != red {
		t.Errorf("sprite pixel (1,1) = %v, want red", got)
	}
	// Masked pixels leave the background visible.
	if got := canvas.Get(2, 1); got != black {
		t.Errorf("masked pixel (2,1) = %v, want background", got)
	}
	if got := canvas.Get(2, 2); got != red {
		t.Errorf("sprite pixel (2,2) = %v, want red", got)
	}
}

func TestComposeRejectsBadCanvas(t *testing.T) {
	lay := layout{Canvas: canvasSpec{Width: 0, Height: 10}}
	if _, err := compose(&lay, "."); err == nil {
		t.Fatal("compose accepted a zero-width canvas")
	}
}
