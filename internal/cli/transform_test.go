package cli

import (
	"image/color"
	"path/filepath"
	"testing"
)

// TestTransformCommand runs the transform command end to end on a 2x1 image:
// a clockwise quarter turn must stand it up into a 1x2 image.
func TestTransformCommand(t *testing.T) {
	dir := t.TempDir()

	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeTestPNG(t, in, 2, 1, []color.NRGBA{red, blue})

	cmd := newTransformCmd()
	cmd.SetArgs([]string{"-t", "rotate90", in, out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("transform: %v", err)
	}

	got, err := loadBuffer(out)
	if err != nil {
		t.Fatalf("loadBuffer: %v", err)
	}
	if got.Width() != 1 || got.Height() != 2 {
		t.Fatalf("output dimensions = %dx%d, want 1x2", got.Width(), got.Height())
	}
	// Clockwise: the left pixel ends up on top.
	if got.Get(0, 0) != red || got.Get(0, 1) != blue {
		t.Errorf("output = [%v %v], want [red blue]", got.Get(0, 0), got.Get(0, 1))
	}
}

func TestTransformCommandRejectsUnknownName(t *testing.T) {
	dir := t.TempDir()
	cmd := newTransformCmd()
	cmd.SetArgs([]string{"-t", "rotate45", filepath.Join(dir, "in.png"), filepath.Join(dir, "out.png")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("transform accepted an unknown transform name")
	}
}

// TestCropCommand extracts the right pixel of a 2x1 image.
func TestCropCommand(t *testing.T) {
	dir := t.TempDir()

	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeTestPNG(t, in, 2, 1, []color.NRGBA{red, blue})

	cmd := newCropCmd()
	cmd.SetArgs([]string{"--rect", "1,0,1,1", in, out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("crop: %v", err)
	}

	got, err := loadBuffer(out)
	if err != nil {
		t.Fatalf("loadBuffer: %v", err)
	}
	if got.Width() != 1 || got.Height() != 1 {
		t.Fatalf("output dimensions = %dx%d, want 1x1", got.Width(), got.Height())
	}
	if got.Get(0, 0) != blue {
		t.Errorf("pixel = %v, want blue", got.Get(0, 0))
	}
}

func TestCropCommandRejectsOversizedRect(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "in.png")
	writeTestPNG(t, in, 2, 1, []color.NRGBA{{A: 0xff}, {A: 0xff}})

	cmd := newCropCmd()
	cmd.SetArgs([]string{"--rect", "0,0,3,1", in, filepath.Join(dir, "out.png")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("crop accepted a rect larger than the input")
	}
}
