package cli

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gogpu/blit"
)

// layout is the TOML description of a composition: a canvas plus a stack of
// layers blitted onto it in order.
type layout struct {
	Canvas canvasSpec  `toml:"canvas"`
	Layers []layerSpec `toml:"layer"`
}

type canvasSpec struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"` // optional #rrggbb[aa], default transparent
}

// layerSpec places one source image on the canvas. Position and offsets are
// two-element [x, y] arrays; size is [w, h]. Omitted size means the whole
// source (after the transform). A mask color makes matching source pixels
// transparent.
type layerSpec struct {
	File         string         `toml:"file"`
	Position     []int          `toml:"position"`
	SourceOffset []int          `toml:"source_offset"`
	Size         []int          `toml:"size"`
	Transform    blit.Transform `toml:"transform"`
	Mask         string         `toml:"mask"`
}

// pair converts an optional two-element array into a Point, defaulting to
// the origin.
func pair(vals []int, what string) (blit.Point, error) {
	switch len(vals) {
	case 0:
		return blit.Point{}, nil
	case 2:
		return blit.Pt(vals[0], vals[1]), nil
	default:
		return blit.Point{}, fmt.Errorf("%s: want [x, y], got %d values", what, len(vals))
	}
}

// compose renders the layout. baseDir anchors relative layer paths.
func compose(lay *layout, baseDir string) (*rgbaBuffer, error) {
	if lay.Canvas.Width <= 0 || lay.Canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas: want positive dimensions, got %dx%d", lay.Canvas.Width, lay.Canvas.Height)
	}

	canvas, err := newRGBABuffer(lay.Canvas.Width, lay.Canvas.Height)
	if err != nil {
		return nil, err
	}

	if lay.Canvas.Background != "" {
		bg, err := parseHexColor(lay.Canvas.Background)
		if err != nil {
			return nil, fmt.Errorf("canvas background: %w", err)
		}
		fill := blit.NewSolid(lay.Canvas.Width, lay.Canvas.Height, bg)
		blit.BlitFull[color.NRGBA](canvas, blit.Pt(0, 0), fill)
	}

	for i, layer := range lay.Layers {
		if layer.File == "" {
			return nil, fmt.Errorf("layer %d: missing file", i)
		}

		src, err := loadBuffer(filepath.Join(baseDir, layer.File))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}

		pos, err := pair(layer.Position, "position")
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		srcOff, err := pair(layer.SourceOffset, "source_offset")
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}

		var size blit.Size
		switch len(layer.Size) {
		case 0:
			size = layer.Transform.Size(blit.Sz(src.Width()-srcOff.X, src.Height()-srcOff.Y))
		case 2:
			size = blit.Sz(layer.Size[0], layer.Size[1])
		default:
			return nil, fmt.Errorf("layer %d: size: want [w, h], got %d values", i, len(layer.Size))
		}

		if layer.Mask != "" {
			mask, err := parseHexColor(layer.Mask)
			if err != nil {
				return nil, fmt.Errorf("layer %d: mask: %w", i, err)
			}
			blit.BlitMasked[color.NRGBA](canvas, pos, src, srcOff, size, mask, layer.Transform)
		} else {
			blit.Blit[color.NRGBA](canvas, pos, src, srcOff, size, layer.Transform)
		}
	}

	return canvas, nil
}

// newComposeCmd creates the compose command, which composites layers onto a
// canvas as described by a TOML layout file.
func newComposeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compose [flags] <layout.toml>",
		Short: "Composite image layers onto a canvas from a TOML layout",
		Long: `Compose reads a TOML layout describing a canvas and a stack of layers, then
blits each layer onto the canvas in order. A layer names a source file and
optionally a position, a source offset, a size, a transform, and a mask
color treated as transparent.

Example layout:

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
    mask = "#ff00ff"`,
		Example: `  blit compose scene.toml -o scene.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var lay layout
			if _, err := toml.DecodeFile(args[0], &lay); err != nil {
				return fmt.Errorf("parse layout: %w", err)
			}
			logger.Debug("parsed layout", "canvas_w", lay.Canvas.Width, "canvas_h", lay.Canvas.Height, "layers", len(lay.Layers))

			canvas, err := compose(&lay, filepath.Dir(args[0]))
			if err != nil {
				return err
			}

			if err := saveBuffer(output, canvas); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("wrote %s", output), "layers", len(lay.Layers))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output image file")
	return cmd
}
