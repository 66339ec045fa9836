package cli

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"

	"github.com/gogpu/blit"
)

// newTransformCmd creates the transform command, which applies a chain of
// flips and 90-degree rotations to an image.
func newTransformCmd() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "transform [flags] <input> <output>",
		Short: "Apply flips and 90-degree rotations to an image",
		Long: `Transform decodes an image, applies the given transforms in order, and
encodes the result. Transforms are named none, flip-horizontal (fliph),
flip-vertical (flipv), flip-both, rotate90 (r90), rotate180, rotate270,
rotate90-flip-horizontal and rotate90-flip-vertical. Rotations are clockwise.`,
		Example: `  blit transform -t rotate90 photo.png rotated.png
  blit transform -t fliph -t r90 sprite.bmp out.tiff`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			chain := make([]blit.Transform, 0, len(names))
			for _, name := range names {
				tr, err := blit.ParseTransform(name)
				if err != nil {
					return err
				}
				chain = append(chain, tr)
			}

			src, err := loadBuffer(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded input", "file", args[0], "width", src.Width(), "height", src.Height())

			size := blit.Sz(src.Width(), src.Height())
			for _, tr := range chain {
				size = tr.Size(size)
			}

			dst, err := newRGBABuffer(size.W, size.H)
			if err != nil {
				return err
			}
			blit.BlitFull[color.NRGBA](dst, blit.Pt(0, 0), src, chain...)

			if err := saveBuffer(args[1], dst); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("wrote %s", args[1]), "width", size.W, "height", size.H)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&names, "transform", "t", nil, "transform to apply, repeatable, applied in order")
	return cmd
}
