package cli

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/blit"
)

// parseRect parses a "x,y,w,h" flag value.
func parseRect(s string) (blit.Point, blit.Size, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return blit.Point{}, blit.Size{}, fmt.Errorf("invalid rect %q: want x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return blit.Point{}, blit.Size{}, fmt.Errorf("invalid rect %q: %w", s, err)
		}
		vals[i] = v
	}
	return blit.Pt(vals[0], vals[1]), blit.Sz(vals[2], vals[3]), nil
}

// newCropCmd creates the crop command, which extracts a rectangular region
// of an image through a read-only sub-buffer view.
func newCropCmd() *cobra.Command {
	var rect string

	cmd := &cobra.Command{
		Use:     "crop --rect x,y,w,h <input> <output>",
		Short:   "Extract a rectangular region of an image",
		Example: `  blit crop --rect 10,10,64,64 sheet.png sprite.png`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			off, size, err := parseRect(rect)
			if err != nil {
				return err
			}

			src, err := loadBuffer(args[0])
			if err != nil {
				return err
			}

			view, err := blit.Sub[color.NRGBA](src, off, size)
			if err != nil {
				return fmt.Errorf("rect %s does not fit %dx%d input: %w", rect, src.Width(), src.Height(), err)
			}

			dst, err := newRGBABuffer(size.W, size.H)
			if err != nil {
				return err
			}
			blit.BlitFull[color.NRGBA](dst, blit.Pt(0, 0), view)

			if err := saveBuffer(args[1], dst); err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("wrote %s", args[1]), "width", size.W, "height", size.H)
			return nil
		},
	}

	cmd.Flags().StringVar(&rect, "rect", "", "region to extract as x,y,w,h (required)")
	_ = cmd.MarkFlagRequired("rect")
	return cmd
}
