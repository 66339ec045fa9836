package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/blit"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the blit CLI and returns an error if any command fails.
//
// The root command wires up the subcommands (transform, crop, compose) and
// configures logging from the --verbose flag. The logger is attached to the
// command context and also installed into the blit library so that engine
// diagnostics share the same sink.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "blit",
		Short:        "blit copies, crops and transforms raster images",
		Long:         `blit is a small imaging tool built on the blit buffer-copy library. It applies flips and 90-degree rotations, extracts regions, and composites sprite layers onto a canvas, reading and writing PNG, JPEG, BMP and TIFF files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			blit.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("blit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTransformCmd())
	root.AddCommand(newCropCmd())
	root.AddCommand(newComposeCmd())

	return root.ExecuteContext(context.Background())
}
