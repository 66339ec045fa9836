// Package cli implements the blit command-line tool.
//
// The tool is a thin imaging front end over the blit library: it decodes an
// image into a [blit.GenericBuffer] of NRGBA values, runs the requested copy
// operations, and encodes the result. Supported formats are PNG and JPEG
// (standard library) plus BMP and TIFF (golang.org/x/image), selected by
// file extension.
//
// # Commands
//
//   - transform: apply a chain of flips and 90-degree rotations
//   - crop: extract a rectangular region
//   - compose: composite layers onto a canvas from a TOML layout file
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; the same logger is installed into the blit
// library itself via blit.SetLogger, so engine diagnostics (clipped blits)
// show up alongside command output.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting that writes to w
// and filters messages at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
