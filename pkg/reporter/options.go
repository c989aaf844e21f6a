package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Severity labels each change in text output.
	Severity config.Severity

	// Lint selects lint wording for the summary ("require formatting"
	// rather than "formatted").
	Lint bool

	// ShowChanges prints one line per change in text output.
	ShowChanges bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified JSON.
	Compact bool

	// Registry supplies rule help text. Defaults to lint.DefaultRegistry.
	Registry *lint.Registry

	// ToolVersion is reported as the driver version in SARIF output.
	ToolVersion string

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		Severity:    config.SeverityError,
		ShowChanges: true,
		ShowSummary: true,
		Registry:    lint.DefaultRegistry,
	}
}
