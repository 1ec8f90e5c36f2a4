package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/termlint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	// The log format writes its warning lines here.
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// LogLevel is the level at which the log format emits findings.
	LogLevel config.LogLevel

	// ShowContext includes the source line under each finding (text format).
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// GroupByFile groups findings by file (text format).
	GroupByFile bool

	// Compact uses minified output for json and sarif.
	Compact bool

	// ToolVersion is reported in SARIF driver metadata.
	ToolVersion string

	// TermWidth bounds table output. Zero uses a default width.
	TermWidth int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatLog,
		Color:       "auto",
		LogLevel:    config.LogLevelWarn,
		ShowContext: true,
		ShowSummary: true,
		GroupByFile: true,
		ToolVersion: "dev",
	}
}
