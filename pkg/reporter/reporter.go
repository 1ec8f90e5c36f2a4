// Package reporter formats validation results for output.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/termlint/pkg/runner"
)

// Reporter formats and writes validation results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of findings reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}

	format := opts.Format
	if format == "" {
		format = FormatLog
	}

	switch format {
	case FormatLog:
		return NewLogReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
