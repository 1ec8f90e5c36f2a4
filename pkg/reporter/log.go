package reporter

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/termlint/internal/logging"
	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/runner"
)

// LogReporter emits one log record per finding, in the warning line format
// "<file>:<line>: term_validator: <message> (<pattern>)". Files that could not
// be validated are logged separately at error level.
type LogReporter struct {
	lines  *log.Logger
	logger *log.Logger
	level  log.Level
}

// NewLogReporter creates a new log reporter.
func NewLogReporter(opts Options) *LogReporter {
	level := opts.LogLevel
	if level == "" {
		level = config.LogLevelWarn
	}
	return &LogReporter{
		lines:  logging.NewLineWriter(opts.Writer, string(level)),
		logger: logging.NewWriter(opts.Writer, string(level)),
		level:  logging.ParseLevel(string(level)),
	}
}

// Report implements Reporter.
func (r *LogReporter) Report(ctx context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		if file.Error != nil {
			r.logger.Error("cannot validate file",
				logging.FieldPath, displayPath(file),
				logging.FieldError, file.Error,
			)
			continue
		}

		for _, f := range file.Findings {
			r.lines.Log(r.level, f.String())
			total++
		}
	}

	return total, nil
}

// displayPath returns the path shown for a file outcome.
func displayPath(file runner.FileOutcome) string {
	if file.DisplayPath != "" {
		return file.DisplayPath
	}
	return file.Path
}
