package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/termlint/internal/ui/pretty"
	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/source"
	"github.com/yaklabco/termlint/pkg/validator"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	severity := result.Severity
	if severity == "" {
		severity = config.SeverityWarning
	}

	var total int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(file)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if len(file.Findings) == 0 {
			continue
		}

		if r.opts.GroupByFile {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(displayPath(file), len(file.Findings)))
		}

		for _, f := range file.Findings {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = getSourceLine(file.Lines, f.Location)
			}
			fmt.Fprint(r.bw, r.styles.FormatFinding(f, severity, r.opts.ShowContext, sourceLine))
			total++
		}

		if r.opts.GroupByFile {
			fmt.Fprintln(r.bw)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// getSourceLine returns the source line a finding points at, or "" when the
// line is unknown.
func getSourceLine(lines *source.Lines, loc validator.Location) string {
	if lines == nil || loc.Line <= 0 {
		return ""
	}
	return string(lines.LineContent(loc.Line))
}
