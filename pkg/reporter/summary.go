package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/termlint/internal/ui/pretty"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/validator"
)

// SummaryReporter prints a per-file table of finding counts followed by
// aggregate statistics. Individual findings are not listed.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	var rows [][]string
	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			rows = append(rows, []string{displayPath(file), "-", "error: " + file.Error.Error()})
		case len(file.Findings) > 0:
			rows = append(rows, []string{displayPath(file), strconv.Itoa(len(file.Findings)), topCheck(file)})
		}
	}

	if len(rows) > 0 {
		table := pretty.NewTableFormatter(r.styles, r.opts.TermWidth)
		fmt.Fprint(r.bw, table.FormatTable([]string{"FILE", "FINDINGS", "MOST FREQUENT"}, rows))
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))

	return result.Stats.FindingsTotal, nil
}

// topCheck names the check with the most findings in a file. Ties go to the
// check that runs first.
func topCheck(file runner.FileOutcome) string {
	counts := make(map[validator.Check]int)
	for _, f := range file.Findings {
		counts[f.Check]++
	}

	var best string
	var bestCount int
	for _, c := range validator.Checks() {
		if counts[c] > bestCount {
			best, bestCount = c.String(), counts[c]
		}
	}
	return best
}
