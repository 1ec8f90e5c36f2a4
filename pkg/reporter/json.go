package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/validator"
)

// jsonSchemaVersion is the version of the JSON output layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Kind     string        `json:"kind"`
	Findings []JSONFinding `json:"findings"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Match    string `json:"match"`
	Pattern  string `json:"pattern,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Text     string `json:"text"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int            `json:"filesChecked"`
	FilesWithFindings int            `json:"filesWithFindings"`
	FilesErrored      int            `json:"filesErrored"`
	NodesChecked      int            `json:"nodesChecked"`
	TotalFindings     int            `json:"totalFindings"`
	ByCheck           map[string]int `json:"byCheck"`
	BySeverity        map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByCheck:    make(map[string]int),
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	severity := result.Severity
	if severity == "" {
		severity = config.SeverityWarning
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	output.Summary.NodesChecked = result.Stats.NodesChecked

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     displayPath(file),
			Kind:     file.Kind.String(),
			Findings: make([]JSONFinding, 0, len(file.Findings)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		} else {
			output.Summary.FilesChecked++
		}

		for _, f := range file.Findings {
			fileResult.Findings = append(fileResult.Findings, newJSONFinding(f, severity))
			output.Summary.TotalFindings++
			output.Summary.ByCheck[f.Check.String()]++
			output.Summary.BySeverity[string(severity)]++
		}

		if len(fileResult.Findings) > 0 {
			output.Summary.FilesWithFindings++
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}

func newJSONFinding(f validator.Finding, severity config.Severity) JSONFinding {
	return JSONFinding{
		Check:    f.Check.String(),
		Severity: string(severity),
		Message:  f.Message,
		Match:    f.Match,
		Pattern:  f.Pattern,
		Line:     f.Location.Line,
		Column:   f.Location.Column,
		Text:     f.String(),
	}
}
