package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/termlint/pkg/config"
	"github.com/yaklabco/termlint/pkg/reporter"
	"github.com/yaklabco/termlint/pkg/runner"
	"github.com/yaklabco/termlint/pkg/source"
	"github.com/yaklabco/termlint/pkg/validator"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to log", input: "", want: reporter.FormatLog},
		{name: "log", input: "log", want: reporter.FormatLog},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "sarif", input: "sarif", want: reporter.FormatSARIF},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatLog, true},
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSARIF, true},
		{reporter.FormatSummary, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "log reporter", format: reporter.FormatLog},
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "sarif reporter", format: reporter.FormatSARIF},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to log", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.NotNil(t, opts.ErrorWriter)
	assert.Equal(t, reporter.FormatLog, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.Equal(t, config.LogLevelWarn, opts.LogLevel)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.True(t, opts.GroupByFile)
	assert.False(t, opts.Compact)
}

func TestLogReporter_WarningLines(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewLogReporter(reporter.Options{Writer: &buf, LogLevel: config.LogLevelWarn})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "docs/a.md:3: term_validator: ユーザー (ユーザ(?:[^ー]|$))", lines[0])
	assert.Equal(t, "docs/a.md:3: term_validator: 全角括弧を使用してください ((テスト))", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "ERRO"), lines[2])
	assert.Contains(t, lines[2], "broken.md")
	assert.Contains(t, lines[2], "permission denied")
}

func TestLogReporter_Levels(t *testing.T) {
	const want = "docs/a.md:3: term_validator: ユーザー (ユーザ(?:[^ー]|$))\n" +
		"docs/a.md:3: term_validator: 全角括弧を使用してください ((テスト))\n"

	for _, level := range []config.LogLevel{config.LogLevelInfo, config.LogLevelWarn, config.LogLevelError, ""} {
		t.Run(string(level), func(t *testing.T) {
			var buf bytes.Buffer
			rep := reporter.NewLogReporter(reporter.Options{Writer: &buf, LogLevel: level})

			result := createTestResult()
			result.Files = result.Files[:1]

			_, err := rep.Report(context.Background(), result)
			require.NoError(t, err)
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestLogReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewLogReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, buf.String())
}

func TestLogReporter_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewLogReporter(reporter.Options{Writer: &buf})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rep.Report(ctx, createTestResult())
	require.ErrorIs(t, err, context.Canceled)
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check")
}

func TestTextReporter_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		ShowContext: true,
		GroupByFile: true,
	})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "docs/a.md (2 findings)")
	assert.Contains(t, output, "docs/a.md:3:4")
	assert.Contains(t, output, "[ng_words]")
	assert.Contains(t, output, "[parenthesis]")
	assert.Contains(t, output, "本文 ユーザ (テスト)")
	assert.Contains(t, output, "^~~")
	assert.Contains(t, output, "broken.md")
	assert.Contains(t, output, "error: permission denied")
	assert.Contains(t, output, "2 findings (2 warnings) in 1 file")
}

func TestTextReporter_Flat(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	output := buf.String()
	assert.NotContains(t, output, "(2 findings)")
	assert.NotContains(t, output, "^~~")
	assert.Equal(t, 3, strings.Count(output, "\n"))
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 2)
	assert.Equal(t, "docs/a.md", output.Files[0].Path)
	assert.Equal(t, "markdown", output.Files[0].Kind)
	require.Len(t, output.Files[0].Findings, 2)

	first := output.Files[0].Findings[0]
	assert.Equal(t, "ng_words", first.Check)
	assert.Equal(t, "warning", first.Severity)
	assert.Equal(t, "ユーザ", first.Match)
	assert.Equal(t, "ユーザ(?:[^ー]|$)", first.Pattern)
	assert.Equal(t, 3, first.Line)
	assert.Equal(t, 4, first.Column)
	assert.Equal(t, "docs/a.md:3: term_validator: ユーザー (ユーザ(?:[^ー]|$))", first.Text)

	assert.Empty(t, output.Files[0].Findings[1].Pattern)
	assert.Equal(t, "permission denied", output.Files[1].Error)

	assert.Equal(t, 2, output.Summary.TotalFindings)
	assert.Equal(t, 1, output.Summary.FilesWithFindings)
	assert.Equal(t, 1, output.Summary.FilesChecked)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, map[string]int{"ng_words": 1, "parenthesis": 1}, output.Summary.ByCheck)
	assert.Equal(t, map[string]int{"warning": 2}, output.Summary.BySeverity)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Compact: true,
	})

	_, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestSARIFReporter_RulesAndResults(t *testing.T) {
	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.ToolVersion = "1.2.3"

	result := createTestResult()
	result.Severity = config.SeverityError

	count, err := reporter.NewSARIFReporter(opts).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "2.1.0", output.Version)
	require.Len(t, output.Runs, 1)
	run := output.Runs[0]

	assert.Equal(t, "termlint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, len(validator.Checks()))
	for i, c := range validator.Checks() {
		assert.Equal(t, c.String(), run.Tool.Driver.Rules[i].ID)
		assert.Equal(t, "error", run.Tool.Driver.Rules[i].DefaultConfig.Level)
	}

	require.Len(t, run.Results, 2)
	ng := run.Results[0]
	assert.Equal(t, "ng_words", ng.RuleID)
	assert.Equal(t, int(validator.NGWords), ng.RuleIndex)
	assert.Equal(t, "error", ng.Level)
	assert.Equal(t, "ユーザー (ユーザ(?:[^ー]|$))", ng.Message.Text)
	assert.Equal(t, "docs/a.md", ng.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	require.NotNil(t, ng.Locations[0].PhysicalLocation.Region)
	assert.Equal(t, 3, ng.Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, 4, ng.Locations[0].PhysicalLocation.Region.StartColumn)
	assert.Equal(t, "ユーザ(?:[^ー]|$)", ng.Properties["pattern"])

	require.Len(t, run.Invocations, 1)
	require.Len(t, run.Invocations[0].ToolExecutionNotifications, 1)
	assert.Equal(t, "permission denied", run.Invocations[0].ToolExecutionNotifications[0].Message.Text)
}

func TestSARIFReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	count, err := reporter.NewSARIFReporter(reporter.Options{Writer: &buf}).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Empty(t, output.Runs[0].Results)
	assert.Equal(t, "dev", output.Runs[0].Tool.Driver.Version)
}

func TestSummaryReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewSummaryReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), createTestResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "FILE")
	assert.Contains(t, output, "MOST FREQUENT")
	assert.Contains(t, output, "docs/a.md")
	assert.Contains(t, output, "parenthesis")
	assert.Contains(t, output, "error: permission denied")
	assert.Contains(t, output, "Total findings:")
	assert.NotContains(t, output, "term_validator")
}

// createTestResult creates a runner.Result with one file holding two
// findings and one file that failed.
func createTestResult() *runner.Result {
	content := []byte("# Title\n\n本文 ユーザ (テスト)\n")

	findings := []validator.Finding{
		{
			Location: validator.Location{File: "docs/a.md", Line: 3, Column: 4},
			Check:    validator.NGWords,
			Message:  "ユーザー",
			Match:    "ユーザ",
			Pattern:  "ユーザ(?:[^ー]|$)",
		},
		{
			Location: validator.Location{File: "docs/a.md", Line: 3, Column: 8},
			Check:    validator.Parenthesis,
			Message:  "全角括弧を使用してください",
			Match:    "(テスト)",
		},
	}

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:        "/work/docs/a.md",
				DisplayPath: "docs/a.md",
				Kind:        source.Markdown,
				Nodes:       2,
				Findings:    findings,
				Lines:       source.BuildLines(content),
			},
			{
				Path:        "/work/broken.md",
				DisplayPath: "broken.md",
				Error:       errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:    2,
			FilesProcessed:     1,
			FilesErrored:       1,
			FilesWithFindings:  1,
			NodesChecked:       2,
			FindingsTotal:      2,
			FindingsByCheck:    map[string]int{"ng_words": 1, "parenthesis": 1},
			FindingsBySeverity: map[string]int{"warning": 2},
		},
		Severity: config.SeverityWarning,
	}
}
